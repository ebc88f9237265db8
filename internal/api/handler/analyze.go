package handler

import (
	"net/http"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/internal/usecases/reporting"
)

func Analyze(service reporting.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AnalyzeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := service.Analyze(r.Context(), &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
