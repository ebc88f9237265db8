package handler

import (
	"net/http"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/internal/usecases/mailing"
)

func SendWelcomeEmail(service mailing.WelcomeSender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.WelcomeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		receipt, err := service.SendWelcome(r.Context(), &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, receipt)
	})
}
