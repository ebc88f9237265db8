package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/internal/usecases/billing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/mailing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodyBytes bounds every request body, webhooks included.
const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("request body is not valid JSON")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: encoding response failed")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidJSON
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errInvalidJSON
	}
	return nil
}

// writeError answers with the code carried by a usecase error, falling back
// to the shared domain sentinels.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)

	message := err.Error()
	switch code {
	case apiErrors.ErrNotConfigured:
		message = "service not configured"
	case apiErrors.ErrInternalServer:
		message = "internal server error"
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("handler: request failed")
	} else {
		logger.Warn("handler: request rejected")
	}

	apiErrors.WriteError(w, code, message, nil)
}

func errorCode(err error) string {
	var billingErr *billing.BillingError
	var mailErr *mailing.MailError

	switch {
	case errors.As(err, &billingErr):
		return billingErr.Code
	case errors.As(err, &mailErr):
		return mailErr.Code
	case errors.Is(err, reporting.ErrCompanyRequired), errors.Is(err, reporting.ErrCurrentPeriodRequired):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, errInvalidJSON), errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, domain.ErrNotConfigured):
		return apiErrors.ErrNotConfigured
	case errors.Is(err, domain.ErrInvalidSignature):
		return apiErrors.ErrInvalidSignature
	case errors.Is(err, domain.ErrUpstream):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}
