package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/internal/usecases/billing"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
)

const stripeSignatureHeader = "Stripe-Signature"

func CreateCheckout(service billing.Biller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		session, err := service.CreateCheckoutSession(r.Context(), &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	})
}

// StripeWebhook passes the body through untouched: the signature is computed
// over the exact bytes Stripe sent. The route caps the body size and rejects
// requests without a signature header.
func StripeWebhook(service billing.Biller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "could not read request body", nil)
			return
		}

		result, err := service.HandleWebhook(r.Context(), payload, r.Header.Get(stripeSignatureHeader))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
