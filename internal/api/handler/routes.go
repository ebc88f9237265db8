package handler

import (
	"net/http"

	"github.com/vfg2006/cashpulse-api/internal/api/handler/router"
	"github.com/vfg2006/cashpulse-api/internal/usecases/billing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/mailing"
	"github.com/vfg2006/cashpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reporting(service reporting.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analyze",
			Method:  http.MethodPost,
			Handler: Analyze(service),
		},
	}
}

func Billing(service billing.Biller) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/checkout",
			Method:  http.MethodPost,
			Handler: CreateCheckout(service),
		},
		{
			Path:    "/v1/webhooks/stripe",
			Method:  http.MethodPost,
			Handler: StripeWebhook(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.LimitBody(maxBodyBytes),
				middleware.RequireHeader(stripeSignatureHeader, apiErrors.ErrInvalidSignature),
			},
		},
	}
}

func Mailing(service mailing.WelcomeSender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/emails/welcome",
			Method:  http.MethodPost,
			Handler: SendWelcomeEmail(service),
		},
	}
}
