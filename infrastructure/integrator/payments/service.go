package payments

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PaymentIntegrator interface {
	CreateCheckoutSession(ctx context.Context, params domain.CheckoutParams) (*domain.CheckoutSession, error)
	ParseWebhookEvent(payload []byte, signature string) (*domain.SubscriptionEvent, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)
}

type checkoutSessionClient interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type subscriptionClient interface {
	Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

type StripeService struct {
	webhookSecret string
	sessions      checkoutSessionClient
	subscriptions subscriptionClient
}

// New builds the Stripe integrator. Missing credentials do not fail startup;
// the affected calls return domain.ErrNotConfigured instead.
func New(cfg *config.Config) PaymentIntegrator {
	service := &StripeService{webhookSecret: cfg.Stripe.WebhookSecret}

	if cfg.Stripe.SecretKey == "" {
		logrus.Warn("payments: STRIPE_SECRET_KEY not set, checkout is disabled")
		return service
	}
	if cfg.Stripe.WebhookSecret == "" {
		logrus.Warn("payments: STRIPE_WEBHOOK_SECRET not set, webhooks are rejected")
	}

	sc := client.New(cfg.Stripe.SecretKey, nil)
	service.sessions = sc.CheckoutSessions
	service.subscriptions = sc.Subscriptions

	return service
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, p domain.CheckoutParams) (*domain.CheckoutSession, error) {
	if s.sessions == nil {
		return nil, errors.Wrap(domain.ErrNotConfigured, "payments: missing secret key")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
		AllowPromotionCodes: stripe.Bool(true),
		SubscriptionData:    &stripe.CheckoutSessionSubscriptionDataParams{},
	}
	params.Context = ctx

	if p.UserID != "" {
		params.ClientReferenceID = stripe.String(p.UserID)
		params.AddMetadata("user_id", p.UserID)
		params.SubscriptionData.AddMetadata("user_id", p.UserID)
	}
	if p.Email != "" {
		params.CustomerEmail = stripe.String(p.Email)
	}
	if p.Plan != "" {
		params.AddMetadata("plan", string(p.Plan))
		params.SubscriptionData.AddMetadata("plan", string(p.Plan))
	}
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	session, err := s.sessions.New(params)
	if err != nil {
		return nil, upstreamError("creating checkout session", err)
	}

	logrus.WithFields(logrus.Fields{
		"stripe_session_id": session.ID,
		"plan":              p.Plan,
	}).Debug("payments: checkout session created")

	return &domain.CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// ParseWebhookEvent verifies the Stripe-Signature header against the raw body
// and decodes the object of the event types this service understands.
// Other types are returned with only ID and Type set.
func (s *StripeService) ParseWebhookEvent(payload []byte, signature string) (*domain.SubscriptionEvent, error) {
	if s.webhookSecret == "" {
		return nil, errors.Wrap(domain.ErrNotConfigured, "payments: missing webhook secret")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidSignature, err.Error())
	}

	result := &domain.SubscriptionEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return result, nil
	}

	switch result.Type {
	case domain.EventCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(domain.ErrValidation, "payments: decoding checkout session")
		}
		result.CheckoutSession = toCheckoutSessionData(&session)

	case domain.EventSubscriptionUpdated, domain.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, errors.Wrap(domain.ErrValidation, "payments: decoding subscription")
		}
		result.Subscription = toSubscription(&sub)
	}

	return result, nil
}

func (s *StripeService) GetSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	if s.subscriptions == nil {
		return nil, errors.Wrap(domain.ErrNotConfigured, "payments: missing secret key")
	}

	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := s.subscriptions.Get(subscriptionID, params)
	if err != nil {
		return nil, upstreamError("retrieving subscription", err)
	}

	return toSubscription(sub), nil
}

func toCheckoutSessionData(session *stripe.CheckoutSession) *domain.CheckoutSessionData {
	data := &domain.CheckoutSessionData{
		ID:     session.ID,
		UserID: session.ClientReferenceID,
	}
	if data.UserID == "" {
		data.UserID = session.Metadata["user_id"]
	}
	if session.Customer != nil {
		data.CustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		data.SubscriptionID = session.Subscription.ID
	}
	return data
}

func toSubscription(sub *stripe.Subscription) *domain.Subscription {
	out := &domain.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		out.PriceID = sub.Items.Data[0].Price.ID
	}
	if sub.CurrentPeriodEnd > 0 {
		end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		out.CurrentPeriodEnd = &end
	}
	return out
}

// upstreamError keeps Stripe's own message, which is safe to show to callers.
func upstreamError(action string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return errors.Wrapf(domain.ErrUpstream, "payments: %s: %s", action, stripeErr.Msg)
	}
	return errors.Wrapf(domain.ErrUpstream, "payments: %s: %v", action, err)
}
