//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package billing

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/payments"
	"github.com/vfg2006/cashpulse-api/infrastructure/repository"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
	"github.com/vfg2006/cashpulse-api/pkg/utils"
)

const (
	successPath = "/dashboard?checkout=success"
	cancelPath  = "/pricing?checkout=canceled"
)

type Biller interface {
	CreateCheckoutSession(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*domain.WebhookResult, error)
}

type Service struct {
	payments payments.PaymentIntegrator
	profiles repository.ProfileRepository
	prices   PriceTable
	appURL   string
	newKey   func(prefix string) (string, error)
}

func NewService(cfg *config.Config, payments payments.PaymentIntegrator, profiles repository.ProfileRepository) Biller {
	return &Service{
		payments: payments,
		profiles: profiles,
		prices:   NewPriceTable(cfg.Stripe),
		appURL:   cfg.App.URL,
		newKey:   utils.GenerateKey,
	}
}

// CreateCheckoutSession opens a hosted subscription checkout. Request
// validation runs before any payments call.
func (s *Service) CreateCheckoutSession(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	if req == nil {
		return nil, NewBillingError(ErrRequestRequired, apiErrors.ErrInvalidRequest, "")
	}

	plan := domain.Plan(strings.ToLower(strings.TrimSpace(string(req.Plan))))
	billing := domain.BillingInterval(strings.ToLower(strings.TrimSpace(string(req.Billing))))
	if billing == "" {
		billing = domain.BillingMonthly
	}

	priceID := strings.TrimSpace(req.PriceID)
	if priceID == "" {
		if !validPlan(plan) {
			return nil, NewBillingError(ErrInvalidPlan, apiErrors.ErrInvalidRequest, string(req.Plan))
		}
		if !validBilling(billing) {
			return nil, NewBillingError(ErrInvalidBilling, apiErrors.ErrInvalidRequest, string(req.Billing))
		}

		var ok bool
		if priceID, ok = s.prices.Resolve(plan, billing); !ok {
			return nil, NewBillingError(ErrPriceRequired, apiErrors.ErrMissingRequiredData, string(plan)+"/"+string(billing))
		}
	} else if plan == "" {
		plan, _ = s.prices.PlanFor(priceID)
	}

	key, err := s.newKey("checkout_")
	if err != nil {
		return nil, NewBillingError(ErrKeyGeneration, apiErrors.ErrInternalServer, err.Error())
	}

	params := domain.CheckoutParams{
		PriceID:        priceID,
		Plan:           plan,
		UserID:         strings.TrimSpace(req.UserID),
		Email:          strings.TrimSpace(req.Email),
		SuccessURL:     orDefault(req.SuccessURL, s.appURL+successPath),
		CancelURL:      orDefault(req.CancelURL, s.appURL+cancelPath),
		IdempotencyKey: key,
	}

	session, err := s.payments.CreateCheckoutSession(ctx, params)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("plan", plan).Error("billing: checkout session failed")
		return nil, integratorError(err)
	}

	log.ForContext(ctx).WithField("plan", plan).Info("billing: checkout session created")

	return session, nil
}

// HandleWebhook applies a verified subscription event to the profile store.
// Unknown event types are acknowledged without touching the store.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*domain.WebhookResult, error) {
	logger := log.ForContext(ctx)

	event, err := s.payments.ParseWebhookEvent(payload, signature)
	if err != nil {
		logger.WithError(err).Warn("billing: webhook rejected")
		return nil, integratorError(err)
	}

	logger = logger.WithFields(log.Fields{
		"event_type":      event.Type,
		"stripe_event_id": event.ID,
	})

	var handled bool
	switch event.Type {
	case domain.EventCheckoutSessionCompleted:
		handled, err = s.checkoutCompleted(ctx, logger, event.CheckoutSession)
	case domain.EventSubscriptionUpdated:
		handled, err = s.subscriptionUpdated(ctx, logger, event.Subscription)
	case domain.EventSubscriptionDeleted:
		handled, err = s.subscriptionDeleted(ctx, logger, event.Subscription)
	default:
		logger.Info("billing: webhook event ignored")
	}
	if err != nil {
		return nil, err
	}

	return &domain.WebhookResult{
		Received:  true,
		EventType: event.Type,
		Handled:   handled,
	}, nil
}

func (s *Service) checkoutCompleted(ctx context.Context, logger log.Logger, session *domain.CheckoutSessionData) (bool, error) {
	if session == nil || session.UserID == "" {
		logger.Warn("billing: checkout completed without user id, ignoring")
		return false, nil
	}
	if session.SubscriptionID == "" {
		logger.Warn("billing: checkout completed without subscription, ignoring")
		return false, nil
	}

	sub, err := s.payments.GetSubscription(ctx, session.SubscriptionID)
	if err != nil {
		logger.WithError(err).Error("billing: loading subscription failed")
		return false, integratorError(err)
	}

	customerID := session.CustomerID
	if customerID == "" {
		customerID = sub.CustomerID
	}

	profile := &domain.Profile{
		ID:                   session.UserID,
		StripeCustomerID:     nonEmpty(customerID),
		StripeSubscriptionID: nonEmpty(sub.ID),
		Plan:                 s.planFor(logger, sub.PriceID),
		SubscriptionStatus:   domain.SubscriptionStatusActive,
		CurrentPeriodEnd:     sub.CurrentPeriodEnd,
	}

	if err := s.profiles.UpsertSubscription(ctx, profile); err != nil {
		logger.WithError(err).Error("billing: saving profile failed")
		return false, NewBillingError(ErrProfileStore, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logger.WithField("plan", profile.Plan).Info("billing: subscription activated")
	return true, nil
}

func (s *Service) subscriptionUpdated(ctx context.Context, logger log.Logger, sub *domain.Subscription) (bool, error) {
	return s.modifyProfile(ctx, logger, sub, func(profile *domain.Profile) {
		profile.Plan = s.planFor(logger, sub.PriceID)
		profile.SubscriptionStatus = sub.Status
		profile.CurrentPeriodEnd = sub.CurrentPeriodEnd
	}, "billing: subscription updated")
}

func (s *Service) subscriptionDeleted(ctx context.Context, logger log.Logger, sub *domain.Subscription) (bool, error) {
	return s.modifyProfile(ctx, logger, sub, func(profile *domain.Profile) {
		profile.Plan = domain.PlanFree
		profile.SubscriptionStatus = domain.SubscriptionStatusCanceled
		profile.CurrentPeriodEnd = nil
	}, "billing: subscription canceled")
}

// modifyProfile loads the profile of the subscription's customer, applies
// change and saves it in one transaction. Events that match no profile are
// ignored.
func (s *Service) modifyProfile(
	ctx context.Context,
	logger log.Logger,
	sub *domain.Subscription,
	change func(*domain.Profile),
	done string,
) (bool, error) {
	if sub == nil || sub.CustomerID == "" {
		logger.Warn("billing: subscription event without customer, ignoring")
		return false, nil
	}

	var handled bool
	err := s.profiles.WithinTransaction(ctx, func(profiles repository.ProfileRepository) error {
		profile, err := profiles.GetByCustomerID(ctx, sub.CustomerID)
		if err != nil {
			logger.WithError(err).Error("billing: loading profile failed")
			return NewBillingError(ErrProfileStore, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if profile == nil {
			logger.Warn("billing: no profile for customer, ignoring")
			return nil
		}

		change(profile)

		if err := profiles.UpdateSubscription(ctx, profile); err != nil {
			logger.WithError(err).Error("billing: saving profile failed")
			return NewBillingError(ErrProfileStore, apiErrors.ErrDatabaseOperation, err.Error())
		}

		logger.WithField("plan", profile.Plan).Info(done)
		handled = true
		return nil
	})
	if err != nil {
		var billingErr *BillingError
		if !errors.As(err, &billingErr) {
			logger.WithError(err).Error("billing: profile transaction failed")
			err = NewBillingError(ErrProfileStore, apiErrors.ErrDatabaseOperation, err.Error())
		}
		return false, err
	}

	return handled, nil
}

// planFor maps a price to its plan. Prices missing from the table resolve to
// starter.
func (s *Service) planFor(logger log.Logger, priceID string) domain.Plan {
	if plan, ok := s.prices.PlanFor(priceID); ok {
		return plan
	}
	logger.WithField("stripe_price_id", priceID).Warn("billing: unknown price, assuming starter plan")
	return domain.PlanStarter
}

// integratorError converts the payments integrator's sentinel errors into
// billing errors with an API code.
func integratorError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return NewBillingError(err, apiErrors.ErrNotConfigured, "")
	case errors.Is(err, domain.ErrInvalidSignature):
		return NewBillingError(err, apiErrors.ErrInvalidSignature, "")
	case errors.Is(err, domain.ErrValidation):
		return NewBillingError(err, apiErrors.ErrInvalidRequest, "")
	case errors.Is(err, domain.ErrUpstream):
		return NewBillingError(err, apiErrors.ErrExternalService, "")
	default:
		return NewBillingError(err, apiErrors.ErrInternalServer, "")
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
