//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package mailing

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/email"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
)

const defaultName = "there"

type WelcomeSender interface {
	SendWelcome(ctx context.Context, req *domain.WelcomeRequest) (*domain.EmailReceipt, error)
}

type Service struct {
	mailer email.Mailer
	appURL string
}

func NewService(cfg *config.Config, mailer email.Mailer) WelcomeSender {
	return &Service{
		mailer: mailer,
		appURL: cfg.App.URL,
	}
}

// SendWelcome sends the onboarding email. One attempt, no retries.
func (s *Service) SendWelcome(ctx context.Context, req *domain.WelcomeRequest) (*domain.EmailReceipt, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" {
		return nil, NewMailError(ErrEmailRequired, apiErrors.ErrMissingRequiredData, "")
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, NewMailError(ErrInvalidEmail, apiErrors.ErrInvalidRequest, req.Email)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultName
	}

	html, text, err := renderWelcome(name, s.appURL)
	if err != nil {
		return nil, NewMailError(ErrRender, apiErrors.ErrInternalServer, err.Error())
	}

	id, err := s.mailer.Send(ctx, domain.Email{
		To:      addr.Address,
		Subject: welcomeSubject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("mailing: welcome email failed")

		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			return nil, NewMailError(err, apiErrors.ErrNotConfigured, "")
		case errors.Is(err, domain.ErrUpstream):
			return nil, NewMailError(err, apiErrors.ErrExternalService, "")
		default:
			return nil, NewMailError(err, apiErrors.ErrInternalServer, "")
		}
	}

	log.ForContext(ctx).WithField("email_id", id).Info("mailing: welcome email sent")

	return &domain.EmailReceipt{ID: id}, nil
}
