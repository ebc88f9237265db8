package email

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Mailer interface {
	Send(ctx context.Context, message domain.Email) (string, error)
}

type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type ResendService struct {
	from   string
	emails sender
}

// New builds the Resend integrator. Without an API key every Send returns
// domain.ErrNotConfigured.
func New(cfg *config.Config) Mailer {
	service := &ResendService{from: cfg.Resend.From}

	if cfg.Resend.APIKey == "" {
		logrus.Warn("email: RESEND_API_KEY not set, transactional email is disabled")
		return service
	}

	service.emails = resend.NewClient(cfg.Resend.APIKey).Emails
	return service
}

// Send delivers message and returns the provider's message id. An empty From
// uses the configured sender.
func (s *ResendService) Send(ctx context.Context, message domain.Email) (string, error) {
	if s.emails == nil {
		return "", errors.Wrap(domain.ErrNotConfigured, "email: missing API key")
	}

	from := message.From
	if from == "" {
		from = s.from
	}

	resp, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{strings.TrimSpace(message.To)},
		Subject: message.Subject,
		Html:    message.HTML,
		Text:    message.Text,
	})
	if err != nil {
		return "", errors.Wrapf(domain.ErrUpstream, "email: sending: %v", err)
	}

	logrus.WithField("email_id", resp.Id).Debug("email: message accepted")

	return resp.Id, nil
}
