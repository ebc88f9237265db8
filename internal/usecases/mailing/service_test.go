package mailing

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashpulse-api/infrastructure/integrator/email/mocks"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
	"github.com/vfg2006/cashpulse-api/pkg/apiErrors"
	"github.com/vfg2006/cashpulse-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (WelcomeSender, *mocks.MockMailer) {
	t.Helper()
	log.SetupTestLogger()

	mailer := mocks.NewMockMailer(gomock.NewController(t))
	cfg := &config.Config{App: config.App{URL: "https://app.cashpulse.ae"}}

	return NewService(cfg, mailer), mailer
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	var mailErr *MailError
	require.True(t, errors.As(err, &mailErr), "expected MailError, got %v", err)
	assert.Equal(t, code, mailErr.Code)
}

func TestSendWelcome(t *testing.T) {
	svc, mailer := newService(t)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Email) (string, error) {
			assert.Equal(t, "amal@example.com", msg.To)
			assert.Equal(t, welcomeSubject, msg.Subject)
			assert.Contains(t, msg.HTML, "<!DOCTYPE html>")
			assert.Contains(t, msg.HTML, "<h1>Welcome, Amal!</h1>")
			assert.Contains(t, msg.HTML, `<a href="https://app.cashpulse.ae/dashboard">dashboard</a>`)
			assert.Contains(t, msg.HTML, "<strong>CashPulse</strong>")
			assert.Contains(t, msg.Text, "# Welcome, Amal!")
			return "em_1", nil
		})

	receipt, err := svc.SendWelcome(context.Background(), &domain.WelcomeRequest{Email: " amal@example.com ", Name: " Amal "})

	require.NoError(t, err)
	assert.Equal(t, "em_1", receipt.ID)
}

func TestSendWelcome_DefaultName(t *testing.T) {
	svc, mailer := newService(t)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Email) (string, error) {
			assert.Contains(t, msg.HTML, "<h1>Welcome, there!</h1>")
			return "em_2", nil
		})

	_, err := svc.SendWelcome(context.Background(), &domain.WelcomeRequest{Email: "owner@example.com"})

	require.NoError(t, err)
}

func TestSendWelcome_NameIsNotMarkup(t *testing.T) {
	svc, mailer := newService(t)

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg domain.Email) (string, error) {
			assert.NotContains(t, msg.HTML, "<script>")
			assert.NotContains(t, msg.HTML, "<em>")
			return "em_3", nil
		})

	_, err := svc.SendWelcome(context.Background(), &domain.WelcomeRequest{Email: "owner@example.com", Name: "<script>_x_</script>"})

	require.NoError(t, err)
}

func TestSendWelcome_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.WelcomeRequest
		err  error
		code string
	}{
		{"nil request", nil, ErrEmailRequired, apiErrors.ErrMissingRequiredData},
		{"blank email", &domain.WelcomeRequest{Email: "  "}, ErrEmailRequired, apiErrors.ErrMissingRequiredData},
		{"malformed email", &domain.WelcomeRequest{Email: "not-an-email"}, ErrInvalidEmail, apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.SendWelcome(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			requireCode(t, err, tt.code)
		})
	}
}

func TestSendWelcome_MailerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not configured", pkgerrors.Wrap(domain.ErrNotConfigured, "email: missing API key"), apiErrors.ErrNotConfigured},
		{"upstream", pkgerrors.Wrap(domain.ErrUpstream, "email: sending: 422"), apiErrors.ErrExternalService},
		{"unexpected", errors.New("boom"), apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mailer := newService(t)
			mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", tt.err)

			_, err := svc.SendWelcome(context.Background(), &domain.WelcomeRequest{Email: "owner@example.com"})

			requireCode(t, err, tt.code)
		})
	}
}
