package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cashpulse-api/internal/config"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

type fakeSender struct {
	req *resend.SendEmailRequest
	err error
}

func (f *fakeSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.req = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "em_123"}, nil
}

func TestSend_NotConfigured(t *testing.T) {
	svc := New(&config.Config{})

	_, err := svc.Send(context.Background(), domain.Email{To: "a@b.co"})

	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSend(t *testing.T) {
	fake := &fakeSender{}
	svc := &ResendService{from: "CashPulse <hello@cashpulse.app>", emails: fake}

	id, err := svc.Send(context.Background(), domain.Email{
		To:      " owner@example.com ",
		Subject: "Welcome",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
	})

	require.NoError(t, err)
	assert.Equal(t, "em_123", id)
	assert.Equal(t, "CashPulse <hello@cashpulse.app>", fake.req.From)
	assert.Equal(t, []string{"owner@example.com"}, fake.req.To)
	assert.Equal(t, "Welcome", fake.req.Subject)
	assert.Equal(t, "<p>Hi</p>", fake.req.Html)
	assert.Equal(t, "Hi", fake.req.Text)
}

func TestSend_ExplicitFrom(t *testing.T) {
	fake := &fakeSender{}
	svc := &ResendService{from: "default@cashpulse.app", emails: fake}

	_, err := svc.Send(context.Background(), domain.Email{From: "billing@cashpulse.app", To: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, "billing@cashpulse.app", fake.req.From)
}

func TestSend_Upstream(t *testing.T) {
	svc := &ResendService{emails: &fakeSender{err: errors.New("422 invalid from")}}

	_, err := svc.Send(context.Background(), domain.Email{To: "a@b.co"})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "invalid from")
}
