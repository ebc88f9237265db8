package mailing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/cashpulse-api/internal/domain"
)

var (
	ErrEmailRequired = fmt.Errorf("%w: email is required", domain.ErrValidation)
	ErrInvalidEmail  = fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	ErrRender        = errors.New("could not render email")
)

type MailError struct {
	Err     error
	Code    string
	Details string
}

func (e *MailError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MailError) Unwrap() error {
	return e.Err
}

func NewMailError(err error, code string, details string) *MailError {
	return &MailError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
