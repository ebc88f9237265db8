package billing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/cashpulse-api/internal/domain"
)

var (
	ErrRequestRequired = fmt.Errorf("%w: checkout request is required", domain.ErrValidation)
	ErrInvalidPlan     = fmt.Errorf("%w: plan must be starter or pro", domain.ErrValidation)
	ErrInvalidBilling  = fmt.Errorf("%w: billing must be monthly or annual", domain.ErrValidation)
	ErrPriceRequired   = fmt.Errorf("%w: no price configured for the requested plan", domain.ErrValidation)

	ErrProfileStore  = errors.New("could not update subscriber profile")
	ErrKeyGeneration = errors.New("could not generate idempotency key")
)

// BillingError carries the API code the handler should answer with.
type BillingError struct {
	Err     error
	Code    string
	Details string
}

func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(err error, code string, details string) *BillingError {
	return &BillingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
