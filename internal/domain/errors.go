package domain

import "errors"

// Error classes shared by usecases and integrators. Handlers map them to HTTP
// status codes.
var (
	ErrValidation       = errors.New("invalid request")
	ErrNotConfigured    = errors.New("service not configured")
	ErrUpstream         = errors.New("upstream service failed")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
