package service

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned when the upstream credential is not configured.
	ErrConfig = errors.New("missing API key")
	// ErrUpstream is matched by every *UpstreamError.
	ErrUpstream = errors.New("upstream service error")
	// ErrNetwork is returned when the upstream service could not be reached.
	ErrNetwork = errors.New("failed to contact upstream service")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// UpstreamError is a non-success HTTP response from the upstream service.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Detail)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// WrapError classifies err under kind, so both match with errors.Is.
func WrapError(kind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", kind, err)
}
