package client

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the backend reply holds no generated text.
var ErrEmptyResponse = errors.New("no response from Gemini API")

// BackendError is a non-success reply from the relay backend.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("Backend error: %d - %s", e.StatusCode, e.Message)
}

// NetworkError is returned when the backend could not be reached or its reply could not be read.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling backend: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
