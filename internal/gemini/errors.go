package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when no HTTP response could be obtained from the API.
	ErrTransport = errors.New("gemini transport failure")
	// ErrInvalidResponse is returned when a successful response body is not valid JSON.
	ErrInvalidResponse = errors.New("gemini returned an invalid response body")
)

// APIError is a non-success HTTP response from the API.
type APIError struct {
	StatusCode int
	// Status is the HTTP reason phrase, e.g. "Too Many Requests".
	Status string
	// Message is the error detail from the response body, empty when the body had none.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api error %d: %s", e.StatusCode, e.Detail())
}

// Detail returns the message reported by the API, or a generic one built from the status text.
func (e *APIError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	return "Gemini API Error: " + e.Status
}

// parseErrorMessage extracts the error detail from a response body.
// It accepts {"error":{"message":"..."}} and {"error":"..."}; anything else yields "".
func parseErrorMessage(raw []byte) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Error) == 0 {
		return ""
	}

	var msg string
	if err := json.Unmarshal(body.Error, &msg); err == nil {
		return msg
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &structured); err == nil {
		return structured.Message
	}
	return ""
}
