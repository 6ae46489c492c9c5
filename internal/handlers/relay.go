package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"shark-ai/internal/chat"
	"shark-ai/internal/contextutil"
	"shark-ai/internal/service"
)

const (
	configErrorMessage  = "Server configuration error: Missing API Key."
	networkErrorMessage = "Failed to contact Gemini API. Check the server terminal for more details."
)

// RelayHandler handles HTTP requests for the AI relay.
type RelayHandler struct {
	relayService service.RelayService
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(relayService service.RelayService) *RelayHandler {
	return &RelayHandler{
		relayService: relayService,
	}
}

// RelayRequest represents the HTTP request payload for the relay.
// Generation fields sent by clients (model, temperature, ...) are ignored.
type RelayRequest struct {
	Messages []chat.Message `json:"messages"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for the relay.
func (h *RelayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Unknown roles are relayed verbatim; only note them.
	for i, msg := range req.Messages {
		if !msg.Role.Valid() {
			logger.WarnContext(ctx, "message with unknown role", "index", i, "role", string(msg.Role))
		}
	}

	svcResp, err := h.relayService.Relay(ctx, service.RelayRequest{Messages: req.Messages})
	if err != nil {
		handleServiceError(ctx, w, err)
		return
	}

	// The upstream body is passed through unchanged.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svcResp.Body); err != nil {
		logger.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// handleServiceError maps service errors to HTTP status codes and responses.
// Transport details stay in the server log; clients get a generic message.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, service.ErrConfig) {
		writeError(w, http.StatusInternalServerError, configErrorMessage)
		return
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		status := upstreamErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeError(w, status, upstreamErr.Detail)
		return
	}

	writeError(w, http.StatusInternalServerError, networkErrorMessage)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
