package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_upstream.go -package=mocks shark-ai/internal/service Upstream
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_call_recorder.go -package=mocks shark-ai/internal/service CallRecorder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_relay_service.go -package=mocks -mock_names=RelayService=MockRelayService shark-ai/internal/service RelayService

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shark-ai/internal/chat"
	"shark-ai/internal/contextutil"
	"shark-ai/internal/gemini"
	"shark-ai/internal/metrics"
	"shark-ai/internal/storage"
)

// Upstream is the generative API the relay forwards prompts to.
// This interface is defined from the service layer's perspective (consumer-first).
type Upstream interface {
	// GenerateContent sends one prompt and returns the raw JSON response body.
	// Non-success responses are reported as *gemini.APIError.
	GenerateContent(ctx context.Context, apiKey, prompt string) (json.RawMessage, error)
}

// CallRecorder stores relay call outcomes.
type CallRecorder interface {
	Insert(ctx context.Context, call *storage.RelayCall) error
}

// Outcome is the terminal state of one relay call.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeConfigError    Outcome = "config_error"
	OutcomeInvalidRequest Outcome = "invalid_request"
	OutcomeUpstreamError  Outcome = "upstream_error"
	OutcomeNetworkError   Outcome = "network_error"
)

// RelayRequest represents a relay request in the domain layer.
type RelayRequest struct {
	Messages []chat.Message
}

// RelayResponse carries the upstream success body, unchanged.
type RelayResponse struct {
	Body json.RawMessage
}

// RelayService forwards chat conversations to the upstream generative API.
type RelayService interface {
	// Relay renders the conversation into one prompt and performs exactly one upstream call.
	Relay(ctx context.Context, req RelayRequest) (RelayResponse, error)
}

// RelayOption configures a relay service.
type RelayOption func(*relayService)

// WithCallRecorder records the outcome of every relay call.
func WithCallRecorder(recorder CallRecorder) RelayOption {
	return func(s *relayService) {
		s.recorder = recorder
	}
}

// relayService implements RelayService.
type relayService struct {
	upstream Upstream
	apiKey   string
	recorder CallRecorder
	now      func() time.Time
}

// NewRelayService creates a new RelayService.
// An empty apiKey is accepted; every call then fails with ErrConfig.
func NewRelayService(upstream Upstream, apiKey string, opts ...RelayOption) RelayService {
	s := &relayService{
		upstream: upstream,
		apiKey:   apiKey,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Relay forwards req upstream and maps the result onto ErrConfig, *ValidationError,
// *UpstreamError or ErrNetwork. It never retries.
func (s *relayService) Relay(ctx context.Context, req RelayRequest) (RelayResponse, error) {
	call := &storage.RelayCall{
		ID:           uuid.New().String(),
		StartedAt:    s.now(),
		MessageCount: len(req.Messages),
	}
	logger := contextutil.LoggerFromContext(ctx).With("call_id", call.ID)

	resp, outcome, err := s.relay(ctx, logger, req)

	duration := s.now().Sub(call.StartedAt)
	call.DurationMS = duration.Milliseconds()
	call.Outcome = string(outcome)
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		call.UpstreamStatus = upstreamErr.StatusCode
	}
	s.complete(ctx, logger, call, duration)

	return resp, err
}

func (s *relayService) relay(ctx context.Context, logger *slog.Logger, req RelayRequest) (RelayResponse, Outcome, error) {
	if s.apiKey == "" {
		logger.ErrorContext(ctx, "GEMINI_API_KEY is not set; set it in the environment or a .env file")
		return RelayResponse{}, OutcomeConfigError, ErrConfig
	}

	if req.Messages == nil {
		logger.WarnContext(ctx, "relay request without messages")
		return RelayResponse{}, OutcomeInvalidRequest, &ValidationError{
			Field:   "messages",
			Message: "is required",
		}
	}

	prompt := chat.RenderPrompt(req.Messages)
	logger.DebugContext(ctx, "forwarding prompt upstream", "message_count", len(req.Messages), "prompt_length", len(prompt))

	// The upstream call is not cancelled when the caller goes away.
	body, err := s.upstream.GenerateContent(context.WithoutCancel(ctx), s.apiKey, prompt)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			logger.ErrorContext(ctx, "upstream returned an error", "status", apiErr.StatusCode, "detail", apiErr.Detail())
			return RelayResponse{}, OutcomeUpstreamError, &UpstreamError{
				StatusCode: apiErr.StatusCode,
				Detail:     apiErr.Detail(),
			}
		}
		logger.ErrorContext(ctx, "failed to contact upstream; likely a network issue or an invalid API key", "error", err)
		return RelayResponse{}, OutcomeNetworkError, WrapError(ErrNetwork, err)
	}

	logger.InfoContext(ctx, "relay completed", "message_count", len(req.Messages), "response_bytes", len(body))
	return RelayResponse{Body: body}, OutcomeOK, nil
}

// complete publishes the outcome to metrics and the optional ledger.
// Ledger failures are logged and never change the relay result.
func (s *relayService) complete(ctx context.Context, logger *slog.Logger, call *storage.RelayCall, duration time.Duration) {
	metrics.RelayCompleted(call.Outcome, call.UpstreamStatus, duration)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.Insert(context.WithoutCancel(ctx), call); err != nil {
		logger.WarnContext(ctx, "failed to record relay call", "error", err)
	}
}
