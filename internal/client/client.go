// Package client is the Go counterpart of the website's chat service: it talks to the
// relay backend and turns its replies into plain generated text.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"shark-ai/internal/chat"
)

const (
	defaultModel = "gemini-1.5-flash"
	temperature  = 0.7
	maxTokens    = 1024
	topP         = 1
)

// Client sends conversations to the relay backend.
type Client struct {
	BaseURL string
	Model   string
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for backend calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithModel overrides the model name sent to the backend.
func WithModel(model string) Option {
	return func(c *Client) {
		c.Model = model
	}
}

// WithLogger sets the logger used to report failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the relay backend rooted at baseURL (e.g. "http://localhost:3001/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   defaultModel,
		client:  http.DefaultClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request is the payload sent to the relay backend.
type Request struct {
	Model       string         `json:"model"`
	Messages    []chat.Message `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
	TopP        float64        `json:"top_p"`
	Stream      bool           `json:"stream"`
}

// SendMessage prepends the system instruction to messages, sends them to the relay and
// returns the text of the first generated candidate.
func (c *Client) SendMessage(ctx context.Context, messages []chat.Message) (string, error) {
	reply, err := c.sendMessage(ctx, messages)
	if err != nil {
		c.logger.ErrorContext(ctx, "error calling backend AI proxy", "error", err)
		return "", err
	}
	return reply, nil
}

func (c *Client) sendMessage(ctx context.Context, messages []chat.Message) (string, error) {
	all := make([]chat.Message, 0, len(messages)+1)
	all = append(all, chat.SystemMessage(chat.SystemInstruction))
	all = append(all, messages...)

	body, err := json.Marshal(Request{
		Model:       c.Model,
		Messages:    all,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        topP,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/ai", bytes.NewReader(body))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &BackendError{
			StatusCode: resp.StatusCode,
			Message:    backendErrorMessage(raw),
		}
	}

	var generated genai.GenerateContentResponse
	if err := json.Unmarshal(raw, &generated); err != nil {
		return "", &NetworkError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return firstCandidateText(&generated)
}

// firstCandidateText returns the first part of the first candidate; other candidates are ignored.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0] == nil {
		return "", ErrEmptyResponse
	}
	return candidate.Content.Parts[0].Text, nil
}

// backendErrorMessage reads the relay's {"error": ...} body, which carries either a string
// or the upstream error object.
func backendErrorMessage(raw []byte) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Error) > 0 {
		var msg string
		if err := json.Unmarshal(body.Error, &msg); err == nil && msg != "" {
			return msg
		}
		var structured struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Error, &structured); err == nil && structured.Message != "" {
			return structured.Message
		}
	}
	return "Unknown error"
}

// AnalyzeMarineData asks for an analysis of a kind of marine data.
func (c *Client) AnalyzeMarineData(ctx context.Context, dataType, query string) (string, error) {
	return c.SendMessage(ctx, []chat.Message{chat.UserMessage(chat.MarineDataPrompt(dataType, query))})
}

// IdentifySpecies asks for a species identification.
func (c *Client) IdentifySpecies(ctx context.Context, description string) (string, error) {
	return c.SendMessage(ctx, []chat.Message{chat.UserMessage(chat.SpeciesPrompt(description))})
}

// InterpretEDNA asks for an interpretation of eDNA sample data.
func (c *Client) InterpretEDNA(ctx context.Context, sampleData string) (string, error) {
	return c.SendMessage(ctx, []chat.Message{chat.UserMessage(chat.EDNAPrompt(sampleData))})
}

// AnalyzeOceanConditions asks for an analysis of ocean conditions.
func (c *Client) AnalyzeOceanConditions(ctx context.Context, conditions string) (string, error) {
	return c.SendMessage(ctx, []chat.Message{chat.UserMessage(chat.OceanConditionsPrompt(conditions))})
}
