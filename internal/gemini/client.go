package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is a client for the Gemini generateContent REST API.
type Client struct {
	BaseURL string
	Model   string
	client  *http.Client
}

// NewClient creates a new Gemini client.
func NewClient(baseURL, model string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		client:  http.DefaultClient,
	}
}

// WithHTTPClient replaces the transport used for outbound calls.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

// GenerateContent sends one generateContent request for prompt and returns the raw JSON body.
//
// A non-2xx response yields *APIError. Failing to get a response at all yields an error
// wrapping ErrTransport, and a 2xx body that is not JSON yields ErrInvalidResponse.
func (c *Client) GenerateContent(ctx context.Context, apiKey, prompt string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.BaseURL, url.PathEscape(c.Model), url.QueryEscape(apiKey))

	body, err := json.Marshal(NewGenerateContentRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrTransport, redactKey(err, apiKey))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrTransport, redactKey(err, apiKey))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Message:    parseErrorMessage(raw),
		}
	}

	if !json.Valid(raw) {
		return nil, ErrInvalidResponse
	}

	return json.RawMessage(raw), nil
}

// statusText returns the reason phrase of a response.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// redactKey replaces the key query parameter in transport errors, which embed the request URL.
func redactKey(err error, apiKey string) error {
	var ue *url.Error
	if apiKey == "" || !errors.As(err, &ue) {
		return err
	}
	return &url.Error{
		Op:  ue.Op,
		URL: redactURL(ue.URL, apiKey),
		Err: ue.Err,
	}
}

func redactURL(rawURL, apiKey string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Unparseable URLs still carry the key as written by GenerateContent.
		return strings.ReplaceAll(rawURL, "key="+url.QueryEscape(apiKey), "key=REDACTED")
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
