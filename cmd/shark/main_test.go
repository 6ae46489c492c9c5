package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"shark-ai/internal/client"
)

// backend records the last user message it received.
type backend struct {
	mu       sync.Mutex
	lastUser string
}

func (b *backend) sent() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUser
}

func newBackend(t *testing.T, status int, body string, b *backend) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req client.Request
		_ = json.NewDecoder(r.Body).Decode(&req) // Ignore decode error in test
		if len(req.Messages) > 0 {
			b.mu.Lock()
			b.lastUser = req.Messages[len(req.Messages)-1].Content
			b.mu.Unlock()
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun(t *testing.T) {
	reply := `{"candidates":[{"content":{"parts":[{"text":"**Great white** sighted"}]}}]}`

	tests := []struct {
		name       string
		status     int
		body       string
		args       []string
		wantCode   int
		wantStdout string
		wantSent   string
		wantStderr string
	}{
		{
			name:       "chat",
			status:     http.StatusOK,
			body:       reply,
			args:       []string{"what", "is", "upwelling?"},
			wantCode:   0,
			wantStdout: "**Great white** sighted",
			wantSent:   "what is upwelling?",
		},
		{
			name:       "marine mode",
			status:     http.StatusOK,
			body:       reply,
			args:       []string{"-mode", "marine", "-type", "sonar log", "ping at 40m"},
			wantCode:   0,
			wantSent:   "Analyze this sonar log: ping at 40m",
			wantStdout: "sighted",
		},
		{
			name:     "species mode",
			status:   http.StatusOK,
			body:     reply,
			args:     []string{"-mode", "species", "grey", "torpedo"},
			wantCode: 0,
			wantSent: "Identify species: grey torpedo",
		},
		{
			name:     "edna mode",
			status:   http.StatusOK,
			body:     reply,
			args:     []string{"-mode", "edna", "COI"},
			wantCode: 0,
			wantSent: "Interpret eDNA: COI",
		},
		{
			name:     "ocean mode",
			status:   http.StatusOK,
			body:     reply,
			args:     []string{"-mode", "ocean", "SST 24C"},
			wantCode: 0,
			wantSent: "Analyze ocean conditions: SST 24C",
		},
		{
			name:       "html output",
			status:     http.StatusOK,
			body:       reply,
			args:       []string{"-html", "hi"},
			wantCode:   0,
			wantStdout: "<strong>Great white</strong>",
		},
		{
			name:       "backend error exits 1",
			status:     http.StatusTooManyRequests,
			body:       `{"error":"rate limited"}`,
			args:       []string{"hi"},
			wantCode:   1,
			wantStderr: "Backend error: 429 - rate limited",
		},
		{
			name:       "empty response exits 1",
			status:     http.StatusOK,
			body:       `{"candidates":[]}`,
			args:       []string{"hi"},
			wantCode:   1,
			wantStderr: "no response from Gemini API",
		},
		{
			name:     "unknown mode",
			status:   http.StatusOK,
			body:     reply,
			args:     []string{"-mode", "whale", "hi"},
			wantCode: 2,
		},
		{
			name:     "missing text",
			status:   http.StatusOK,
			body:     reply,
			args:     []string{"-mode", "chat"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &backend{}
			server := newBackend(t, tt.status, tt.body, b)

			var stdout, stderr bytes.Buffer
			args := append([]string{"-backend", server.URL}, tt.args...)
			code := run(context.Background(), args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Fatalf("run() = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantSent != "" && b.sent() != tt.wantSent {
				t.Errorf("sent %q, want %q", b.sent(), tt.wantSent)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
