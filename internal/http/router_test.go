package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	handlermocks "shark-ai/internal/handlers/mocks"
	"shark-ai/internal/metrics"
	"shark-ai/internal/service"
	"shark-ai/internal/service/mocks"
	"shark-ai/internal/storage"
)

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{RelayService: mocks.NewMockRelayService(ctrl)})

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRelayService := mocks.NewMockRelayService(ctrl)
	router := NewRouter(&Deps{
		RelayService:    mockRelayService,
		MetricsGatherer: metrics.NewRegistry(),
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /api/ai exists",
			method:     http.MethodPost,
			path:       "/api/ai",
			wantStatus: http.StatusBadRequest, // Bad request due to empty body, but route exists
		},
		{
			name:       "GET /api/ai method not allowed",
			method:     http.MethodGet,
			path:       "/api/ai",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /api/calls disabled without ledger",
			method:     http.MethodGet,
			path:       "/api/calls",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GET /metrics",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/chat",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_Relay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"candidates":[{"content":{"parts":[{"text":"Hello"}]}}]}`
	mockRelayService := mocks.NewMockRelayService(ctrl)
	mockRelayService.EXPECT().
		Relay(gomock.Any(), gomock.Any()).
		Return(service.RelayResponse{Body: json.RawMessage(body)}, nil)

	router := NewRouter(&Deps{RelayService: mockRelayService})

	req := httptest.NewRequest(http.MethodPost, "/api/ai", bytes.NewBufferString(`{"messages":[{"role":"user","content":"Hi"}]}`))
	req.Header.Set("Origin", "https://sharkai.example.org")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Router POST /api/ai status = %v, want %v", w.Code, http.StatusOK)
	}
	if w.Body.String() != body {
		t.Errorf("Router POST /api/ai body = %s, want %s", w.Body.String(), body)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Router should apply CORS middleware")
	}
}

func TestRouter_Calls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := handlermocks.NewMockCallLister(ctrl)
	mockLister.EXPECT().Recent(gomock.Any(), 5).Return([]storage.RelayCall{{ID: "x", Outcome: "ok"}}, nil)
	mockLister.EXPECT().CountByOutcome(gomock.Any()).Return(map[string]int{"ok": 1}, nil)

	router := NewRouter(&Deps{
		RelayService: mocks.NewMockRelayService(ctrl),
		CallStore:    mockLister,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/calls?limit=5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Router GET /api/calls status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"id":"x"`) || !strings.Contains(w.Body.String(), `"outcomes":{"ok":1}`) {
		t.Errorf("Router GET /api/calls body = %s", w.Body.String())
	}
}

func TestRouter_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{RelayService: mocks.NewMockRelayService(ctrl)})

	req := httptest.NewRequest(http.MethodOptions, "/api/ai", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code < 200 || w.Code > 299 {
		t.Errorf("Router OPTIONS /api/ai status = %v, want 2xx", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
