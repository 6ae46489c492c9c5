package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_call_lister.go -package=mocks shark-ai/internal/handlers CallLister

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"shark-ai/internal/contextutil"
	"shark-ai/internal/storage"
)

const (
	defaultCallsLimit = 50
	maxCallsLimit     = 500
)

// CallLister reads the relay call ledger.
type CallLister interface {
	// Recent lists recorded relay calls, newest first.
	Recent(ctx context.Context, limit int) ([]storage.RelayCall, error)
	// CountByOutcome counts all recorded calls per outcome.
	CountByOutcome(ctx context.Context) (map[string]int, error)
}

// CallsHandler serves the relay call ledger.
type CallsHandler struct {
	lister CallLister
}

// NewCallsHandler creates a new CallsHandler.
func NewCallsHandler(lister CallLister) *CallsHandler {
	return &CallsHandler{lister: lister}
}

// CallsResponse represents the ledger listing.
type CallsResponse struct {
	Calls []storage.RelayCall `json:"calls"`
	// Outcomes counts every recorded call, not only the listed ones.
	Outcomes map[string]int `json:"outcomes"`
}

// ServeHTTP handles GET /api/calls?limit=N.
func (h *CallsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := defaultCallsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxCallsLimit)
	}

	calls, err := h.lister.Recent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list relay calls", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list relay calls")
		return
	}
	if calls == nil {
		calls = []storage.RelayCall{}
	}

	outcomes, err := h.lister.CountByOutcome(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count relay calls", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list relay calls")
		return
	}
	if outcomes == nil {
		outcomes = map[string]int{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CallsResponse{Calls: calls, Outcomes: outcomes}); err != nil {
		logger.ErrorContext(ctx, "failed to encode calls response", "error", err)
	}
}
