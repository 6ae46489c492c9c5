package storage

import "time"

// RelayCall is the outcome of one relay call. It never holds message content.
type RelayCall struct {
	ID             string    `json:"id"` // UUID
	StartedAt      time.Time `json:"started_at"`
	DurationMS     int64     `json:"duration_ms"`
	Outcome        string    `json:"outcome"`
	UpstreamStatus int       `json:"upstream_status,omitempty"` // 0 when no HTTP response was received
	MessageCount   int       `json:"message_count"`
}
