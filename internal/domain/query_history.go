package domain

import "time"

// QueryHistoryEntry records one executed query.
type QueryHistoryEntry struct {
	ID           string    `json:"id"`
	SQLText      string    `json:"sql"`
	TableID      string    `json:"table_id,omitempty"`
	ColumnCount  int       `json:"column_count"`
	Status       string    `json:"status"` // OK or ERROR
	ErrorMessage *string   `json:"error_message,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// Query history statuses.
const (
	QueryStatusOK    = "OK"
	QueryStatusError = "ERROR"
)
