package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry represents a persisted record of one wlsync run.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	Source     string    `json:"source,omitempty"`
	Whitelist  string    `json:"whitelist,omitempty"`
	Status     string    `json:"status,omitempty"`
	Extracted  int       `json:"extracted"`
	Added      int       `json:"added"`
	Total      int       `json:"total"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}
