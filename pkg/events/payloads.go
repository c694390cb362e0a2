package events

import "time"

// BasePayload carries the fields present on every published event.
type BasePayload struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// NewBase returns a BasePayload stamped with the current time.
func NewBase(eventType string) BasePayload {
	return BasePayload{Type: eventType, Timestamp: time.Now().Format(time.RFC3339Nano)}
}

// SessionUpdatePayload is published on every session state transition.
type SessionUpdatePayload struct {
	BasePayload
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Progress  int    `json:"progress"`
}

// SessionMessagePayload is published when a dialogue message is persisted.
type SessionMessagePayload struct {
	BasePayload
	SessionID   string `json:"session_id"`
	MessageID   string `json:"message_id"`
	Role        string `json:"role"`
	MessageType string `json:"message_type"`
	Content     string `json:"content"`
}

// SpecGeneratedPayload is published when the spec card is produced.
type SpecGeneratedPayload struct {
	BasePayload
	SessionID string `json:"session_id"`
}

// TicketsGeneratedPayload is published after the atomic ticket insertion.
type TicketsGeneratedPayload struct {
	BasePayload
	SessionID   string `json:"session_id"`
	ProjectID   string `json:"project_id"`
	TicketCount int    `json:"ticket_count"`
}

// ApprovalPayload is published when an approval is requested or resolved.
type ApprovalPayload struct {
	BasePayload
	SessionID    string `json:"session_id"`
	ApprovalID   string `json:"approval_id"`
	ApprovalType string `json:"approval_type"`
	Action       string `json:"action"`
	Status       string `json:"status"`
	ResolvedBy   string `json:"resolved_by,omitempty"`
}

// BuildProgressPayload is published as tickets move through the build loop.
type BuildProgressPayload struct {
	BasePayload
	SessionID string `json:"session_id"`
	Done      int    `json:"done"`
	Total     int    `json:"total"`
}

// TicketActivityPayload is published for every ticket state change, lease
// action, worker report, and critic verdict.
type TicketActivityPayload struct {
	BasePayload
	TicketID string         `json:"ticket_id"`
	Activity string         `json:"activity"` // e.g. "state_changed", "lease_acquired", "lease_expired", "critic_verdict"
	State    string         `json:"state,omitempty"`
	Detail   map[string]any `json:"detail,omitempty"`
}
