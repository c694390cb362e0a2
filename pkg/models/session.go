// Package models contains request/response models and business domain types.
package models

import (
	"github.com/buildloop/foundry/ent"
)

// CreateSessionRequest contains fields for creating a HITL session
type CreateSessionRequest struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	ProjectType string `json:"project_type,omitempty"`
	RepoURL     string `json:"repo_url,omitempty"`
}

// RespondRequest is one user dialogue turn
type RespondRequest struct {
	Message string `json:"message"`
}

// RespondResponse carries the assistant turn plus updated session progress
type RespondResponse struct {
	Message      *ent.Message `json:"message"`
	State        string       `json:"state"`
	Progress     int          `json:"progress"`
	ReadyForSpec bool         `json:"ready_for_spec"`
}

// RequestRevisionRequest sends reviewer feedback back into the dialogue
type RequestRevisionRequest struct {
	Feedback string `json:"feedback"`
}

// StartBuildRequest begins ticket generation; Confirmed must be true
type StartBuildRequest struct {
	Confirmed bool `json:"confirmed"`
}

// StartBuildResponse contains the building session and generated ticket count
type StartBuildResponse struct {
	Session     *ent.Session `json:"session"`
	TicketCount int          `json:"ticket_count"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	State  string `json:"state,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// SessionResponse wraps a Session with its message history
type SessionResponse struct {
	*ent.Session
	Messages []*ent.Message `json:"messages,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
