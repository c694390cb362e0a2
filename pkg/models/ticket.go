package models

import (
	"time"

	"github.com/buildloop/foundry/ent"
)

// CreateTicketRequest contains fields for creating a ticket
type CreateTicketRequest struct {
	ProjectID          string   `json:"project_id"`
	SessionID          string   `json:"session_id,omitempty"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	Epic               string   `json:"epic,omitempty"`
	Scope              string   `json:"scope,omitempty"`
	FileHints          []string `json:"file_hints,omitempty"`
	Priority           string   `json:"priority,omitempty"`
	AssigneeKind       string   `json:"assignee_kind,omitempty"`
	RepoURL            string   `json:"repo_url,omitempty"`
	LeaseSeconds       int      `json:"lease_seconds,omitempty"`
	// DependsOn lists ticket ids this ticket is blocked by.
	DependsOn []string `json:"depends_on,omitempty"`
}

// UpdateTicketRequest contains mutable ticket fields; nil means unchanged
type UpdateTicketRequest struct {
	Title              *string   `json:"title,omitempty"`
	Description        *string   `json:"description,omitempty"`
	AcceptanceCriteria *[]string `json:"acceptance_criteria,omitempty"`
	Epic               *string   `json:"epic,omitempty"`
	Scope              *string   `json:"scope,omitempty"`
	FileHints          *[]string `json:"file_hints,omitempty"`
	Priority           *string   `json:"priority,omitempty"`
	RepoURL            *string   `json:"repo_url,omitempty"`
}

// TicketFilters contains filtering options for listing tickets
type TicketFilters struct {
	State     string `json:"state,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Epic      string `json:"epic,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// TicketListResponse contains a paginated ticket list
type TicketListResponse struct {
	Tickets    []*ent.Ticket `json:"tickets"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// ClaimRequest is an agent asking for the next ready ticket
type ClaimRequest struct {
	WorkerID     string `json:"worker_id"`
	LeaseSeconds int    `json:"lease_seconds,omitempty"`
}

// ClaimResponse carries the claimed ticket and the project execution
// settings the worker needs; nil Ticket means no work
type ClaimResponse struct {
	Ticket          *ent.Ticket    `json:"ticket"`
	ProjectSettings map[string]any `json:"projectSettings,omitempty"`
}

// HeartbeatRequest renews a lease for its holder
type HeartbeatRequest struct {
	WorkerID string `json:"worker_id"`
}

// HeartbeatResponse returns the extended lease expiry
type HeartbeatResponse struct {
	LeaseExpires time.Time `json:"lease_expires"`
}

// CompleteRequest is a worker reporting the outcome of its attempt
type CompleteRequest struct {
	WorkerID       string            `json:"worker_id"`
	Success        bool              `json:"success"`
	BranchName     string            `json:"branch_name,omitempty"`
	PRURL          string            `json:"pr_url,omitempty"`
	Files          []string          `json:"files,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	CriteriaStatus []CriterionStatus `json:"criteria_status,omitempty"`
	FailureClass   string            `json:"failure_class,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// HoldRequest pauses a ticket with a reason
type HoldRequest struct {
	Reason string `json:"reason"`
}

// DeployResultRequest is the inbound deploy (or PR-closure) completion signal
type DeployResultRequest struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
	Attempt int    `json:"attempt"`
}

// CriticFeedbackItem is one structured finding from the critic.
// A raw string-list verdict is lifted into items with severity "info" and
// category "general" rather than silently reinterpreted.
type CriticFeedbackItem struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	File        string `json:"file,omitempty"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// CriterionStatus is a worker's per-acceptance-criterion self-assessment
type CriterionStatus struct {
	Criterion string `json:"criterion"`
	Met       bool   `json:"met"`
	Notes     string `json:"notes,omitempty"`
}

// TicketDraft is one ticket proposed by the generation model. DependsOn
// holds zero-based indexes into the same batch.
type TicketDraft struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Epic               string   `json:"epic,omitempty"`
	Scope              string   `json:"scope,omitempty"`
	FileHints          []string `json:"file_hints,omitempty"`
	Priority           string   `json:"priority,omitempty"`
	DependsOn          []int    `json:"depends_on,omitempty"`
}
