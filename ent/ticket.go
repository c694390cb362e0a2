// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildloop/foundry/ent/ticket"
)

// Ticket is the model entity for the Ticket schema.
type Ticket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Originating design session, when generated from one
	SessionID *string `json:"session_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// AcceptanceCriteria holds the value of the "acceptance_criteria" field.
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	// State holds the value of the "state" field.
	State ticket.State `json:"state,omitempty"`
	// Epic holds the value of the "epic" field.
	Epic string `json:"epic,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope ticket.Scope `json:"scope,omitempty"`
	// FileHints holds the value of the "file_hints" field.
	FileHints []string `json:"file_hints,omitempty"`
	// Current lease holder identity
	Assignee *string `json:"assignee,omitempty"`
	// AssigneeKind holds the value of the "assignee_kind" field.
	AssigneeKind ticket.AssigneeKind `json:"assignee_kind,omitempty"`
	// BranchName holds the value of the "branch_name" field.
	BranchName *string `json:"branch_name,omitempty"`
	// PrURL holds the value of the "pr_url" field.
	PrURL *string `json:"pr_url,omitempty"`
	// RejectionCount holds the value of the "rejection_count" field.
	RejectionCount int `json:"rejection_count,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// Earliest time the ticket may be claimed again
	RetryAfter *time.Time `json:"retry_after,omitempty"`
	// Monotonic attempt number carried on every external call
	Attempt int `json:"attempt,omitempty"`
	// Structured critic feedback from the latest rejection
	CriticFeedback []map[string]interface{} `json:"critic_feedback,omitempty"`
	// FilesInvolved holds the value of the "files_involved" field.
	FilesInvolved []string `json:"files_involved,omitempty"`
	// LeaseExpires holds the value of the "lease_expires" field.
	LeaseExpires *time.Time `json:"lease_expires,omitempty"`
	// LastHeartbeat holds the value of the "last_heartbeat" field.
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// HeartbeatCount holds the value of the "heartbeat_count" field.
	HeartbeatCount int `json:"heartbeat_count,omitempty"`
	// Last worker failure classification (timeout, tool, model, infra)
	FailureClass *string `json:"failure_class,omitempty"`
	// HoldReason holds the value of the "hold_reason" field.
	HoldReason *string `json:"hold_reason,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID string `json:"trace_id,omitempty"`
	// RepoURL holds the value of the "repo_url" field.
	RepoURL string `json:"repo_url,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority ticket.Priority `json:"priority,omitempty"`
	// Per-ticket lease duration override
	LeaseSeconds int `json:"lease_seconds,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ticket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticket.FieldAcceptanceCriteria, ticket.FieldFileHints, ticket.FieldCriticFeedback, ticket.FieldFilesInvolved:
			values[i] = new([]byte)
		case ticket.FieldRejectionCount, ticket.FieldRetryCount, ticket.FieldAttempt, ticket.FieldHeartbeatCount, ticket.FieldLeaseSeconds:
			values[i] = new(sql.NullInt64)
		case ticket.FieldID, ticket.FieldTenantID, ticket.FieldProjectID, ticket.FieldSessionID, ticket.FieldTitle, ticket.FieldDescription, ticket.FieldState, ticket.FieldEpic, ticket.FieldScope, ticket.FieldAssignee, ticket.FieldAssigneeKind, ticket.FieldBranchName, ticket.FieldPrURL, ticket.FieldFailureClass, ticket.FieldHoldReason, ticket.FieldTraceID, ticket.FieldRepoURL, ticket.FieldPriority:
			values[i] = new(sql.NullString)
		case ticket.FieldRetryAfter, ticket.FieldLeaseExpires, ticket.FieldLastHeartbeat, ticket.FieldCreatedAt, ticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ticket fields.
func (_m *Ticket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticket.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case ticket.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case ticket.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case ticket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case ticket.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case ticket.FieldAcceptanceCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcceptanceCriteria); err != nil {
					return fmt.Errorf("unmarshal field acceptance_criteria: %w", err)
				}
			}
		case ticket.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = ticket.State(value.String)
			}
		case ticket.FieldEpic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field epic", values[i])
			} else if value.Valid {
				_m.Epic = value.String
			}
		case ticket.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = ticket.Scope(value.String)
			}
		case ticket.FieldFileHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FileHints); err != nil {
					return fmt.Errorf("unmarshal field file_hints: %w", err)
				}
			}
		case ticket.FieldAssignee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee", values[i])
			} else if value.Valid {
				_m.Assignee = new(string)
				*_m.Assignee = value.String
			}
		case ticket.FieldAssigneeKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_kind", values[i])
			} else if value.Valid {
				_m.AssigneeKind = ticket.AssigneeKind(value.String)
			}
		case ticket.FieldBranchName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch_name", values[i])
			} else if value.Valid {
				_m.BranchName = new(string)
				*_m.BranchName = value.String
			}
		case ticket.FieldPrURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pr_url", values[i])
			} else if value.Valid {
				_m.PrURL = new(string)
				*_m.PrURL = value.String
			}
		case ticket.FieldRejectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_count", values[i])
			} else if value.Valid {
				_m.RejectionCount = int(value.Int64)
			}
		case ticket.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case ticket.FieldRetryAfter:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_after", values[i])
			} else if value.Valid {
				_m.RetryAfter = new(time.Time)
				*_m.RetryAfter = value.Time
			}
		case ticket.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case ticket.FieldCriticFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field critic_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriticFeedback); err != nil {
					return fmt.Errorf("unmarshal field critic_feedback: %w", err)
				}
			}
		case ticket.FieldFilesInvolved:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field files_involved", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FilesInvolved); err != nil {
					return fmt.Errorf("unmarshal field files_involved: %w", err)
				}
			}
		case ticket.FieldLeaseExpires:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires", values[i])
			} else if value.Valid {
				_m.LeaseExpires = new(time.Time)
				*_m.LeaseExpires = value.Time
			}
		case ticket.FieldLastHeartbeat:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat", values[i])
			} else if value.Valid {
				_m.LastHeartbeat = new(time.Time)
				*_m.LastHeartbeat = value.Time
			}
		case ticket.FieldHeartbeatCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_count", values[i])
			} else if value.Valid {
				_m.HeartbeatCount = int(value.Int64)
			}
		case ticket.FieldFailureClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_class", values[i])
			} else if value.Valid {
				_m.FailureClass = new(string)
				*_m.FailureClass = value.String
			}
		case ticket.FieldHoldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hold_reason", values[i])
			} else if value.Valid {
				_m.HoldReason = new(string)
				*_m.HoldReason = value.String
			}
		case ticket.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case ticket.FieldRepoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_url", values[i])
			} else if value.Valid {
				_m.RepoURL = value.String
			}
		case ticket.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = ticket.Priority(value.String)
			}
		case ticket.FieldLeaseSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lease_seconds", values[i])
			} else if value.Valid {
				_m.LeaseSeconds = int(value.Int64)
			}
		case ticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ticket.
// This includes values selected through modifiers, order, etc.
func (_m *Ticket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Ticket.
// Note that you need to call Ticket.Unwrap() before calling this method if this Ticket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ticket) Update() *TicketUpdateOne {
	return NewTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ticket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ticket) Unwrap() *Ticket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ticket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ticket) String() string {
	var builder strings.Builder
	builder.WriteString("Ticket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteria))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("epic=")
	builder.WriteString(_m.Epic)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("file_hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileHints))
	builder.WriteString(", ")
	if v := _m.Assignee; v != nil {
		builder.WriteString("assignee=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("assignee_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssigneeKind))
	builder.WriteString(", ")
	if v := _m.BranchName; v != nil {
		builder.WriteString("branch_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PrURL; v != nil {
		builder.WriteString("pr_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rejection_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectionCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.RetryAfter; v != nil {
		builder.WriteString("retry_after=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("critic_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticFeedback))
	builder.WriteString(", ")
	builder.WriteString("files_involved=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesInvolved))
	builder.WriteString(", ")
	if v := _m.LeaseExpires; v != nil {
		builder.WriteString("lease_expires=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeat; v != nil {
		builder.WriteString("last_heartbeat=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("heartbeat_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeartbeatCount))
	builder.WriteString(", ")
	if v := _m.FailureClass; v != nil {
		builder.WriteString("failure_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HoldReason; v != nil {
		builder.WriteString("hold_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("repo_url=")
	builder.WriteString(_m.RepoURL)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("lease_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeaseSeconds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tickets is a parsable slice of Ticket.
type Tickets []*Ticket
