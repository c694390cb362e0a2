// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldEpic holds the string denoting the epic field in the database.
	FieldEpic = "epic"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldFileHints holds the string denoting the file_hints field in the database.
	FieldFileHints = "file_hints"
	// FieldAssignee holds the string denoting the assignee field in the database.
	FieldAssignee = "assignee"
	// FieldAssigneeKind holds the string denoting the assignee_kind field in the database.
	FieldAssigneeKind = "assignee_kind"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldRejectionCount holds the string denoting the rejection_count field in the database.
	FieldRejectionCount = "rejection_count"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldRetryAfter holds the string denoting the retry_after field in the database.
	FieldRetryAfter = "retry_after"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldCriticFeedback holds the string denoting the critic_feedback field in the database.
	FieldCriticFeedback = "critic_feedback"
	// FieldFilesInvolved holds the string denoting the files_involved field in the database.
	FieldFilesInvolved = "files_involved"
	// FieldLeaseExpires holds the string denoting the lease_expires field in the database.
	FieldLeaseExpires = "lease_expires"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldHeartbeatCount holds the string denoting the heartbeat_count field in the database.
	FieldHeartbeatCount = "heartbeat_count"
	// FieldFailureClass holds the string denoting the failure_class field in the database.
	FieldFailureClass = "failure_class"
	// FieldHoldReason holds the string denoting the hold_reason field in the database.
	FieldHoldReason = "hold_reason"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldRepoURL holds the string denoting the repo_url field in the database.
	FieldRepoURL = "repo_url"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldLeaseSeconds holds the string denoting the lease_seconds field in the database.
	FieldLeaseSeconds = "lease_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldProjectID,
	FieldSessionID,
	FieldTitle,
	FieldDescription,
	FieldAcceptanceCriteria,
	FieldState,
	FieldEpic,
	FieldScope,
	FieldFileHints,
	FieldAssignee,
	FieldAssigneeKind,
	FieldBranchName,
	FieldPrURL,
	FieldRejectionCount,
	FieldRetryCount,
	FieldRetryAfter,
	FieldAttempt,
	FieldCriticFeedback,
	FieldFilesInvolved,
	FieldLeaseExpires,
	FieldLastHeartbeat,
	FieldHeartbeatCount,
	FieldFailureClass,
	FieldHoldReason,
	FieldTraceID,
	FieldRepoURL,
	FieldPriority,
	FieldLeaseSeconds,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRejectionCount holds the default value on creation for the "rejection_count" field.
	DefaultRejectionCount int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultHeartbeatCount holds the default value on creation for the "heartbeat_count" field.
	DefaultHeartbeatCount int
	// DefaultLeaseSeconds holds the default value on creation for the "lease_seconds" field.
	DefaultLeaseSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft            State = "draft"
	StateReady            State = "ready"
	StateBlocked          State = "blocked"
	StateOnHold           State = "on_hold"
	StateAssigned         State = "assigned"
	StateInProgress       State = "in_progress"
	StateVerifying        State = "verifying"
	StateInReview         State = "in_review"
	StateChangesRequested State = "changes_requested"
	StateNeedsReview      State = "needs_review"
	StateDone             State = "done"
	StateCancelled        State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StateReady, StateBlocked, StateOnHold, StateAssigned, StateInProgress, StateVerifying, StateInReview, StateChangesRequested, StateNeedsReview, StateDone, StateCancelled:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for state field: %q", s)
	}
}

// Scope defines the type for the "scope" enum field.
type Scope string

// ScopeMedium is the default value of the Scope enum.
const DefaultScope = ScopeMedium

// Scope values.
const (
	ScopeSmall  Scope = "small"
	ScopeMedium Scope = "medium"
	ScopeLarge  Scope = "large"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeSmall, ScopeMedium, ScopeLarge:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for scope field: %q", s)
	}
}

// AssigneeKind defines the type for the "assignee_kind" enum field.
type AssigneeKind string

// AssigneeKindAgent is the default value of the AssigneeKind enum.
const DefaultAssigneeKind = AssigneeKindAgent

// AssigneeKind values.
const (
	AssigneeKindAgent AssigneeKind = "agent"
	AssigneeKindHuman AssigneeKind = "human"
)

func (ak AssigneeKind) String() string {
	return string(ak)
}

// AssigneeKindValidator is a validator for the "assignee_kind" field enum values. It is called by the builders before save.
func AssigneeKindValidator(ak AssigneeKind) error {
	switch ak {
	case AssigneeKindAgent, AssigneeKindHuman:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for assignee_kind field: %q", ak)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByEpic orders the results by the epic field.
func ByEpic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpic, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByAssignee orders the results by the assignee field.
func ByAssignee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignee, opts...).ToFunc()
}

// ByAssigneeKind orders the results by the assignee_kind field.
func ByAssigneeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeKind, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByRejectionCount orders the results by the rejection_count field.
func ByRejectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionCount, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByRetryAfter orders the results by the retry_after field.
func ByRetryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAfter, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByLeaseExpires orders the results by the lease_expires field.
func ByLeaseExpires(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpires, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByHeartbeatCount orders the results by the heartbeat_count field.
func ByHeartbeatCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatCount, opts...).ToFunc()
}

// ByFailureClass orders the results by the failure_class field.
func ByFailureClass(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureClass, opts...).ToFunc()
}

// ByHoldReason orders the results by the hold_reason field.
func ByHoldReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldReason, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByRepoURL orders the results by the repo_url field.
func ByRepoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoURL, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByLeaseSeconds orders the results by the lease_seconds field.
func ByLeaseSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
