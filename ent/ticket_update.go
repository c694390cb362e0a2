// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/buildloop/foundry/ent/predicate"
	"github.com/buildloop/foundry/ent/ticket"
)

// TicketUpdate is the builder for updating Ticket entities.
type TicketUpdate struct {
	config
	hooks    []Hook
	mutation *TicketMutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdate) Where(ps ...predicate.Ticket) *TicketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TicketUpdate) SetTitle(v string) *TicketUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTitle(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdate) SetDescription(v string) *TicketUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableDescription(v *string) *TicketUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdate) SetAcceptanceCriteria(v []string) *TicketUpdate {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *TicketUpdate) AppendAcceptanceCriteria(v []string) *TicketUpdate {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdate) ClearAcceptanceCriteria() *TicketUpdate {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdate) SetState(v ticket.State) *TicketUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableState(v *ticket.State) *TicketUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetEpic sets the "epic" field.
func (_u *TicketUpdate) SetEpic(v string) *TicketUpdate {
	_u.mutation.SetEpic(v)
	return _u
}

// SetNillableEpic sets the "epic" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableEpic(v *string) *TicketUpdate {
	if v != nil {
		_u.SetEpic(*v)
	}
	return _u
}

// ClearEpic clears the value of the "epic" field.
func (_u *TicketUpdate) ClearEpic() *TicketUpdate {
	_u.mutation.ClearEpic()
	return _u
}

// SetScope sets the "scope" field.
func (_u *TicketUpdate) SetScope(v ticket.Scope) *TicketUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableScope(v *ticket.Scope) *TicketUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetFileHints sets the "file_hints" field.
func (_u *TicketUpdate) SetFileHints(v []string) *TicketUpdate {
	_u.mutation.SetFileHints(v)
	return _u
}

// AppendFileHints appends value to the "file_hints" field.
func (_u *TicketUpdate) AppendFileHints(v []string) *TicketUpdate {
	_u.mutation.AppendFileHints(v)
	return _u
}

// ClearFileHints clears the value of the "file_hints" field.
func (_u *TicketUpdate) ClearFileHints() *TicketUpdate {
	_u.mutation.ClearFileHints()
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TicketUpdate) SetAssignee(v string) *TicketUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssignee(v *string) *TicketUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TicketUpdate) ClearAssignee() *TicketUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *TicketUpdate) SetAssigneeKind(v ticket.AssigneeKind) *TicketUpdate {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketUpdate {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdate) SetBranchName(v string) *TicketUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableBranchName(v *string) *TicketUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdate) ClearBranchName() *TicketUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdate) SetPrURL(v string) *TicketUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePrURL(v *string) *TicketUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdate) ClearPrURL() *TicketUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdate) SetRejectionCount(v int) *TicketUpdate {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRejectionCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdate) AddRejectionCount(v int) *TicketUpdate {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdate) SetRetryCount(v int) *TicketUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRetryCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdate) AddRetryCount(v int) *TicketUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TicketUpdate) SetRetryAfter(v time.Time) *TicketUpdate {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRetryAfter(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TicketUpdate) ClearRetryAfter() *TicketUpdate {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketUpdate) SetAttempt(v int) *TicketUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableAttempt(v *int) *TicketUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketUpdate) AddAttempt(v int) *TicketUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCriticFeedback sets the "critic_feedback" field.
func (_u *TicketUpdate) SetCriticFeedback(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.SetCriticFeedback(v)
	return _u
}

// AppendCriticFeedback appends value to the "critic_feedback" field.
func (_u *TicketUpdate) AppendCriticFeedback(v []map[string]interface{}) *TicketUpdate {
	_u.mutation.AppendCriticFeedback(v)
	return _u
}

// ClearCriticFeedback clears the value of the "critic_feedback" field.
func (_u *TicketUpdate) ClearCriticFeedback() *TicketUpdate {
	_u.mutation.ClearCriticFeedback()
	return _u
}

// SetFilesInvolved sets the "files_involved" field.
func (_u *TicketUpdate) SetFilesInvolved(v []string) *TicketUpdate {
	_u.mutation.SetFilesInvolved(v)
	return _u
}

// AppendFilesInvolved appends value to the "files_involved" field.
func (_u *TicketUpdate) AppendFilesInvolved(v []string) *TicketUpdate {
	_u.mutation.AppendFilesInvolved(v)
	return _u
}

// ClearFilesInvolved clears the value of the "files_involved" field.
func (_u *TicketUpdate) ClearFilesInvolved() *TicketUpdate {
	_u.mutation.ClearFilesInvolved()
	return _u
}

// SetLeaseExpires sets the "lease_expires" field.
func (_u *TicketUpdate) SetLeaseExpires(v time.Time) *TicketUpdate {
	_u.mutation.SetLeaseExpires(v)
	return _u
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLeaseExpires(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLeaseExpires(*v)
	}
	return _u
}

// ClearLeaseExpires clears the value of the "lease_expires" field.
func (_u *TicketUpdate) ClearLeaseExpires() *TicketUpdate {
	_u.mutation.ClearLeaseExpires()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TicketUpdate) SetLastHeartbeat(v time.Time) *TicketUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLastHeartbeat(v *time.Time) *TicketUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *TicketUpdate) ClearLastHeartbeat() *TicketUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_u *TicketUpdate) SetHeartbeatCount(v int) *TicketUpdate {
	_u.mutation.ResetHeartbeatCount()
	_u.mutation.SetHeartbeatCount(v)
	return _u
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableHeartbeatCount(v *int) *TicketUpdate {
	if v != nil {
		_u.SetHeartbeatCount(*v)
	}
	return _u
}

// AddHeartbeatCount adds value to the "heartbeat_count" field.
func (_u *TicketUpdate) AddHeartbeatCount(v int) *TicketUpdate {
	_u.mutation.AddHeartbeatCount(v)
	return _u
}

// SetFailureClass sets the "failure_class" field.
func (_u *TicketUpdate) SetFailureClass(v string) *TicketUpdate {
	_u.mutation.SetFailureClass(v)
	return _u
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableFailureClass(v *string) *TicketUpdate {
	if v != nil {
		_u.SetFailureClass(*v)
	}
	return _u
}

// ClearFailureClass clears the value of the "failure_class" field.
func (_u *TicketUpdate) ClearFailureClass() *TicketUpdate {
	_u.mutation.ClearFailureClass()
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *TicketUpdate) SetHoldReason(v string) *TicketUpdate {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableHoldReason(v *string) *TicketUpdate {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *TicketUpdate) ClearHoldReason() *TicketUpdate {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *TicketUpdate) SetTraceID(v string) *TicketUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableTraceID(v *string) *TicketUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *TicketUpdate) ClearTraceID() *TicketUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *TicketUpdate) SetRepoURL(v string) *TicketUpdate {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableRepoURL(v *string) *TicketUpdate {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *TicketUpdate) ClearRepoURL() *TicketUpdate {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdate) SetPriority(v ticket.Priority) *TicketUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdate) SetNillablePriority(v *ticket.Priority) *TicketUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLeaseSeconds sets the "lease_seconds" field.
func (_u *TicketUpdate) SetLeaseSeconds(v int) *TicketUpdate {
	_u.mutation.ResetLeaseSeconds()
	_u.mutation.SetLeaseSeconds(v)
	return _u
}

// SetNillableLeaseSeconds sets the "lease_seconds" field if the given value is not nil.
func (_u *TicketUpdate) SetNillableLeaseSeconds(v *int) *TicketUpdate {
	if v != nil {
		_u.SetLeaseSeconds(*v)
	}
	return _u
}

// AddLeaseSeconds adds value to the "lease_seconds" field.
func (_u *TicketUpdate) AddLeaseSeconds(v int) *TicketUpdate {
	_u.mutation.AddLeaseSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdate) SetUpdatedAt(v time.Time) *TicketUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdate) Mutation() *TicketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := ticket.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Ticket.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ticket.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Epic(); ok {
		_spec.SetField(ticket.FieldEpic, field.TypeString, value)
	}
	if _u.mutation.EpicCleared() {
		_spec.ClearField(ticket.FieldEpic, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ticket.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileHints(); ok {
		_spec.SetField(ticket.FieldFileHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldFileHints, value)
		})
	}
	if _u.mutation.FileHintsCleared() {
		_spec.ClearField(ticket.FieldFileHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(ticket.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(ticket.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticFeedback(); ok {
		_spec.SetField(ticket.FieldCriticFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldCriticFeedback, value)
		})
	}
	if _u.mutation.CriticFeedbackCleared() {
		_spec.ClearField(ticket.FieldCriticFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilesInvolved(); ok {
		_spec.SetField(ticket.FieldFilesInvolved, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesInvolved(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldFilesInvolved, value)
		})
	}
	if _u.mutation.FilesInvolvedCleared() {
		_spec.ClearField(ticket.FieldFilesInvolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresCleared() {
		_spec.ClearField(ticket.FieldLeaseExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatCount(); ok {
		_spec.SetField(ticket.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatCount(); ok {
		_spec.AddField(ticket.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureClass(); ok {
		_spec.SetField(ticket.FieldFailureClass, field.TypeString, value)
	}
	if _u.mutation.FailureClassCleared() {
		_spec.ClearField(ticket.FieldFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(ticket.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(ticket.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(ticket.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(ticket.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(ticket.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseSeconds(); ok {
		_spec.SetField(ticket.FieldLeaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeaseSeconds(); ok {
		_spec.AddField(ticket.FieldLeaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketUpdateOne is the builder for updating a single Ticket entity.
type TicketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketMutation
}

// SetTitle sets the "title" field.
func (_u *TicketUpdateOne) SetTitle(v string) *TicketUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTitle(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TicketUpdateOne) SetDescription(v string) *TicketUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableDescription(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_u *TicketUpdateOne) SetAcceptanceCriteria(v []string) *TicketUpdateOne {
	_u.mutation.SetAcceptanceCriteria(v)
	return _u
}

// AppendAcceptanceCriteria appends value to the "acceptance_criteria" field.
func (_u *TicketUpdateOne) AppendAcceptanceCriteria(v []string) *TicketUpdateOne {
	_u.mutation.AppendAcceptanceCriteria(v)
	return _u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (_u *TicketUpdateOne) ClearAcceptanceCriteria() *TicketUpdateOne {
	_u.mutation.ClearAcceptanceCriteria()
	return _u
}

// SetState sets the "state" field.
func (_u *TicketUpdateOne) SetState(v ticket.State) *TicketUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableState(v *ticket.State) *TicketUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetEpic sets the "epic" field.
func (_u *TicketUpdateOne) SetEpic(v string) *TicketUpdateOne {
	_u.mutation.SetEpic(v)
	return _u
}

// SetNillableEpic sets the "epic" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableEpic(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetEpic(*v)
	}
	return _u
}

// ClearEpic clears the value of the "epic" field.
func (_u *TicketUpdateOne) ClearEpic() *TicketUpdateOne {
	_u.mutation.ClearEpic()
	return _u
}

// SetScope sets the "scope" field.
func (_u *TicketUpdateOne) SetScope(v ticket.Scope) *TicketUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableScope(v *ticket.Scope) *TicketUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetFileHints sets the "file_hints" field.
func (_u *TicketUpdateOne) SetFileHints(v []string) *TicketUpdateOne {
	_u.mutation.SetFileHints(v)
	return _u
}

// AppendFileHints appends value to the "file_hints" field.
func (_u *TicketUpdateOne) AppendFileHints(v []string) *TicketUpdateOne {
	_u.mutation.AppendFileHints(v)
	return _u
}

// ClearFileHints clears the value of the "file_hints" field.
func (_u *TicketUpdateOne) ClearFileHints() *TicketUpdateOne {
	_u.mutation.ClearFileHints()
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *TicketUpdateOne) SetAssignee(v string) *TicketUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssignee(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// ClearAssignee clears the value of the "assignee" field.
func (_u *TicketUpdateOne) ClearAssignee() *TicketUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_u *TicketUpdateOne) SetAssigneeKind(v ticket.AssigneeKind) *TicketUpdateOne {
	_u.mutation.SetAssigneeKind(v)
	return _u
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketUpdateOne {
	if v != nil {
		_u.SetAssigneeKind(*v)
	}
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TicketUpdateOne) SetBranchName(v string) *TicketUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableBranchName(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TicketUpdateOne) ClearBranchName() *TicketUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TicketUpdateOne) SetPrURL(v string) *TicketUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePrURL(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TicketUpdateOne) ClearPrURL() *TicketUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetRejectionCount sets the "rejection_count" field.
func (_u *TicketUpdateOne) SetRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRejectionCount()
	_u.mutation.SetRejectionCount(v)
	return _u
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRejectionCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRejectionCount(*v)
	}
	return _u
}

// AddRejectionCount adds value to the "rejection_count" field.
func (_u *TicketUpdateOne) AddRejectionCount(v int) *TicketUpdateOne {
	_u.mutation.AddRejectionCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *TicketUpdateOne) SetRetryCount(v int) *TicketUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRetryCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *TicketUpdateOne) AddRetryCount(v int) *TicketUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *TicketUpdateOne) SetRetryAfter(v time.Time) *TicketUpdateOne {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRetryAfter(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *TicketUpdateOne) ClearRetryAfter() *TicketUpdateOne {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TicketUpdateOne) SetAttempt(v int) *TicketUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableAttempt(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TicketUpdateOne) AddAttempt(v int) *TicketUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetCriticFeedback sets the "critic_feedback" field.
func (_u *TicketUpdateOne) SetCriticFeedback(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.SetCriticFeedback(v)
	return _u
}

// AppendCriticFeedback appends value to the "critic_feedback" field.
func (_u *TicketUpdateOne) AppendCriticFeedback(v []map[string]interface{}) *TicketUpdateOne {
	_u.mutation.AppendCriticFeedback(v)
	return _u
}

// ClearCriticFeedback clears the value of the "critic_feedback" field.
func (_u *TicketUpdateOne) ClearCriticFeedback() *TicketUpdateOne {
	_u.mutation.ClearCriticFeedback()
	return _u
}

// SetFilesInvolved sets the "files_involved" field.
func (_u *TicketUpdateOne) SetFilesInvolved(v []string) *TicketUpdateOne {
	_u.mutation.SetFilesInvolved(v)
	return _u
}

// AppendFilesInvolved appends value to the "files_involved" field.
func (_u *TicketUpdateOne) AppendFilesInvolved(v []string) *TicketUpdateOne {
	_u.mutation.AppendFilesInvolved(v)
	return _u
}

// ClearFilesInvolved clears the value of the "files_involved" field.
func (_u *TicketUpdateOne) ClearFilesInvolved() *TicketUpdateOne {
	_u.mutation.ClearFilesInvolved()
	return _u
}

// SetLeaseExpires sets the "lease_expires" field.
func (_u *TicketUpdateOne) SetLeaseExpires(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLeaseExpires(v)
	return _u
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLeaseExpires(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLeaseExpires(*v)
	}
	return _u
}

// ClearLeaseExpires clears the value of the "lease_expires" field.
func (_u *TicketUpdateOne) ClearLeaseExpires() *TicketUpdateOne {
	_u.mutation.ClearLeaseExpires()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *TicketUpdateOne) SetLastHeartbeat(v time.Time) *TicketUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLastHeartbeat(v *time.Time) *TicketUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *TicketUpdateOne) ClearLastHeartbeat() *TicketUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_u *TicketUpdateOne) SetHeartbeatCount(v int) *TicketUpdateOne {
	_u.mutation.ResetHeartbeatCount()
	_u.mutation.SetHeartbeatCount(v)
	return _u
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableHeartbeatCount(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetHeartbeatCount(*v)
	}
	return _u
}

// AddHeartbeatCount adds value to the "heartbeat_count" field.
func (_u *TicketUpdateOne) AddHeartbeatCount(v int) *TicketUpdateOne {
	_u.mutation.AddHeartbeatCount(v)
	return _u
}

// SetFailureClass sets the "failure_class" field.
func (_u *TicketUpdateOne) SetFailureClass(v string) *TicketUpdateOne {
	_u.mutation.SetFailureClass(v)
	return _u
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableFailureClass(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetFailureClass(*v)
	}
	return _u
}

// ClearFailureClass clears the value of the "failure_class" field.
func (_u *TicketUpdateOne) ClearFailureClass() *TicketUpdateOne {
	_u.mutation.ClearFailureClass()
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *TicketUpdateOne) SetHoldReason(v string) *TicketUpdateOne {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableHoldReason(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *TicketUpdateOne) ClearHoldReason() *TicketUpdateOne {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *TicketUpdateOne) SetTraceID(v string) *TicketUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableTraceID(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *TicketUpdateOne) ClearTraceID() *TicketUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetRepoURL sets the "repo_url" field.
func (_u *TicketUpdateOne) SetRepoURL(v string) *TicketUpdateOne {
	_u.mutation.SetRepoURL(v)
	return _u
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableRepoURL(v *string) *TicketUpdateOne {
	if v != nil {
		_u.SetRepoURL(*v)
	}
	return _u
}

// ClearRepoURL clears the value of the "repo_url" field.
func (_u *TicketUpdateOne) ClearRepoURL() *TicketUpdateOne {
	_u.mutation.ClearRepoURL()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TicketUpdateOne) SetPriority(v ticket.Priority) *TicketUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillablePriority(v *ticket.Priority) *TicketUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetLeaseSeconds sets the "lease_seconds" field.
func (_u *TicketUpdateOne) SetLeaseSeconds(v int) *TicketUpdateOne {
	_u.mutation.ResetLeaseSeconds()
	_u.mutation.SetLeaseSeconds(v)
	return _u
}

// SetNillableLeaseSeconds sets the "lease_seconds" field if the given value is not nil.
func (_u *TicketUpdateOne) SetNillableLeaseSeconds(v *int) *TicketUpdateOne {
	if v != nil {
		_u.SetLeaseSeconds(*v)
	}
	return _u
}

// AddLeaseSeconds adds value to the "lease_seconds" field.
func (_u *TicketUpdateOne) AddLeaseSeconds(v int) *TicketUpdateOne {
	_u.mutation.AddLeaseSeconds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TicketUpdateOne) SetUpdatedAt(v time.Time) *TicketUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TicketMutation object of the builder.
func (_u *TicketUpdateOne) Mutation() *TicketMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketUpdate builder.
func (_u *TicketUpdateOne) Where(ps ...predicate.Ticket) *TicketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketUpdateOne) Select(field string, fields ...string) *TicketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ticket entity.
func (_u *TicketUpdateOne) Save(ctx context.Context) (*Ticket, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketUpdateOne) SaveX(ctx context.Context) *Ticket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TicketUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ticket.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scope(); ok {
		if err := ticket.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Ticket.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketUpdateOne) sqlSave(ctx context.Context) (_node *Ticket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticket.Table, ticket.Columns, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ticket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticket.FieldID)
		for _, f := range fields {
			if !ticket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ticket.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAcceptanceCriteria(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldAcceptanceCriteria, value)
		})
	}
	if _u.mutation.AcceptanceCriteriaCleared() {
		_spec.ClearField(ticket.FieldAcceptanceCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Epic(); ok {
		_spec.SetField(ticket.FieldEpic, field.TypeString, value)
	}
	if _u.mutation.EpicCleared() {
		_spec.ClearField(ticket.FieldEpic, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(ticket.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FileHints(); ok {
		_spec.SetField(ticket.FieldFileHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldFileHints, value)
		})
	}
	if _u.mutation.FileHintsCleared() {
		_spec.ClearField(ticket.FieldFileHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
	}
	if _u.mutation.AssigneeCleared() {
		_spec.ClearField(ticket.FieldAssignee, field.TypeString)
	}
	if value, ok := _u.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(ticket.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(ticket.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectionCount(); ok {
		_spec.AddField(ticket.FieldRejectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(ticket.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(ticket.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(ticket.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticFeedback(); ok {
		_spec.SetField(ticket.FieldCriticFeedback, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticFeedback(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldCriticFeedback, value)
		})
	}
	if _u.mutation.CriticFeedbackCleared() {
		_spec.ClearField(ticket.FieldCriticFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilesInvolved(); ok {
		_spec.SetField(ticket.FieldFilesInvolved, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFilesInvolved(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ticket.FieldFilesInvolved, value)
		})
	}
	if _u.mutation.FilesInvolvedCleared() {
		_spec.ClearField(ticket.FieldFilesInvolved, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresCleared() {
		_spec.ClearField(ticket.FieldLeaseExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(ticket.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatCount(); ok {
		_spec.SetField(ticket.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartbeatCount(); ok {
		_spec.AddField(ticket.FieldHeartbeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureClass(); ok {
		_spec.SetField(ticket.FieldFailureClass, field.TypeString, value)
	}
	if _u.mutation.FailureClassCleared() {
		_spec.ClearField(ticket.FieldFailureClass, field.TypeString)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(ticket.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(ticket.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(ticket.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoURL(); ok {
		_spec.SetField(ticket.FieldRepoURL, field.TypeString, value)
	}
	if _u.mutation.RepoURLCleared() {
		_spec.ClearField(ticket.FieldRepoURL, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeaseSeconds(); ok {
		_spec.SetField(ticket.FieldLeaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeaseSeconds(); ok {
		_spec.AddField(ticket.FieldLeaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Ticket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
