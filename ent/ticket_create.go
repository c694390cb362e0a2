// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildloop/foundry/ent/ticket"
)

// TicketCreate is the builder for creating a Ticket entity.
type TicketCreate struct {
	config
	mutation *TicketMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *TicketCreate) SetTenantID(v string) *TicketCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TicketCreate) SetProjectID(v string) *TicketCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TicketCreate) SetSessionID(v string) *TicketCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableSessionID(v *string) *TicketCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TicketCreate) SetTitle(v string) *TicketCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TicketCreate) SetDescription(v string) *TicketCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *TicketCreate) SetAcceptanceCriteria(v []string) *TicketCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetState sets the "state" field.
func (_c *TicketCreate) SetState(v ticket.State) *TicketCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *TicketCreate) SetNillableState(v *ticket.State) *TicketCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetEpic sets the "epic" field.
func (_c *TicketCreate) SetEpic(v string) *TicketCreate {
	_c.mutation.SetEpic(v)
	return _c
}

// SetNillableEpic sets the "epic" field if the given value is not nil.
func (_c *TicketCreate) SetNillableEpic(v *string) *TicketCreate {
	if v != nil {
		_c.SetEpic(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *TicketCreate) SetScope(v ticket.Scope) *TicketCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *TicketCreate) SetNillableScope(v *ticket.Scope) *TicketCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetFileHints sets the "file_hints" field.
func (_c *TicketCreate) SetFileHints(v []string) *TicketCreate {
	_c.mutation.SetFileHints(v)
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *TicketCreate) SetAssignee(v string) *TicketCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssignee(v *string) *TicketCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetAssigneeKind sets the "assignee_kind" field.
func (_c *TicketCreate) SetAssigneeKind(v ticket.AssigneeKind) *TicketCreate {
	_c.mutation.SetAssigneeKind(v)
	return _c
}

// SetNillableAssigneeKind sets the "assignee_kind" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAssigneeKind(v *ticket.AssigneeKind) *TicketCreate {
	if v != nil {
		_c.SetAssigneeKind(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *TicketCreate) SetBranchName(v string) *TicketCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_c *TicketCreate) SetNillableBranchName(v *string) *TicketCreate {
	if v != nil {
		_c.SetBranchName(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *TicketCreate) SetPrURL(v string) *TicketCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePrURL(v *string) *TicketCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetRejectionCount sets the "rejection_count" field.
func (_c *TicketCreate) SetRejectionCount(v int) *TicketCreate {
	_c.mutation.SetRejectionCount(v)
	return _c
}

// SetNillableRejectionCount sets the "rejection_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRejectionCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRejectionCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TicketCreate) SetRetryCount(v int) *TicketCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRetryCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetRetryAfter sets the "retry_after" field.
func (_c *TicketCreate) SetRetryAfter(v time.Time) *TicketCreate {
	_c.mutation.SetRetryAfter(v)
	return _c
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRetryAfter(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetRetryAfter(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *TicketCreate) SetAttempt(v int) *TicketCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *TicketCreate) SetNillableAttempt(v *int) *TicketCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetCriticFeedback sets the "critic_feedback" field.
func (_c *TicketCreate) SetCriticFeedback(v []map[string]interface{}) *TicketCreate {
	_c.mutation.SetCriticFeedback(v)
	return _c
}

// SetFilesInvolved sets the "files_involved" field.
func (_c *TicketCreate) SetFilesInvolved(v []string) *TicketCreate {
	_c.mutation.SetFilesInvolved(v)
	return _c
}

// SetLeaseExpires sets the "lease_expires" field.
func (_c *TicketCreate) SetLeaseExpires(v time.Time) *TicketCreate {
	_c.mutation.SetLeaseExpires(v)
	return _c
}

// SetNillableLeaseExpires sets the "lease_expires" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLeaseExpires(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLeaseExpires(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *TicketCreate) SetLastHeartbeat(v time.Time) *TicketCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLastHeartbeat(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetHeartbeatCount sets the "heartbeat_count" field.
func (_c *TicketCreate) SetHeartbeatCount(v int) *TicketCreate {
	_c.mutation.SetHeartbeatCount(v)
	return _c
}

// SetNillableHeartbeatCount sets the "heartbeat_count" field if the given value is not nil.
func (_c *TicketCreate) SetNillableHeartbeatCount(v *int) *TicketCreate {
	if v != nil {
		_c.SetHeartbeatCount(*v)
	}
	return _c
}

// SetFailureClass sets the "failure_class" field.
func (_c *TicketCreate) SetFailureClass(v string) *TicketCreate {
	_c.mutation.SetFailureClass(v)
	return _c
}

// SetNillableFailureClass sets the "failure_class" field if the given value is not nil.
func (_c *TicketCreate) SetNillableFailureClass(v *string) *TicketCreate {
	if v != nil {
		_c.SetFailureClass(*v)
	}
	return _c
}

// SetHoldReason sets the "hold_reason" field.
func (_c *TicketCreate) SetHoldReason(v string) *TicketCreate {
	_c.mutation.SetHoldReason(v)
	return _c
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_c *TicketCreate) SetNillableHoldReason(v *string) *TicketCreate {
	if v != nil {
		_c.SetHoldReason(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *TicketCreate) SetTraceID(v string) *TicketCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *TicketCreate) SetNillableTraceID(v *string) *TicketCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetRepoURL sets the "repo_url" field.
func (_c *TicketCreate) SetRepoURL(v string) *TicketCreate {
	_c.mutation.SetRepoURL(v)
	return _c
}

// SetNillableRepoURL sets the "repo_url" field if the given value is not nil.
func (_c *TicketCreate) SetNillableRepoURL(v *string) *TicketCreate {
	if v != nil {
		_c.SetRepoURL(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TicketCreate) SetPriority(v ticket.Priority) *TicketCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TicketCreate) SetNillablePriority(v *ticket.Priority) *TicketCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetLeaseSeconds sets the "lease_seconds" field.
func (_c *TicketCreate) SetLeaseSeconds(v int) *TicketCreate {
	_c.mutation.SetLeaseSeconds(v)
	return _c
}

// SetNillableLeaseSeconds sets the "lease_seconds" field if the given value is not nil.
func (_c *TicketCreate) SetNillableLeaseSeconds(v *int) *TicketCreate {
	if v != nil {
		_c.SetLeaseSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketCreate) SetCreatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableCreatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TicketCreate) SetUpdatedAt(v time.Time) *TicketCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TicketCreate) SetNillableUpdatedAt(v *time.Time) *TicketCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TicketCreate) SetID(v string) *TicketCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TicketMutation object of the builder.
func (_c *TicketCreate) Mutation() *TicketMutation {
	return _c.mutation
}

// Save creates the Ticket in the database.
func (_c *TicketCreate) Save(ctx context.Context) (*Ticket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketCreate) SaveX(ctx context.Context) *Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := ticket.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Scope(); !ok {
		v := ticket.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.AssigneeKind(); !ok {
		v := ticket.DefaultAssigneeKind
		_c.mutation.SetAssigneeKind(v)
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		v := ticket.DefaultRejectionCount
		_c.mutation.SetRejectionCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := ticket.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := ticket.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.HeartbeatCount(); !ok {
		v := ticket.DefaultHeartbeatCount
		_c.mutation.SetHeartbeatCount(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := ticket.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.LeaseSeconds(); !ok {
		v := ticket.DefaultLeaseSeconds
		_c.mutation.SetLeaseSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticket.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ticket.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Ticket.tenant_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Ticket.project_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Ticket.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Ticket.description"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Ticket.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := ticket.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Ticket.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Ticket.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := ticket.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Ticket.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeKind(); !ok {
		return &ValidationError{Name: "assignee_kind", err: errors.New(`ent: missing required field "Ticket.assignee_kind"`)}
	}
	if v, ok := _c.mutation.AssigneeKind(); ok {
		if err := ticket.AssigneeKindValidator(v); err != nil {
			return &ValidationError{Name: "assignee_kind", err: fmt.Errorf(`ent: validator failed for field "Ticket.assignee_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RejectionCount(); !ok {
		return &ValidationError{Name: "rejection_count", err: errors.New(`ent: missing required field "Ticket.rejection_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Ticket.retry_count"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "Ticket.attempt"`)}
	}
	if _, ok := _c.mutation.HeartbeatCount(); !ok {
		return &ValidationError{Name: "heartbeat_count", err: errors.New(`ent: missing required field "Ticket.heartbeat_count"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Ticket.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := ticket.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Ticket.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeaseSeconds(); !ok {
		return &ValidationError{Name: "lease_seconds", err: errors.New(`ent: missing required field "Ticket.lease_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ticket.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ticket.updated_at"`)}
	}
	return nil
}

func (_c *TicketCreate) sqlSave(ctx context.Context) (*Ticket, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Ticket.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketCreate) createSpec() (*Ticket, *sqlgraph.CreateSpec) {
	var (
		_node = &Ticket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticket.Table, sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(ticket.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(ticket.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(ticket.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(ticket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ticket.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(ticket.FieldAcceptanceCriteria, field.TypeJSON, value)
		_node.AcceptanceCriteria = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(ticket.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Epic(); ok {
		_spec.SetField(ticket.FieldEpic, field.TypeString, value)
		_node.Epic = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(ticket.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.FileHints(); ok {
		_spec.SetField(ticket.FieldFileHints, field.TypeJSON, value)
		_node.FileHints = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(ticket.FieldAssignee, field.TypeString, value)
		_node.Assignee = &value
	}
	if value, ok := _c.mutation.AssigneeKind(); ok {
		_spec.SetField(ticket.FieldAssigneeKind, field.TypeEnum, value)
		_node.AssigneeKind = value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(ticket.FieldBranchName, field.TypeString, value)
		_node.BranchName = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(ticket.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.RejectionCount(); ok {
		_spec.SetField(ticket.FieldRejectionCount, field.TypeInt, value)
		_node.RejectionCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(ticket.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.RetryAfter(); ok {
		_spec.SetField(ticket.FieldRetryAfter, field.TypeTime, value)
		_node.RetryAfter = &value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(ticket.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.CriticFeedback(); ok {
		_spec.SetField(ticket.FieldCriticFeedback, field.TypeJSON, value)
		_node.CriticFeedback = value
	}
	if value, ok := _c.mutation.FilesInvolved(); ok {
		_spec.SetField(ticket.FieldFilesInvolved, field.TypeJSON, value)
		_node.FilesInvolved = value
	}
	if value, ok := _c.mutation.LeaseExpires(); ok {
		_spec.SetField(ticket.FieldLeaseExpires, field.TypeTime, value)
		_node.LeaseExpires = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(ticket.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.HeartbeatCount(); ok {
		_spec.SetField(ticket.FieldHeartbeatCount, field.TypeInt, value)
		_node.HeartbeatCount = value
	}
	if value, ok := _c.mutation.FailureClass(); ok {
		_spec.SetField(ticket.FieldFailureClass, field.TypeString, value)
		_node.FailureClass = &value
	}
	if value, ok := _c.mutation.HoldReason(); ok {
		_spec.SetField(ticket.FieldHoldReason, field.TypeString, value)
		_node.HoldReason = &value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(ticket.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.RepoURL(); ok {
		_spec.SetField(ticket.FieldRepoURL, field.TypeString, value)
		_node.RepoURL = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ticket.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.LeaseSeconds(); ok {
		_spec.SetField(ticket.FieldLeaseSeconds, field.TypeInt, value)
		_node.LeaseSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ticket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TicketCreateBulk is the builder for creating many Ticket entities in bulk.
type TicketCreateBulk struct {
	config
	err      error
	builders []*TicketCreate
}

// Save creates the Ticket entities in the database.
func (_c *TicketCreateBulk) Save(ctx context.Context) ([]*Ticket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ticket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TicketCreateBulk) SaveX(ctx context.Context) []*Ticket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
