// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/predicate"
	"github.com/buildloop/foundry/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectType sets the "project_type" field.
func (_u *SessionUpdate) SetProjectType(v session.ProjectType) *SessionUpdate {
	_u.mutation.SetProjectType(v)
	return _u
}

// SetNillableProjectType sets the "project_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectType(v *session.ProjectType) *SessionUpdate {
	if v != nil {
		_u.SetProjectType(*v)
	}
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdate) SetProjectName(v string) *SessionUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionUpdate) SetDescription(v string) *SessionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDescription(v *string) *SessionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionUpdate) SetState(v session.State) *SessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableState(v *session.State) *SessionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *SessionUpdate) SetClarification(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *SessionUpdate) ClearClarification() *SessionUpdate {
	_u.mutation.ClearClarification()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionUpdate) SetProgress(v int) *SessionUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProgress(v *int) *SessionUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SessionUpdate) AddProgress(v int) *SessionUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetSpecCard sets the "spec_card" field.
func (_u *SessionUpdate) SetSpecCard(v string) *SessionUpdate {
	_u.mutation.SetSpecCard(v)
	return _u
}

// SetNillableSpecCard sets the "spec_card" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSpecCard(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSpecCard(*v)
	}
	return _u
}

// ClearSpecCard clears the value of the "spec_card" field.
func (_u *SessionUpdate) ClearSpecCard() *SessionUpdate {
	_u.mutation.ClearSpecCard()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdate) SetProjectID(v string) *SessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableProjectID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdate) ClearProjectID() *SessionUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_u *SessionUpdate) SetRepoAnalysis(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetRepoAnalysis(v)
	return _u
}

// ClearRepoAnalysis clears the value of the "repo_analysis" field.
func (_u *SessionUpdate) ClearRepoAnalysis() *SessionUpdate {
	_u.mutation.ClearRepoAnalysis()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SessionUpdate) SetApprovedBy(v string) *SessionUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableApprovedBy(v *string) *SessionUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SessionUpdate) ClearApprovedBy() *SessionUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SessionUpdate) SetApprovedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableApprovedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SessionUpdate) ClearApprovedAt() *SessionUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *SessionUpdate) AddMessageIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *SessionUpdate) AddMessages(v ...*Message) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *SessionUpdate) AddApprovalIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *SessionUpdate) AddApprovals(v ...*Approval) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *SessionUpdate) ClearMessages() *SessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *SessionUpdate) RemoveMessageIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *SessionUpdate) RemoveMessages(v ...*Message) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *SessionUpdate) ClearApprovals() *SessionUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *SessionUpdate) RemoveApprovalIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *SessionUpdate) RemoveApprovals(v ...*Approval) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.ProjectType(); ok {
		if err := session.ProjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "project_type", err: fmt.Errorf(`ent: validator failed for field "Session.project_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectType(); ok {
		_spec.SetField(session.FieldProjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(session.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(session.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpecCard(); ok {
		_spec.SetField(session.FieldSpecCard, field.TypeString, value)
	}
	if _u.mutation.SpecCardCleared() {
		_spec.ClearField(session.FieldSpecCard, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(session.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RepoAnalysisCleared() {
		_spec.ClearField(session.FieldRepoAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(session.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(session.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(session.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(session.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetProjectType sets the "project_type" field.
func (_u *SessionUpdateOne) SetProjectType(v session.ProjectType) *SessionUpdateOne {
	_u.mutation.SetProjectType(v)
	return _u
}

// SetNillableProjectType sets the "project_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectType(v *session.ProjectType) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectType(*v)
	}
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *SessionUpdateOne) SetProjectName(v string) *SessionUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionUpdateOne) SetDescription(v string) *SessionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDescription(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *SessionUpdateOne) SetState(v session.State) *SessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableState(v *session.State) *SessionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetClarification sets the "clarification" field.
func (_u *SessionUpdateOne) SetClarification(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetClarification(v)
	return _u
}

// ClearClarification clears the value of the "clarification" field.
func (_u *SessionUpdateOne) ClearClarification() *SessionUpdateOne {
	_u.mutation.ClearClarification()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SessionUpdateOne) SetProgress(v int) *SessionUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProgress(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SessionUpdateOne) AddProgress(v int) *SessionUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetSpecCard sets the "spec_card" field.
func (_u *SessionUpdateOne) SetSpecCard(v string) *SessionUpdateOne {
	_u.mutation.SetSpecCard(v)
	return _u
}

// SetNillableSpecCard sets the "spec_card" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSpecCard(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSpecCard(*v)
	}
	return _u
}

// ClearSpecCard clears the value of the "spec_card" field.
func (_u *SessionUpdateOne) ClearSpecCard() *SessionUpdateOne {
	_u.mutation.ClearSpecCard()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SessionUpdateOne) SetProjectID(v string) *SessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableProjectID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *SessionUpdateOne) ClearProjectID() *SessionUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_u *SessionUpdateOne) SetRepoAnalysis(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetRepoAnalysis(v)
	return _u
}

// ClearRepoAnalysis clears the value of the "repo_analysis" field.
func (_u *SessionUpdateOne) ClearRepoAnalysis() *SessionUpdateOne {
	_u.mutation.ClearRepoAnalysis()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *SessionUpdateOne) SetApprovedBy(v string) *SessionUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableApprovedBy(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *SessionUpdateOne) ClearApprovedBy() *SessionUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SessionUpdateOne) SetApprovedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableApprovedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SessionUpdateOne) ClearApprovedAt() *SessionUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *SessionUpdateOne) AddMessageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *SessionUpdateOne) AddMessages(v ...*Message) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *SessionUpdateOne) AddApprovalIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *SessionUpdateOne) AddApprovals(v ...*Approval) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *SessionUpdateOne) ClearMessages() *SessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *SessionUpdateOne) RemoveMessageIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *SessionUpdateOne) RemoveMessages(v ...*Message) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *SessionUpdateOne) ClearApprovals() *SessionUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *SessionUpdateOne) RemoveApprovalIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *SessionUpdateOne) RemoveApprovals(v ...*Approval) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.ProjectType(); ok {
		if err := session.ProjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "project_type", err: fmt.Errorf(`ent: validator failed for field "Session.project_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.ProjectType(); ok {
		_spec.SetField(session.FieldProjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Clarification(); ok {
		_spec.SetField(session.FieldClarification, field.TypeJSON, value)
	}
	if _u.mutation.ClarificationCleared() {
		_spec.ClearField(session.FieldClarification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(session.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpecCard(); ok {
		_spec.SetField(session.FieldSpecCard, field.TypeString, value)
	}
	if _u.mutation.SpecCardCleared() {
		_spec.ClearField(session.FieldSpecCard, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(session.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
	}
	if _u.mutation.RepoAnalysisCleared() {
		_spec.ClearField(session.FieldRepoAnalysis, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(session.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(session.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(session.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(session.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MessagesTable,
			Columns: []string{session.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ApprovalsTable,
			Columns: []string{session.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
