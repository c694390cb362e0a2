// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildloop/foundry/ent/approval"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *SessionCreate) SetTenantID(v string) *SessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *SessionCreate) SetOwnerID(v string) *SessionCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetProjectType sets the "project_type" field.
func (_c *SessionCreate) SetProjectType(v session.ProjectType) *SessionCreate {
	_c.mutation.SetProjectType(v)
	return _c
}

// SetNillableProjectType sets the "project_type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProjectType(v *session.ProjectType) *SessionCreate {
	if v != nil {
		_c.SetProjectType(*v)
	}
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *SessionCreate) SetProjectName(v string) *SessionCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SessionCreate) SetDescription(v string) *SessionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SessionCreate) SetState(v session.State) *SessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SessionCreate) SetNillableState(v *session.State) *SessionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetClarification sets the "clarification" field.
func (_c *SessionCreate) SetClarification(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetClarification(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SessionCreate) SetProgress(v int) *SessionCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProgress(v *int) *SessionCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetSpecCard sets the "spec_card" field.
func (_c *SessionCreate) SetSpecCard(v string) *SessionCreate {
	_c.mutation.SetSpecCard(v)
	return _c
}

// SetNillableSpecCard sets the "spec_card" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSpecCard(v *string) *SessionCreate {
	if v != nil {
		_c.SetSpecCard(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SessionCreate) SetProjectID(v string) *SessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableProjectID(v *string) *SessionCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (_c *SessionCreate) SetRepoAnalysis(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetRepoAnalysis(v)
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *SessionCreate) SetApprovedBy(v string) *SessionCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *SessionCreate) SetNillableApprovedBy(v *string) *SessionCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SessionCreate) SetApprovedAt(v time.Time) *SessionCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableApprovedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *SessionCreate) AddMessageIDs(ids ...string) *SessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *SessionCreate) AddMessages(v ...*Message) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_c *SessionCreate) AddApprovalIDs(ids ...string) *SessionCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_c *SessionCreate) AddApprovals(v ...*Approval) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.ProjectType(); !ok {
		v := session.DefaultProjectType
		_c.mutation.SetProjectType(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := session.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := session.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Session.tenant_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Session.owner_id"`)}
	}
	if _, ok := _c.mutation.ProjectType(); !ok {
		return &ValidationError{Name: "project_type", err: errors.New(`ent: missing required field "Session.project_type"`)}
	}
	if v, ok := _c.mutation.ProjectType(); ok {
		if err := session.ProjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "project_type", err: fmt.Errorf(`ent: validator failed for field "Session.project_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "Session.project_name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Session.description"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Session.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := session.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Session.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Session.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(session.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(session.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ProjectType(); ok {
		_spec.SetField(session.FieldProjectType, field.TypeEnum, value)
		_node.ProjectType = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(session.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(session.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(session.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Clarification(); ok {
		_spec.SetField(session.FieldClarification, field.TypeJSON, value)
		_node.Clarification = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(session.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.SpecCard(); ok {
		_spec.SetField(session.FieldSpecCard, field.TypeString, value)
		_node.SpecCard = &value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(session.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.RepoAnalysis(); ok {
		_spec.SetField(session.FieldRepoAnalysis, field.TypeJSON, value)
		_node.RepoAnalysis = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(session.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(session.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
