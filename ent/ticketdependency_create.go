// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildloop/foundry/ent/ticketdependency"
)

// TicketDependencyCreate is the builder for creating a TicketDependency entity.
type TicketDependencyCreate struct {
	config
	mutation *TicketDependencyMutation
	hooks    []Hook
}

// SetTicketID sets the "ticket_id" field.
func (_c *TicketDependencyCreate) SetTicketID(v string) *TicketDependencyCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *TicketDependencyCreate) SetDependsOn(v string) *TicketDependencyCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TicketDependencyCreate) SetCreatedAt(v time.Time) *TicketDependencyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TicketDependencyCreate) SetNillableCreatedAt(v *time.Time) *TicketDependencyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TicketDependencyMutation object of the builder.
func (_c *TicketDependencyCreate) Mutation() *TicketDependencyMutation {
	return _c.mutation
}

// Save creates the TicketDependency in the database.
func (_c *TicketDependencyCreate) Save(ctx context.Context) (*TicketDependency, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TicketDependencyCreate) SaveX(ctx context.Context) *TicketDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketDependencyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketDependencyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TicketDependencyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ticketdependency.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TicketDependencyCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "TicketDependency.ticket_id"`)}
	}
	if _, ok := _c.mutation.DependsOn(); !ok {
		return &ValidationError{Name: "depends_on", err: errors.New(`ent: missing required field "TicketDependency.depends_on"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TicketDependency.created_at"`)}
	}
	return nil
}

func (_c *TicketDependencyCreate) sqlSave(ctx context.Context) (*TicketDependency, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TicketDependencyCreate) createSpec() (*TicketDependency, *sqlgraph.CreateSpec) {
	var (
		_node = &TicketDependency{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ticketdependency.Table, sqlgraph.NewFieldSpec(ticketdependency.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TicketID(); ok {
		_spec.SetField(ticketdependency.FieldTicketID, field.TypeString, value)
		_node.TicketID = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(ticketdependency.FieldDependsOn, field.TypeString, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ticketdependency.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TicketDependencyCreateBulk is the builder for creating many TicketDependency entities in bulk.
type TicketDependencyCreateBulk struct {
	config
	err      error
	builders []*TicketDependencyCreate
}

// Save creates the TicketDependency entities in the database.
func (_c *TicketDependencyCreateBulk) Save(ctx context.Context) ([]*TicketDependency, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TicketDependency, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TicketDependencyMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TicketDependencyCreateBulk) SaveX(ctx context.Context) []*TicketDependency {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TicketDependencyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TicketDependencyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
