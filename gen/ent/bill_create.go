// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// BillCreate is the builder for creating a Bill entity.
type BillCreate struct {
	config
	mutation *BillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BillCreate) SetUserID(v uuid.UUID) *BillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetServiceProviderID sets the "service_provider_id" field.
func (_c *BillCreate) SetServiceProviderID(v uuid.UUID) *BillCreate {
	_c.mutation.SetServiceProviderID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *BillCreate) SetDate(v time.Time) *BillCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *BillCreate) SetAmount(v float64) *BillCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BillCreate) SetDescription(v string) *BillCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BillCreate) SetNillableDescription(v *string) *BillCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_c *BillCreate) SetInboxItemID(v uuid.UUID) *BillCreate {
	_c.mutation.SetInboxItemID(v)
	return _c
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_c *BillCreate) SetNillableInboxItemID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetInboxItemID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *BillCreate) SetState(v string) *BillCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BillCreate) SetNillableState(v *string) *BillCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedDate sets the "created_date" field.
func (_c *BillCreate) SetCreatedDate(v time.Time) *BillCreate {
	_c.mutation.SetCreatedDate(v)
	return _c
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_c *BillCreate) SetNillableCreatedDate(v *time.Time) *BillCreate {
	if v != nil {
		_c.SetCreatedDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillCreate) SetID(v uuid.UUID) *BillCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BillCreate) SetNillableID(v *uuid.UUID) *BillCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetServiceProvider sets the "service_provider" edge to the ServiceProvider entity.
func (_c *BillCreate) SetServiceProvider(v *ServiceProvider) *BillCreate {
	return _c.SetServiceProviderID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_c *BillCreate) Mutation() *BillMutation {
	return _c.mutation
}

// Save creates the Bill in the database.
func (_c *BillCreate) Save(ctx context.Context) (*Bill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillCreate) SaveX(ctx context.Context) *Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := bill.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := bill.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedDate(); !ok {
		v := bill.DefaultCreatedDate()
		_c.mutation.SetCreatedDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bill.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Bill.user_id"`)}
	}
	if _, ok := _c.mutation.ServiceProviderID(); !ok {
		return &ValidationError{Name: "service_provider_id", err: errors.New(`ent: missing required field "Bill.service_provider_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Bill.date"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Bill.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := bill.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Bill.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Bill.description"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Bill.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := bill.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Bill.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedDate(); !ok {
		return &ValidationError{Name: "created_date", err: errors.New(`ent: missing required field "Bill.created_date"`)}
	}
	if len(_c.mutation.ServiceProviderIDs()) == 0 {
		return &ValidationError{Name: "service_provider", err: errors.New(`ent: missing required edge "Bill.service_provider"`)}
	}
	return nil
}

func (_c *BillCreate) sqlSave(ctx context.Context) (*Bill, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillCreate) createSpec() (*Bill, *sqlgraph.CreateSpec) {
	var (
		_node = &Bill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bill.Table, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(bill.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.InboxItemID(); ok {
		_spec.SetField(bill.FieldInboxItemID, field.TypeUUID, value)
		_node.InboxItemID = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(bill.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedDate(); ok {
		_spec.SetField(bill.FieldCreatedDate, field.TypeTime, value)
		_node.CreatedDate = value
	}
	if nodes := _c.mutation.ServiceProviderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   bill.ServiceProviderTable,
			Columns: []string{bill.ServiceProviderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(serviceprovider.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ServiceProviderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BillCreateBulk is the builder for creating many Bill entities in bulk.
type BillCreateBulk struct {
	config
	err      error
	builders []*BillCreate
}

// Save creates the Bill entities in the database.
func (_c *BillCreateBulk) Save(ctx context.Context) ([]*Bill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillMutation)
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
func (_c *BillCreateBulk) SaveX(ctx context.Context) []*Bill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
