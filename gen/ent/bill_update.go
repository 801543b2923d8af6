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
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// BillUpdate is the builder for updating Bill entities.
type BillUpdate struct {
	config
	hooks    []Hook
	mutation *BillMutation
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdate) Where(ps ...predicate.Bill) *BillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdate) SetUserID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableUserID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceProviderID sets the "service_provider_id" field.
func (_u *BillUpdate) SetServiceProviderID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetServiceProviderID(v)
	return _u
}

// SetNillableServiceProviderID sets the "service_provider_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableServiceProviderID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetServiceProviderID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BillUpdate) SetDate(v time.Time) *BillUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdate) SetAmount(v float64) *BillUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdate) SetNillableAmount(v *float64) *BillUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdate) AddAmount(v float64) *BillUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillUpdate) SetDescription(v string) *BillUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillUpdate) SetNillableDescription(v *string) *BillUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *BillUpdate) SetInboxItemID(v uuid.UUID) *BillUpdate {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *BillUpdate) SetNillableInboxItemID(v *uuid.UUID) *BillUpdate {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *BillUpdate) ClearInboxItemID() *BillUpdate {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetState sets the "state" field.
func (_u *BillUpdate) SetState(v string) *BillUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BillUpdate) SetNillableState(v *string) *BillUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *BillUpdate) SetCreatedDate(v time.Time) *BillUpdate {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *BillUpdate) SetNillableCreatedDate(v *time.Time) *BillUpdate {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" edge to the ServiceProvider entity.
func (_u *BillUpdate) SetServiceProvider(v *ServiceProvider) *BillUpdate {
	return _u.SetServiceProviderID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdate) Mutation() *BillMutation {
	return _u.mutation
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (_u *BillUpdate) ClearServiceProvider() *BillUpdate {
	_u.mutation.ClearServiceProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := bill.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Bill.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := bill.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Bill.state": %w`, err)}
		}
	}
	if _u.mutation.ServiceProviderCleared() && len(_u.mutation.ServiceProviderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.service_provider"`)
	}
	return nil
}

func (_u *BillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(bill.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(bill.FieldInboxItemID, field.TypeUUID, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(bill.FieldInboxItemID, field.TypeUUID)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(bill.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(bill.FieldCreatedDate, field.TypeTime, value)
	}
	if _u.mutation.ServiceProviderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceProviderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillUpdateOne is the builder for updating a single Bill entity.
type BillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillMutation
}

// SetUserID sets the "user_id" field.
func (_u *BillUpdateOne) SetUserID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableUserID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceProviderID sets the "service_provider_id" field.
func (_u *BillUpdateOne) SetServiceProviderID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetServiceProviderID(v)
	return _u
}

// SetNillableServiceProviderID sets the "service_provider_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableServiceProviderID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetServiceProviderID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *BillUpdateOne) SetDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *BillUpdateOne) SetAmount(v float64) *BillUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableAmount(v *float64) *BillUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *BillUpdateOne) AddAmount(v float64) *BillUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *BillUpdateOne) SetDescription(v string) *BillUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableDescription(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *BillUpdateOne) SetInboxItemID(v uuid.UUID) *BillUpdateOne {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableInboxItemID(v *uuid.UUID) *BillUpdateOne {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *BillUpdateOne) ClearInboxItemID() *BillUpdateOne {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetState sets the "state" field.
func (_u *BillUpdateOne) SetState(v string) *BillUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableState(v *string) *BillUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *BillUpdateOne) SetCreatedDate(v time.Time) *BillUpdateOne {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *BillUpdateOne) SetNillableCreatedDate(v *time.Time) *BillUpdateOne {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" edge to the ServiceProvider entity.
func (_u *BillUpdateOne) SetServiceProvider(v *ServiceProvider) *BillUpdateOne {
	return _u.SetServiceProviderID(v.ID)
}

// Mutation returns the BillMutation object of the builder.
func (_u *BillUpdateOne) Mutation() *BillMutation {
	return _u.mutation
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (_u *BillUpdateOne) ClearServiceProvider() *BillUpdateOne {
	_u.mutation.ClearServiceProvider()
	return _u
}

// Where appends a list predicates to the BillUpdate builder.
func (_u *BillUpdateOne) Where(ps ...predicate.Bill) *BillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillUpdateOne) Select(field string, fields ...string) *BillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bill entity.
func (_u *BillUpdateOne) Save(ctx context.Context) (*Bill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillUpdateOne) SaveX(ctx context.Context) *Bill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BillUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := bill.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Bill.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := bill.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Bill.state": %w`, err)}
		}
	}
	if _u.mutation.ServiceProviderCleared() && len(_u.mutation.ServiceProviderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Bill.service_provider"`)
	}
	return nil
}

func (_u *BillUpdateOne) sqlSave(ctx context.Context) (_node *Bill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bill.Table, bill.Columns, sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bill.FieldID)
		for _, f := range fields {
			if !bill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bill.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bill.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(bill.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(bill.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(bill.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(bill.FieldInboxItemID, field.TypeUUID, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(bill.FieldInboxItemID, field.TypeUUID)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(bill.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(bill.FieldCreatedDate, field.TypeTime, value)
	}
	if _u.mutation.ServiceProviderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ServiceProviderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
