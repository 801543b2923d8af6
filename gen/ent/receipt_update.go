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
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdate) SetUserID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableUserID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceProviderID sets the "service_provider_id" field.
func (_u *ReceiptUpdate) SetServiceProviderID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetServiceProviderID(v)
	return _u
}

// SetNillableServiceProviderID sets the "service_provider_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableServiceProviderID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetServiceProviderID(*v)
	}
	return _u
}

// SetPaymentTypeID sets the "payment_type_id" field.
func (_u *ReceiptUpdate) SetPaymentTypeID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetPaymentTypeID(v)
	return _u
}

// SetNillablePaymentTypeID sets the "payment_type_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentTypeID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentTypeID(*v)
	}
	return _u
}

// ClearPaymentTypeID clears the value of the "payment_type_id" field.
func (_u *ReceiptUpdate) ClearPaymentTypeID() *ReceiptUpdate {
	_u.mutation.ClearPaymentTypeID()
	return _u
}

// SetDate sets the "date" field.
func (_u *ReceiptUpdate) SetDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdate) SetAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdate) AddAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReceiptUpdate) SetDescription(v string) *ReceiptUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableDescription(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *ReceiptUpdate) SetInboxItemID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableInboxItemID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *ReceiptUpdate) ClearInboxItemID() *ReceiptUpdate {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetState sets the "state" field.
func (_u *ReceiptUpdate) SetState(v string) *ReceiptUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableState(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *ReceiptUpdate) SetCreatedDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" edge to the ServiceProvider entity.
func (_u *ReceiptUpdate) SetServiceProvider(v *ServiceProvider) *ReceiptUpdate {
	return _u.SetServiceProviderID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (_u *ReceiptUpdate) ClearServiceProvider() *ReceiptUpdate {
	_u.mutation.ClearServiceProvider()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := receipt.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Receipt.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := receipt.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Receipt.state": %w`, err)}
		}
	}
	if _u.mutation.ServiceProviderCleared() && len(_u.mutation.ServiceProviderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.service_provider"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaymentTypeID(); ok {
		_spec.SetField(receipt.FieldPaymentTypeID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentTypeIDCleared() {
		_spec.ClearField(receipt.FieldPaymentTypeID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(receipt.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(receipt.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(receipt.FieldInboxItemID, field.TypeUUID, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(receipt.FieldInboxItemID, field.TypeUUID)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(receipt.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(receipt.FieldCreatedDate, field.TypeTime, value)
	}
	if _u.mutation.ServiceProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.ServiceProviderTable,
			Columns: []string{receipt.ServiceProviderColumn},
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
			Table:   receipt.ServiceProviderTable,
			Columns: []string{receipt.ServiceProviderColumn},
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
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReceiptUpdateOne) SetUserID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableUserID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceProviderID sets the "service_provider_id" field.
func (_u *ReceiptUpdateOne) SetServiceProviderID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetServiceProviderID(v)
	return _u
}

// SetNillableServiceProviderID sets the "service_provider_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableServiceProviderID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetServiceProviderID(*v)
	}
	return _u
}

// SetPaymentTypeID sets the "payment_type_id" field.
func (_u *ReceiptUpdateOne) SetPaymentTypeID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetPaymentTypeID(v)
	return _u
}

// SetNillablePaymentTypeID sets the "payment_type_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentTypeID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentTypeID(*v)
	}
	return _u
}

// ClearPaymentTypeID clears the value of the "payment_type_id" field.
func (_u *ReceiptUpdateOne) ClearPaymentTypeID() *ReceiptUpdateOne {
	_u.mutation.ClearPaymentTypeID()
	return _u
}

// SetDate sets the "date" field.
func (_u *ReceiptUpdateOne) SetDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdateOne) SetAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ReceiptUpdateOne) AddAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ReceiptUpdateOne) SetDescription(v string) *ReceiptUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableDescription(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInboxItemID sets the "inbox_item_id" field.
func (_u *ReceiptUpdateOne) SetInboxItemID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetInboxItemID(v)
	return _u
}

// SetNillableInboxItemID sets the "inbox_item_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableInboxItemID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetInboxItemID(*v)
	}
	return _u
}

// ClearInboxItemID clears the value of the "inbox_item_id" field.
func (_u *ReceiptUpdateOne) ClearInboxItemID() *ReceiptUpdateOne {
	_u.mutation.ClearInboxItemID()
	return _u
}

// SetState sets the "state" field.
func (_u *ReceiptUpdateOne) SetState(v string) *ReceiptUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableState(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *ReceiptUpdateOne) SetCreatedDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" edge to the ServiceProvider entity.
func (_u *ReceiptUpdateOne) SetServiceProvider(v *ServiceProvider) *ReceiptUpdateOne {
	return _u.SetServiceProviderID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearServiceProvider clears the "service_provider" edge to the ServiceProvider entity.
func (_u *ReceiptUpdateOne) ClearServiceProvider() *ReceiptUpdateOne {
	_u.mutation.ClearServiceProvider()
	return _u
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := receipt.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Receipt.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := receipt.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Receipt.state": %w`, err)}
		}
	}
	if _u.mutation.ServiceProviderCleared() && len(_u.mutation.ServiceProviderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.service_provider"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
		_spec.SetField(receipt.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PaymentTypeID(); ok {
		_spec.SetField(receipt.FieldPaymentTypeID, field.TypeUUID, value)
	}
	if _u.mutation.PaymentTypeIDCleared() {
		_spec.ClearField(receipt.FieldPaymentTypeID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(receipt.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(receipt.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(receipt.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.InboxItemID(); ok {
		_spec.SetField(receipt.FieldInboxItemID, field.TypeUUID, value)
	}
	if _u.mutation.InboxItemIDCleared() {
		_spec.ClearField(receipt.FieldInboxItemID, field.TypeUUID)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(receipt.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(receipt.FieldCreatedDate, field.TypeTime, value)
	}
	if _u.mutation.ServiceProviderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.ServiceProviderTable,
			Columns: []string{receipt.ServiceProviderColumn},
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
			Table:   receipt.ServiceProviderTable,
			Columns: []string{receipt.ServiceProviderColumn},
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
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
