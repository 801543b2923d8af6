// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// ServiceProviderUpdate is the builder for updating ServiceProvider entities.
type ServiceProviderUpdate struct {
	config
	hooks    []Hook
	mutation *ServiceProviderMutation
}

// Where appends a list predicates to the ServiceProviderUpdate builder.
func (_u *ServiceProviderUpdate) Where(ps ...predicate.ServiceProvider) *ServiceProviderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServiceProviderUpdate) SetName(v string) *ServiceProviderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableName(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *ServiceProviderUpdate) SetAvatar(v string) *ServiceProviderUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableAvatar(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// ClearAvatar clears the value of the "avatar" field.
func (_u *ServiceProviderUpdate) ClearAvatar() *ServiceProviderUpdate {
	_u.mutation.ClearAvatar()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ServiceProviderUpdate) SetComment(v string) *ServiceProviderUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableComment(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetCommentForOcr sets the "comment_for_ocr" field.
func (_u *ServiceProviderUpdate) SetCommentForOcr(v string) *ServiceProviderUpdate {
	_u.mutation.SetCommentForOcr(v)
	return _u
}

// SetNillableCommentForOcr sets the "comment_for_ocr" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableCommentForOcr(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetCommentForOcr(*v)
	}
	return _u
}

// SetRegular sets the "regular" field.
func (_u *ServiceProviderUpdate) SetRegular(v string) *ServiceProviderUpdate {
	_u.mutation.SetRegular(v)
	return _u
}

// SetNillableRegular sets the "regular" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableRegular(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetRegular(*v)
	}
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ServiceProviderUpdate) SetCustomFields(v json.RawMessage) *ServiceProviderUpdate {
	_u.mutation.SetCustomFields(v)
	return _u
}

// AppendCustomFields appends value to the "custom_fields" field.
func (_u *ServiceProviderUpdate) AppendCustomFields(v json.RawMessage) *ServiceProviderUpdate {
	_u.mutation.AppendCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ServiceProviderUpdate) ClearCustomFields() *ServiceProviderUpdate {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetState sets the "state" field.
func (_u *ServiceProviderUpdate) SetState(v string) *ServiceProviderUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableState(v *string) *ServiceProviderUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *ServiceProviderUpdate) SetCreatedDate(v time.Time) *ServiceProviderUpdate {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *ServiceProviderUpdate) SetNillableCreatedDate(v *time.Time) *ServiceProviderUpdate {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetModifiedDate sets the "modified_date" field.
func (_u *ServiceProviderUpdate) SetModifiedDate(v time.Time) *ServiceProviderUpdate {
	_u.mutation.SetModifiedDate(v)
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *ServiceProviderUpdate) AddBillIDs(ids ...uuid.UUID) *ServiceProviderUpdate {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *ServiceProviderUpdate) AddBills(v ...*Bill) *ServiceProviderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *ServiceProviderUpdate) AddReceiptIDs(ids ...uuid.UUID) *ServiceProviderUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *ServiceProviderUpdate) AddReceipts(v ...*Receipt) *ServiceProviderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the ServiceProviderMutation object of the builder.
func (_u *ServiceProviderUpdate) Mutation() *ServiceProviderMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *ServiceProviderUpdate) ClearBills() *ServiceProviderUpdate {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *ServiceProviderUpdate) RemoveBillIDs(ids ...uuid.UUID) *ServiceProviderUpdate {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *ServiceProviderUpdate) RemoveBills(v ...*Bill) *ServiceProviderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *ServiceProviderUpdate) ClearReceipts() *ServiceProviderUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *ServiceProviderUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *ServiceProviderUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *ServiceProviderUpdate) RemoveReceipts(v ...*Receipt) *ServiceProviderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServiceProviderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceProviderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServiceProviderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceProviderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceProviderUpdate) defaults() {
	if _, ok := _u.mutation.ModifiedDate(); !ok {
		v := serviceprovider.UpdateDefaultModifiedDate()
		_u.mutation.SetModifiedDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceProviderUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Regular(); ok {
		if err := serviceprovider.RegularValidator(v); err != nil {
			return &ValidationError{Name: "regular", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.regular": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := serviceprovider.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceProviderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceprovider.Table, serviceprovider.Columns, sqlgraph.NewFieldSpec(serviceprovider.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(serviceprovider.FieldAvatar, field.TypeString, value)
	}
	if _u.mutation.AvatarCleared() {
		_spec.ClearField(serviceprovider.FieldAvatar, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(serviceprovider.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentForOcr(); ok {
		_spec.SetField(serviceprovider.FieldCommentForOcr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Regular(); ok {
		_spec.SetField(serviceprovider.FieldRegular, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(serviceprovider.FieldCustomFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, serviceprovider.FieldCustomFields, value)
		})
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(serviceprovider.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(serviceprovider.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(serviceprovider.FieldCreatedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ModifiedDate(); ok {
		_spec.SetField(serviceprovider.FieldModifiedDate, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServiceProviderUpdateOne is the builder for updating a single ServiceProvider entity.
type ServiceProviderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServiceProviderMutation
}

// SetName sets the "name" field.
func (_u *ServiceProviderUpdateOne) SetName(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableName(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *ServiceProviderUpdateOne) SetAvatar(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableAvatar(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// ClearAvatar clears the value of the "avatar" field.
func (_u *ServiceProviderUpdateOne) ClearAvatar() *ServiceProviderUpdateOne {
	_u.mutation.ClearAvatar()
	return _u
}

// SetComment sets the "comment" field.
func (_u *ServiceProviderUpdateOne) SetComment(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableComment(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetCommentForOcr sets the "comment_for_ocr" field.
func (_u *ServiceProviderUpdateOne) SetCommentForOcr(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetCommentForOcr(v)
	return _u
}

// SetNillableCommentForOcr sets the "comment_for_ocr" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableCommentForOcr(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetCommentForOcr(*v)
	}
	return _u
}

// SetRegular sets the "regular" field.
func (_u *ServiceProviderUpdateOne) SetRegular(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetRegular(v)
	return _u
}

// SetNillableRegular sets the "regular" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableRegular(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetRegular(*v)
	}
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ServiceProviderUpdateOne) SetCustomFields(v json.RawMessage) *ServiceProviderUpdateOne {
	_u.mutation.SetCustomFields(v)
	return _u
}

// AppendCustomFields appends value to the "custom_fields" field.
func (_u *ServiceProviderUpdateOne) AppendCustomFields(v json.RawMessage) *ServiceProviderUpdateOne {
	_u.mutation.AppendCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ServiceProviderUpdateOne) ClearCustomFields() *ServiceProviderUpdateOne {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetState sets the "state" field.
func (_u *ServiceProviderUpdateOne) SetState(v string) *ServiceProviderUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableState(v *string) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCreatedDate sets the "created_date" field.
func (_u *ServiceProviderUpdateOne) SetCreatedDate(v time.Time) *ServiceProviderUpdateOne {
	_u.mutation.SetCreatedDate(v)
	return _u
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_u *ServiceProviderUpdateOne) SetNillableCreatedDate(v *time.Time) *ServiceProviderUpdateOne {
	if v != nil {
		_u.SetCreatedDate(*v)
	}
	return _u
}

// SetModifiedDate sets the "modified_date" field.
func (_u *ServiceProviderUpdateOne) SetModifiedDate(v time.Time) *ServiceProviderUpdateOne {
	_u.mutation.SetModifiedDate(v)
	return _u
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_u *ServiceProviderUpdateOne) AddBillIDs(ids ...uuid.UUID) *ServiceProviderUpdateOne {
	_u.mutation.AddBillIDs(ids...)
	return _u
}

// AddBills adds the "bills" edges to the Bill entity.
func (_u *ServiceProviderUpdateOne) AddBills(v ...*Bill) *ServiceProviderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBillIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *ServiceProviderUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *ServiceProviderUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *ServiceProviderUpdateOne) AddReceipts(v ...*Receipt) *ServiceProviderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the ServiceProviderMutation object of the builder.
func (_u *ServiceProviderUpdateOne) Mutation() *ServiceProviderMutation {
	return _u.mutation
}

// ClearBills clears all "bills" edges to the Bill entity.
func (_u *ServiceProviderUpdateOne) ClearBills() *ServiceProviderUpdateOne {
	_u.mutation.ClearBills()
	return _u
}

// RemoveBillIDs removes the "bills" edge to Bill entities by IDs.
func (_u *ServiceProviderUpdateOne) RemoveBillIDs(ids ...uuid.UUID) *ServiceProviderUpdateOne {
	_u.mutation.RemoveBillIDs(ids...)
	return _u
}

// RemoveBills removes "bills" edges to Bill entities.
func (_u *ServiceProviderUpdateOne) RemoveBills(v ...*Bill) *ServiceProviderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBillIDs(ids...)
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *ServiceProviderUpdateOne) ClearReceipts() *ServiceProviderUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *ServiceProviderUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *ServiceProviderUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *ServiceProviderUpdateOne) RemoveReceipts(v ...*Receipt) *ServiceProviderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Where appends a list predicates to the ServiceProviderUpdate builder.
func (_u *ServiceProviderUpdateOne) Where(ps ...predicate.ServiceProvider) *ServiceProviderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServiceProviderUpdateOne) Select(field string, fields ...string) *ServiceProviderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ServiceProvider entity.
func (_u *ServiceProviderUpdateOne) Save(ctx context.Context) (*ServiceProvider, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServiceProviderUpdateOne) SaveX(ctx context.Context) *ServiceProvider {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServiceProviderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServiceProviderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServiceProviderUpdateOne) defaults() {
	if _, ok := _u.mutation.ModifiedDate(); !ok {
		v := serviceprovider.UpdateDefaultModifiedDate()
		_u.mutation.SetModifiedDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServiceProviderUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := serviceprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Regular(); ok {
		if err := serviceprovider.RegularValidator(v); err != nil {
			return &ValidationError{Name: "regular", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.regular": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := serviceprovider.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ServiceProviderUpdateOne) sqlSave(ctx context.Context) (_node *ServiceProvider, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(serviceprovider.Table, serviceprovider.Columns, sqlgraph.NewFieldSpec(serviceprovider.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ServiceProvider.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, serviceprovider.FieldID)
		for _, f := range fields {
			if !serviceprovider.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != serviceprovider.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(serviceprovider.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(serviceprovider.FieldAvatar, field.TypeString, value)
	}
	if _u.mutation.AvatarCleared() {
		_spec.ClearField(serviceprovider.FieldAvatar, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(serviceprovider.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentForOcr(); ok {
		_spec.SetField(serviceprovider.FieldCommentForOcr, field.TypeString, value)
	}
	if value, ok := _u.mutation.Regular(); ok {
		_spec.SetField(serviceprovider.FieldRegular, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(serviceprovider.FieldCustomFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, serviceprovider.FieldCustomFields, value)
		})
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(serviceprovider.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(serviceprovider.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedDate(); ok {
		_spec.SetField(serviceprovider.FieldCreatedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ModifiedDate(); ok {
		_spec.SetField(serviceprovider.FieldModifiedDate, field.TypeTime, value)
	}
	if _u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBillsIDs(); len(nodes) > 0 && !_u.mutation.BillsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BillsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.BillsTable,
			Columns: []string{serviceprovider.BillsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bill.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   serviceprovider.ReceiptsTable,
			Columns: []string{serviceprovider.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ServiceProvider{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{serviceprovider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
