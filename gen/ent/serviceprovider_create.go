// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/bill"
	"github.com/docledger/docledger/gen/ent/receipt"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// ServiceProviderCreate is the builder for creating a ServiceProvider entity.
type ServiceProviderCreate struct {
	config
	mutation *ServiceProviderMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ServiceProviderCreate) SetName(v string) *ServiceProviderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *ServiceProviderCreate) SetAvatar(v string) *ServiceProviderCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableAvatar(v *string) *ServiceProviderCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *ServiceProviderCreate) SetComment(v string) *ServiceProviderCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableComment(v *string) *ServiceProviderCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCommentForOcr sets the "comment_for_ocr" field.
func (_c *ServiceProviderCreate) SetCommentForOcr(v string) *ServiceProviderCreate {
	_c.mutation.SetCommentForOcr(v)
	return _c
}

// SetNillableCommentForOcr sets the "comment_for_ocr" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableCommentForOcr(v *string) *ServiceProviderCreate {
	if v != nil {
		_c.SetCommentForOcr(*v)
	}
	return _c
}

// SetRegular sets the "regular" field.
func (_c *ServiceProviderCreate) SetRegular(v string) *ServiceProviderCreate {
	_c.mutation.SetRegular(v)
	return _c
}

// SetNillableRegular sets the "regular" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableRegular(v *string) *ServiceProviderCreate {
	if v != nil {
		_c.SetRegular(*v)
	}
	return _c
}

// SetCustomFields sets the "custom_fields" field.
func (_c *ServiceProviderCreate) SetCustomFields(v json.RawMessage) *ServiceProviderCreate {
	_c.mutation.SetCustomFields(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ServiceProviderCreate) SetState(v string) *ServiceProviderCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableState(v *string) *ServiceProviderCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedDate sets the "created_date" field.
func (_c *ServiceProviderCreate) SetCreatedDate(v time.Time) *ServiceProviderCreate {
	_c.mutation.SetCreatedDate(v)
	return _c
}

// SetNillableCreatedDate sets the "created_date" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableCreatedDate(v *time.Time) *ServiceProviderCreate {
	if v != nil {
		_c.SetCreatedDate(*v)
	}
	return _c
}

// SetModifiedDate sets the "modified_date" field.
func (_c *ServiceProviderCreate) SetModifiedDate(v time.Time) *ServiceProviderCreate {
	_c.mutation.SetModifiedDate(v)
	return _c
}

// SetNillableModifiedDate sets the "modified_date" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableModifiedDate(v *time.Time) *ServiceProviderCreate {
	if v != nil {
		_c.SetModifiedDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServiceProviderCreate) SetID(v uuid.UUID) *ServiceProviderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServiceProviderCreate) SetNillableID(v *uuid.UUID) *ServiceProviderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddBillIDs adds the "bills" edge to the Bill entity by IDs.
func (_c *ServiceProviderCreate) AddBillIDs(ids ...uuid.UUID) *ServiceProviderCreate {
	_c.mutation.AddBillIDs(ids...)
	return _c
}

// AddBills adds the "bills" edges to the Bill entity.
func (_c *ServiceProviderCreate) AddBills(v ...*Bill) *ServiceProviderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBillIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_c *ServiceProviderCreate) AddReceiptIDs(ids ...uuid.UUID) *ServiceProviderCreate {
	_c.mutation.AddReceiptIDs(ids...)
	return _c
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_c *ServiceProviderCreate) AddReceipts(v ...*Receipt) *ServiceProviderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiptIDs(ids...)
}

// Mutation returns the ServiceProviderMutation object of the builder.
func (_c *ServiceProviderCreate) Mutation() *ServiceProviderMutation {
	return _c.mutation
}

// Save creates the ServiceProvider in the database.
func (_c *ServiceProviderCreate) Save(ctx context.Context) (*ServiceProvider, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServiceProviderCreate) SaveX(ctx context.Context) *ServiceProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceProviderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceProviderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServiceProviderCreate) defaults() {
	if _, ok := _c.mutation.Comment(); !ok {
		v := serviceprovider.DefaultComment
		_c.mutation.SetComment(v)
	}
	if _, ok := _c.mutation.CommentForOcr(); !ok {
		v := serviceprovider.DefaultCommentForOcr
		_c.mutation.SetCommentForOcr(v)
	}
	if _, ok := _c.mutation.Regular(); !ok {
		v := serviceprovider.DefaultRegular
		_c.mutation.SetRegular(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := serviceprovider.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedDate(); !ok {
		v := serviceprovider.DefaultCreatedDate()
		_c.mutation.SetCreatedDate(v)
	}
	if _, ok := _c.mutation.ModifiedDate(); !ok {
		v := serviceprovider.DefaultModifiedDate()
		_c.mutation.SetModifiedDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := serviceprovider.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServiceProviderCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ServiceProvider.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := serviceprovider.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comment(); !ok {
		return &ValidationError{Name: "comment", err: errors.New(`ent: missing required field "ServiceProvider.comment"`)}
	}
	if _, ok := _c.mutation.CommentForOcr(); !ok {
		return &ValidationError{Name: "comment_for_ocr", err: errors.New(`ent: missing required field "ServiceProvider.comment_for_ocr"`)}
	}
	if _, ok := _c.mutation.Regular(); !ok {
		return &ValidationError{Name: "regular", err: errors.New(`ent: missing required field "ServiceProvider.regular"`)}
	}
	if v, ok := _c.mutation.Regular(); ok {
		if err := serviceprovider.RegularValidator(v); err != nil {
			return &ValidationError{Name: "regular", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.regular": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ServiceProvider.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := serviceprovider.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ServiceProvider.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedDate(); !ok {
		return &ValidationError{Name: "created_date", err: errors.New(`ent: missing required field "ServiceProvider.created_date"`)}
	}
	if _, ok := _c.mutation.ModifiedDate(); !ok {
		return &ValidationError{Name: "modified_date", err: errors.New(`ent: missing required field "ServiceProvider.modified_date"`)}
	}
	return nil
}

func (_c *ServiceProviderCreate) sqlSave(ctx context.Context) (*ServiceProvider, error) {
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

func (_c *ServiceProviderCreate) createSpec() (*ServiceProvider, *sqlgraph.CreateSpec) {
	var (
		_node = &ServiceProvider{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(serviceprovider.Table, sqlgraph.NewFieldSpec(serviceprovider.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(serviceprovider.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(serviceprovider.FieldAvatar, field.TypeString, value)
		_node.Avatar = &value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(serviceprovider.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CommentForOcr(); ok {
		_spec.SetField(serviceprovider.FieldCommentForOcr, field.TypeString, value)
		_node.CommentForOcr = value
	}
	if value, ok := _c.mutation.Regular(); ok {
		_spec.SetField(serviceprovider.FieldRegular, field.TypeString, value)
		_node.Regular = value
	}
	if value, ok := _c.mutation.CustomFields(); ok {
		_spec.SetField(serviceprovider.FieldCustomFields, field.TypeJSON, value)
		_node.CustomFields = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(serviceprovider.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedDate(); ok {
		_spec.SetField(serviceprovider.FieldCreatedDate, field.TypeTime, value)
		_node.CreatedDate = value
	}
	if value, ok := _c.mutation.ModifiedDate(); ok {
		_spec.SetField(serviceprovider.FieldModifiedDate, field.TypeTime, value)
		_node.ModifiedDate = value
	}
	if nodes := _c.mutation.BillsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ServiceProviderCreateBulk is the builder for creating many ServiceProvider entities in bulk.
type ServiceProviderCreateBulk struct {
	config
	err      error
	builders []*ServiceProviderCreate
}

// Save creates the ServiceProvider entities in the database.
func (_c *ServiceProviderCreateBulk) Save(ctx context.Context) ([]*ServiceProvider, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ServiceProvider, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServiceProviderMutation)
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
func (_c *ServiceProviderCreateBulk) SaveX(ctx context.Context) []*ServiceProvider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServiceProviderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServiceProviderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
