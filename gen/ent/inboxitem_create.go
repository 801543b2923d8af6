// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/google/uuid"
)

// InboxItemCreate is the builder for creating a InboxItem entity.
type InboxItemCreate struct {
	config
	mutation *InboxItemMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *InboxItemCreate) SetFileID(v uuid.UUID) *InboxItemCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InboxItemCreate) SetUserID(v uuid.UUID) *InboxItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUploadedImage sets the "uploaded_image" field.
func (_c *InboxItemCreate) SetUploadedImage(v string) *InboxItemCreate {
	_c.mutation.SetUploadedImage(v)
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *InboxItemCreate) SetUploadDate(v time.Time) *InboxItemCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableUploadDate(v *time.Time) *InboxItemCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *InboxItemCreate) SetState(v string) *InboxItemCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableState(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InboxItemCreate) SetStatus(v string) *InboxItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableStatus(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOcrResults sets the "ocr_results" field.
func (_c *InboxItemCreate) SetOcrResults(v string) *InboxItemCreate {
	_c.mutation.SetOcrResults(v)
	return _c
}

// SetNillableOcrResults sets the "ocr_results" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableOcrResults(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetOcrResults(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *InboxItemCreate) SetFailureReason(v string) *InboxItemCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableFailureReason(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetLinkedEntityID sets the "linked_entity_id" field.
func (_c *InboxItemCreate) SetLinkedEntityID(v uuid.UUID) *InboxItemCreate {
	_c.mutation.SetLinkedEntityID(v)
	return _c
}

// SetNillableLinkedEntityID sets the "linked_entity_id" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableLinkedEntityID(v *uuid.UUID) *InboxItemCreate {
	if v != nil {
		_c.SetLinkedEntityID(*v)
	}
	return _c
}

// SetLinkedEntityType sets the "linked_entity_type" field.
func (_c *InboxItemCreate) SetLinkedEntityType(v string) *InboxItemCreate {
	_c.mutation.SetLinkedEntityType(v)
	return _c
}

// SetNillableLinkedEntityType sets the "linked_entity_type" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableLinkedEntityType(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetLinkedEntityType(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *InboxItemCreate) SetRejectionReason(v string) *InboxItemCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableRejectionReason(v *string) *InboxItemCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetRejectedAt sets the "rejected_at" field.
func (_c *InboxItemCreate) SetRejectedAt(v time.Time) *InboxItemCreate {
	_c.mutation.SetRejectedAt(v)
	return _c
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableRejectedAt(v *time.Time) *InboxItemCreate {
	if v != nil {
		_c.SetRejectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InboxItemCreate) SetID(v uuid.UUID) *InboxItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InboxItemCreate) SetNillableID(v *uuid.UUID) *InboxItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the IncomingFile entity.
func (_c *InboxItemCreate) SetFile(v *IncomingFile) *InboxItemCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the InboxItemMutation object of the builder.
func (_c *InboxItemCreate) Mutation() *InboxItemMutation {
	return _c.mutation
}

// Save creates the InboxItem in the database.
func (_c *InboxItemCreate) Save(ctx context.Context) (*InboxItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboxItemCreate) SaveX(ctx context.Context) *InboxItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboxItemCreate) defaults() {
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := inboxitem.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := inboxitem.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := inboxitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inboxitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboxItemCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "InboxItem.file_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InboxItem.user_id"`)}
	}
	if _, ok := _c.mutation.UploadedImage(); !ok {
		return &ValidationError{Name: "uploaded_image", err: errors.New(`ent: missing required field "InboxItem.uploaded_image"`)}
	}
	if v, ok := _c.mutation.UploadedImage(); ok {
		if err := inboxitem.UploadedImageValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_image", err: fmt.Errorf(`ent: validator failed for field "InboxItem.uploaded_image": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "InboxItem.upload_date"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "InboxItem.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := inboxitem.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InboxItem.status"`)}
	}
	if v, ok := _c.mutation.LinkedEntityType(); ok {
		if err := inboxitem.LinkedEntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "linked_entity_type", err: fmt.Errorf(`ent: validator failed for field "InboxItem.linked_entity_type": %w`, err)}
		}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "InboxItem.file"`)}
	}
	return nil
}

func (_c *InboxItemCreate) sqlSave(ctx context.Context) (*InboxItem, error) {
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

func (_c *InboxItemCreate) createSpec() (*InboxItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InboxItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboxitem.Table, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(inboxitem.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UploadedImage(); ok {
		_spec.SetField(inboxitem.FieldUploadedImage, field.TypeString, value)
		_node.UploadedImage = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(inboxitem.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(inboxitem.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inboxitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OcrResults(); ok {
		_spec.SetField(inboxitem.FieldOcrResults, field.TypeString, value)
		_node.OcrResults = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(inboxitem.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.LinkedEntityID(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityID, field.TypeUUID, value)
		_node.LinkedEntityID = &value
	}
	if value, ok := _c.mutation.LinkedEntityType(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityType, field.TypeString, value)
		_node.LinkedEntityType = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(inboxitem.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.RejectedAt(); ok {
		_spec.SetField(inboxitem.FieldRejectedAt, field.TypeTime, value)
		_node.RejectedAt = &value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inboxitem.FileTable,
			Columns: []string{inboxitem.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(incomingfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InboxItemCreateBulk is the builder for creating many InboxItem entities in bulk.
type InboxItemCreateBulk struct {
	config
	err      error
	builders []*InboxItemCreate
}

// Save creates the InboxItem entities in the database.
func (_c *InboxItemCreateBulk) Save(ctx context.Context) ([]*InboxItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboxItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboxItemMutation)
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
func (_c *InboxItemCreateBulk) SaveX(ctx context.Context) []*InboxItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboxItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboxItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
