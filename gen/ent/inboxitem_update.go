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
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/google/uuid"
)

// InboxItemUpdate is the builder for updating InboxItem entities.
type InboxItemUpdate struct {
	config
	hooks    []Hook
	mutation *InboxItemMutation
}

// Where appends a list predicates to the InboxItemUpdate builder.
func (_u *InboxItemUpdate) Where(ps ...predicate.InboxItem) *InboxItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InboxItemUpdate) SetFileID(v uuid.UUID) *InboxItemUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableFileID(v *uuid.UUID) *InboxItemUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InboxItemUpdate) SetUserID(v uuid.UUID) *InboxItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableUserID(v *uuid.UUID) *InboxItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUploadedImage sets the "uploaded_image" field.
func (_u *InboxItemUpdate) SetUploadedImage(v string) *InboxItemUpdate {
	_u.mutation.SetUploadedImage(v)
	return _u
}

// SetNillableUploadedImage sets the "uploaded_image" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableUploadedImage(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetUploadedImage(*v)
	}
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *InboxItemUpdate) SetUploadDate(v time.Time) *InboxItemUpdate {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableUploadDate(v *time.Time) *InboxItemUpdate {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InboxItemUpdate) SetState(v string) *InboxItemUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableState(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboxItemUpdate) SetStatus(v string) *InboxItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableStatus(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrResults sets the "ocr_results" field.
func (_u *InboxItemUpdate) SetOcrResults(v string) *InboxItemUpdate {
	_u.mutation.SetOcrResults(v)
	return _u
}

// SetNillableOcrResults sets the "ocr_results" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableOcrResults(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetOcrResults(*v)
	}
	return _u
}

// ClearOcrResults clears the value of the "ocr_results" field.
func (_u *InboxItemUpdate) ClearOcrResults() *InboxItemUpdate {
	_u.mutation.ClearOcrResults()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InboxItemUpdate) SetFailureReason(v string) *InboxItemUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableFailureReason(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InboxItemUpdate) ClearFailureReason() *InboxItemUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLinkedEntityID sets the "linked_entity_id" field.
func (_u *InboxItemUpdate) SetLinkedEntityID(v uuid.UUID) *InboxItemUpdate {
	_u.mutation.SetLinkedEntityID(v)
	return _u
}

// SetNillableLinkedEntityID sets the "linked_entity_id" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableLinkedEntityID(v *uuid.UUID) *InboxItemUpdate {
	if v != nil {
		_u.SetLinkedEntityID(*v)
	}
	return _u
}

// ClearLinkedEntityID clears the value of the "linked_entity_id" field.
func (_u *InboxItemUpdate) ClearLinkedEntityID() *InboxItemUpdate {
	_u.mutation.ClearLinkedEntityID()
	return _u
}

// SetLinkedEntityType sets the "linked_entity_type" field.
func (_u *InboxItemUpdate) SetLinkedEntityType(v string) *InboxItemUpdate {
	_u.mutation.SetLinkedEntityType(v)
	return _u
}

// SetNillableLinkedEntityType sets the "linked_entity_type" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableLinkedEntityType(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetLinkedEntityType(*v)
	}
	return _u
}

// ClearLinkedEntityType clears the value of the "linked_entity_type" field.
func (_u *InboxItemUpdate) ClearLinkedEntityType() *InboxItemUpdate {
	_u.mutation.ClearLinkedEntityType()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *InboxItemUpdate) SetRejectionReason(v string) *InboxItemUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableRejectionReason(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *InboxItemUpdate) ClearRejectionReason() *InboxItemUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *InboxItemUpdate) SetRejectedAt(v time.Time) *InboxItemUpdate {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableRejectedAt(v *time.Time) *InboxItemUpdate {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *InboxItemUpdate) ClearRejectedAt() *InboxItemUpdate {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetFile sets the "file" edge to the IncomingFile entity.
func (_u *InboxItemUpdate) SetFile(v *IncomingFile) *InboxItemUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the InboxItemMutation object of the builder.
func (_u *InboxItemUpdate) Mutation() *InboxItemMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the IncomingFile entity.
func (_u *InboxItemUpdate) ClearFile() *InboxItemUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboxItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboxItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxItemUpdate) check() error {
	if v, ok := _u.mutation.UploadedImage(); ok {
		if err := inboxitem.UploadedImageValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_image", err: fmt.Errorf(`ent: validator failed for field "InboxItem.uploaded_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := inboxitem.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedEntityType(); ok {
		if err := inboxitem.LinkedEntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "linked_entity_type", err: fmt.Errorf(`ent: validator failed for field "InboxItem.linked_entity_type": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboxItem.file"`)
	}
	return nil
}

func (_u *InboxItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxitem.Table, inboxitem.Columns, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(inboxitem.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadedImage(); ok {
		_spec.SetField(inboxitem.FieldUploadedImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(inboxitem.FieldUploadDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(inboxitem.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboxitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrResults(); ok {
		_spec.SetField(inboxitem.FieldOcrResults, field.TypeString, value)
	}
	if _u.mutation.OcrResultsCleared() {
		_spec.ClearField(inboxitem.FieldOcrResults, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(inboxitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(inboxitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedEntityID(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.LinkedEntityIDCleared() {
		_spec.ClearField(inboxitem.FieldLinkedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LinkedEntityType(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityType, field.TypeString, value)
	}
	if _u.mutation.LinkedEntityTypeCleared() {
		_spec.ClearField(inboxitem.FieldLinkedEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(inboxitem.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(inboxitem.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(inboxitem.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(inboxitem.FieldRejectedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboxItemUpdateOne is the builder for updating a single InboxItem entity.
type InboxItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboxItemMutation
}

// SetFileID sets the "file_id" field.
func (_u *InboxItemUpdateOne) SetFileID(v uuid.UUID) *InboxItemUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableFileID(v *uuid.UUID) *InboxItemUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InboxItemUpdateOne) SetUserID(v uuid.UUID) *InboxItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableUserID(v *uuid.UUID) *InboxItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUploadedImage sets the "uploaded_image" field.
func (_u *InboxItemUpdateOne) SetUploadedImage(v string) *InboxItemUpdateOne {
	_u.mutation.SetUploadedImage(v)
	return _u
}

// SetNillableUploadedImage sets the "uploaded_image" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableUploadedImage(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetUploadedImage(*v)
	}
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *InboxItemUpdateOne) SetUploadDate(v time.Time) *InboxItemUpdateOne {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableUploadDate(v *time.Time) *InboxItemUpdateOne {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InboxItemUpdateOne) SetState(v string) *InboxItemUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableState(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboxItemUpdateOne) SetStatus(v string) *InboxItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableStatus(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrResults sets the "ocr_results" field.
func (_u *InboxItemUpdateOne) SetOcrResults(v string) *InboxItemUpdateOne {
	_u.mutation.SetOcrResults(v)
	return _u
}

// SetNillableOcrResults sets the "ocr_results" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableOcrResults(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetOcrResults(*v)
	}
	return _u
}

// ClearOcrResults clears the value of the "ocr_results" field.
func (_u *InboxItemUpdateOne) ClearOcrResults() *InboxItemUpdateOne {
	_u.mutation.ClearOcrResults()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InboxItemUpdateOne) SetFailureReason(v string) *InboxItemUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableFailureReason(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InboxItemUpdateOne) ClearFailureReason() *InboxItemUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLinkedEntityID sets the "linked_entity_id" field.
func (_u *InboxItemUpdateOne) SetLinkedEntityID(v uuid.UUID) *InboxItemUpdateOne {
	_u.mutation.SetLinkedEntityID(v)
	return _u
}

// SetNillableLinkedEntityID sets the "linked_entity_id" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableLinkedEntityID(v *uuid.UUID) *InboxItemUpdateOne {
	if v != nil {
		_u.SetLinkedEntityID(*v)
	}
	return _u
}

// ClearLinkedEntityID clears the value of the "linked_entity_id" field.
func (_u *InboxItemUpdateOne) ClearLinkedEntityID() *InboxItemUpdateOne {
	_u.mutation.ClearLinkedEntityID()
	return _u
}

// SetLinkedEntityType sets the "linked_entity_type" field.
func (_u *InboxItemUpdateOne) SetLinkedEntityType(v string) *InboxItemUpdateOne {
	_u.mutation.SetLinkedEntityType(v)
	return _u
}

// SetNillableLinkedEntityType sets the "linked_entity_type" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableLinkedEntityType(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetLinkedEntityType(*v)
	}
	return _u
}

// ClearLinkedEntityType clears the value of the "linked_entity_type" field.
func (_u *InboxItemUpdateOne) ClearLinkedEntityType() *InboxItemUpdateOne {
	_u.mutation.ClearLinkedEntityType()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *InboxItemUpdateOne) SetRejectionReason(v string) *InboxItemUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableRejectionReason(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *InboxItemUpdateOne) ClearRejectionReason() *InboxItemUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetRejectedAt sets the "rejected_at" field.
func (_u *InboxItemUpdateOne) SetRejectedAt(v time.Time) *InboxItemUpdateOne {
	_u.mutation.SetRejectedAt(v)
	return _u
}

// SetNillableRejectedAt sets the "rejected_at" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableRejectedAt(v *time.Time) *InboxItemUpdateOne {
	if v != nil {
		_u.SetRejectedAt(*v)
	}
	return _u
}

// ClearRejectedAt clears the value of the "rejected_at" field.
func (_u *InboxItemUpdateOne) ClearRejectedAt() *InboxItemUpdateOne {
	_u.mutation.ClearRejectedAt()
	return _u
}

// SetFile sets the "file" edge to the IncomingFile entity.
func (_u *InboxItemUpdateOne) SetFile(v *IncomingFile) *InboxItemUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the InboxItemMutation object of the builder.
func (_u *InboxItemUpdateOne) Mutation() *InboxItemMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the IncomingFile entity.
func (_u *InboxItemUpdateOne) ClearFile() *InboxItemUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the InboxItemUpdate builder.
func (_u *InboxItemUpdateOne) Where(ps ...predicate.InboxItem) *InboxItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboxItemUpdateOne) Select(field string, fields ...string) *InboxItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboxItem entity.
func (_u *InboxItemUpdateOne) Save(ctx context.Context) (*InboxItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxItemUpdateOne) SaveX(ctx context.Context) *InboxItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboxItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxItemUpdateOne) check() error {
	if v, ok := _u.mutation.UploadedImage(); ok {
		if err := inboxitem.UploadedImageValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_image", err: fmt.Errorf(`ent: validator failed for field "InboxItem.uploaded_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := inboxitem.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LinkedEntityType(); ok {
		if err := inboxitem.LinkedEntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "linked_entity_type", err: fmt.Errorf(`ent: validator failed for field "InboxItem.linked_entity_type": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboxItem.file"`)
	}
	return nil
}

func (_u *InboxItemUpdateOne) sqlSave(ctx context.Context) (_node *InboxItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxitem.Table, inboxitem.Columns, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboxItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboxitem.FieldID)
		for _, f := range fields {
			if !inboxitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboxitem.FieldID {
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
		_spec.SetField(inboxitem.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadedImage(); ok {
		_spec.SetField(inboxitem.FieldUploadedImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(inboxitem.FieldUploadDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(inboxitem.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboxitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrResults(); ok {
		_spec.SetField(inboxitem.FieldOcrResults, field.TypeString, value)
	}
	if _u.mutation.OcrResultsCleared() {
		_spec.ClearField(inboxitem.FieldOcrResults, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(inboxitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(inboxitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LinkedEntityID(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityID, field.TypeUUID, value)
	}
	if _u.mutation.LinkedEntityIDCleared() {
		_spec.ClearField(inboxitem.FieldLinkedEntityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.LinkedEntityType(); ok {
		_spec.SetField(inboxitem.FieldLinkedEntityType, field.TypeString, value)
	}
	if _u.mutation.LinkedEntityTypeCleared() {
		_spec.ClearField(inboxitem.FieldLinkedEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(inboxitem.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(inboxitem.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.RejectedAt(); ok {
		_spec.SetField(inboxitem.FieldRejectedAt, field.TypeTime, value)
	}
	if _u.mutation.RejectedAtCleared() {
		_spec.ClearField(inboxitem.FieldRejectedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InboxItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
