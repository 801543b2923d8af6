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

// IncomingFileUpdate is the builder for updating IncomingFile entities.
type IncomingFileUpdate struct {
	config
	hooks    []Hook
	mutation *IncomingFileMutation
}

// Where appends a list predicates to the IncomingFileUpdate builder.
func (_u *IncomingFileUpdate) Where(ps ...predicate.IncomingFile) *IncomingFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *IncomingFileUpdate) SetUserID(v uuid.UUID) *IncomingFileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableUserID(v *uuid.UUID) *IncomingFileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *IncomingFileUpdate) SetFilename(v string) *IncomingFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableFilename(v *string) *IncomingFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *IncomingFileUpdate) SetFilePath(v string) *IncomingFileUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableFilePath(v *string) *IncomingFileUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *IncomingFileUpdate) SetFileExt(v string) *IncomingFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableFileExt(v *string) *IncomingFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *IncomingFileUpdate) SetFileSize(v int) *IncomingFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableFileSize(v *int) *IncomingFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *IncomingFileUpdate) AddFileSize(v int) *IncomingFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *IncomingFileUpdate) SetChecksum(v string) *IncomingFileUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableChecksum(v *string) *IncomingFileUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncomingFileUpdate) SetStatus(v string) *IncomingFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableStatus(v *string) *IncomingFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *IncomingFileUpdate) SetUploadDate(v time.Time) *IncomingFileUpdate {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *IncomingFileUpdate) SetNillableUploadDate(v *time.Time) *IncomingFileUpdate {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// AddInboxItemIDs adds the "inbox_items" edge to the InboxItem entity by IDs.
func (_u *IncomingFileUpdate) AddInboxItemIDs(ids ...uuid.UUID) *IncomingFileUpdate {
	_u.mutation.AddInboxItemIDs(ids...)
	return _u
}

// AddInboxItems adds the "inbox_items" edges to the InboxItem entity.
func (_u *IncomingFileUpdate) AddInboxItems(v ...*InboxItem) *IncomingFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInboxItemIDs(ids...)
}

// Mutation returns the IncomingFileMutation object of the builder.
func (_u *IncomingFileUpdate) Mutation() *IncomingFileMutation {
	return _u.mutation
}

// ClearInboxItems clears all "inbox_items" edges to the InboxItem entity.
func (_u *IncomingFileUpdate) ClearInboxItems() *IncomingFileUpdate {
	_u.mutation.ClearInboxItems()
	return _u
}

// RemoveInboxItemIDs removes the "inbox_items" edge to InboxItem entities by IDs.
func (_u *IncomingFileUpdate) RemoveInboxItemIDs(ids ...uuid.UUID) *IncomingFileUpdate {
	_u.mutation.RemoveInboxItemIDs(ids...)
	return _u
}

// RemoveInboxItems removes "inbox_items" edges to InboxItem entities.
func (_u *IncomingFileUpdate) RemoveInboxItems(v ...*InboxItem) *IncomingFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInboxItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncomingFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncomingFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncomingFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncomingFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncomingFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := incomingfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := incomingfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := incomingfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := incomingfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := incomingfile.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.checksum": %w`, err)}
		}
	}
	return nil
}

func (_u *IncomingFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incomingfile.Table, incomingfile.Columns, sqlgraph.NewFieldSpec(incomingfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(incomingfile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(incomingfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(incomingfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(incomingfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(incomingfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(incomingfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(incomingfile.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incomingfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(incomingfile.FieldUploadDate, field.TypeTime, value)
	}
	if _u.mutation.InboxItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInboxItemsIDs(); len(nodes) > 0 && !_u.mutation.InboxItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InboxItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incomingfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncomingFileUpdateOne is the builder for updating a single IncomingFile entity.
type IncomingFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncomingFileMutation
}

// SetUserID sets the "user_id" field.
func (_u *IncomingFileUpdateOne) SetUserID(v uuid.UUID) *IncomingFileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableUserID(v *uuid.UUID) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *IncomingFileUpdateOne) SetFilename(v string) *IncomingFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableFilename(v *string) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *IncomingFileUpdateOne) SetFilePath(v string) *IncomingFileUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableFilePath(v *string) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *IncomingFileUpdateOne) SetFileExt(v string) *IncomingFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableFileExt(v *string) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *IncomingFileUpdateOne) SetFileSize(v int) *IncomingFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableFileSize(v *int) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *IncomingFileUpdateOne) AddFileSize(v int) *IncomingFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *IncomingFileUpdateOne) SetChecksum(v string) *IncomingFileUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableChecksum(v *string) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncomingFileUpdateOne) SetStatus(v string) *IncomingFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableStatus(v *string) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUploadDate sets the "upload_date" field.
func (_u *IncomingFileUpdateOne) SetUploadDate(v time.Time) *IncomingFileUpdateOne {
	_u.mutation.SetUploadDate(v)
	return _u
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_u *IncomingFileUpdateOne) SetNillableUploadDate(v *time.Time) *IncomingFileUpdateOne {
	if v != nil {
		_u.SetUploadDate(*v)
	}
	return _u
}

// AddInboxItemIDs adds the "inbox_items" edge to the InboxItem entity by IDs.
func (_u *IncomingFileUpdateOne) AddInboxItemIDs(ids ...uuid.UUID) *IncomingFileUpdateOne {
	_u.mutation.AddInboxItemIDs(ids...)
	return _u
}

// AddInboxItems adds the "inbox_items" edges to the InboxItem entity.
func (_u *IncomingFileUpdateOne) AddInboxItems(v ...*InboxItem) *IncomingFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInboxItemIDs(ids...)
}

// Mutation returns the IncomingFileMutation object of the builder.
func (_u *IncomingFileUpdateOne) Mutation() *IncomingFileMutation {
	return _u.mutation
}

// ClearInboxItems clears all "inbox_items" edges to the InboxItem entity.
func (_u *IncomingFileUpdateOne) ClearInboxItems() *IncomingFileUpdateOne {
	_u.mutation.ClearInboxItems()
	return _u
}

// RemoveInboxItemIDs removes the "inbox_items" edge to InboxItem entities by IDs.
func (_u *IncomingFileUpdateOne) RemoveInboxItemIDs(ids ...uuid.UUID) *IncomingFileUpdateOne {
	_u.mutation.RemoveInboxItemIDs(ids...)
	return _u
}

// RemoveInboxItems removes "inbox_items" edges to InboxItem entities.
func (_u *IncomingFileUpdateOne) RemoveInboxItems(v ...*InboxItem) *IncomingFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInboxItemIDs(ids...)
}

// Where appends a list predicates to the IncomingFileUpdate builder.
func (_u *IncomingFileUpdateOne) Where(ps ...predicate.IncomingFile) *IncomingFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncomingFileUpdateOne) Select(field string, fields ...string) *IncomingFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IncomingFile entity.
func (_u *IncomingFileUpdateOne) Save(ctx context.Context) (*IncomingFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncomingFileUpdateOne) SaveX(ctx context.Context) *IncomingFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncomingFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncomingFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncomingFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := incomingfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := incomingfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := incomingfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := incomingfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := incomingfile.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.checksum": %w`, err)}
		}
	}
	return nil
}

func (_u *IncomingFileUpdateOne) sqlSave(ctx context.Context) (_node *IncomingFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incomingfile.Table, incomingfile.Columns, sqlgraph.NewFieldSpec(incomingfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IncomingFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incomingfile.FieldID)
		for _, f := range fields {
			if !incomingfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incomingfile.FieldID {
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
		_spec.SetField(incomingfile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(incomingfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(incomingfile.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(incomingfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(incomingfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(incomingfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(incomingfile.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incomingfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadDate(); ok {
		_spec.SetField(incomingfile.FieldUploadDate, field.TypeTime, value)
	}
	if _u.mutation.InboxItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInboxItemsIDs(); len(nodes) > 0 && !_u.mutation.InboxItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InboxItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incomingfile.InboxItemsTable,
			Columns: []string{incomingfile.InboxItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IncomingFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incomingfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
