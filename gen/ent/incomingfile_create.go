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

// IncomingFileCreate is the builder for creating a IncomingFile entity.
type IncomingFileCreate struct {
	config
	mutation *IncomingFileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *IncomingFileCreate) SetUserID(v uuid.UUID) *IncomingFileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *IncomingFileCreate) SetFilename(v string) *IncomingFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *IncomingFileCreate) SetFilePath(v string) *IncomingFileCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *IncomingFileCreate) SetFileExt(v string) *IncomingFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *IncomingFileCreate) SetFileSize(v int) *IncomingFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *IncomingFileCreate) SetChecksum(v string) *IncomingFileCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IncomingFileCreate) SetStatus(v string) *IncomingFileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IncomingFileCreate) SetNillableStatus(v *string) *IncomingFileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *IncomingFileCreate) SetUploadDate(v time.Time) *IncomingFileCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *IncomingFileCreate) SetNillableUploadDate(v *time.Time) *IncomingFileCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IncomingFileCreate) SetID(v uuid.UUID) *IncomingFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IncomingFileCreate) SetNillableID(v *uuid.UUID) *IncomingFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInboxItemIDs adds the "inbox_items" edge to the InboxItem entity by IDs.
func (_c *IncomingFileCreate) AddInboxItemIDs(ids ...uuid.UUID) *IncomingFileCreate {
	_c.mutation.AddInboxItemIDs(ids...)
	return _c
}

// AddInboxItems adds the "inbox_items" edges to the InboxItem entity.
func (_c *IncomingFileCreate) AddInboxItems(v ...*InboxItem) *IncomingFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInboxItemIDs(ids...)
}

// Mutation returns the IncomingFileMutation object of the builder.
func (_c *IncomingFileCreate) Mutation() *IncomingFileMutation {
	return _c.mutation
}

// Save creates the IncomingFile in the database.
func (_c *IncomingFileCreate) Save(ctx context.Context) (*IncomingFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IncomingFileCreate) SaveX(ctx context.Context) *IncomingFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncomingFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncomingFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IncomingFileCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := incomingfile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := incomingfile.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := incomingfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IncomingFileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "IncomingFile.user_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "IncomingFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := incomingfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "IncomingFile.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := incomingfile.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "IncomingFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := incomingfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "IncomingFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := incomingfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "IncomingFile.checksum"`)}
	}
	if v, ok := _c.mutation.Checksum(); ok {
		if err := incomingfile.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "IncomingFile.checksum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IncomingFile.status"`)}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "IncomingFile.upload_date"`)}
	}
	return nil
}

func (_c *IncomingFileCreate) sqlSave(ctx context.Context) (*IncomingFile, error) {
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

func (_c *IncomingFileCreate) createSpec() (*IncomingFile, *sqlgraph.CreateSpec) {
	var (
		_node = &IncomingFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(incomingfile.Table, sqlgraph.NewFieldSpec(incomingfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(incomingfile.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(incomingfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(incomingfile.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(incomingfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(incomingfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(incomingfile.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(incomingfile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(incomingfile.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if nodes := _c.mutation.InboxItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IncomingFileCreateBulk is the builder for creating many IncomingFile entities in bulk.
type IncomingFileCreateBulk struct {
	config
	err      error
	builders []*IncomingFileCreate
}

// Save creates the IncomingFile entities in the database.
func (_c *IncomingFileCreateBulk) Save(ctx context.Context) ([]*IncomingFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IncomingFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IncomingFileMutation)
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
func (_c *IncomingFileCreateBulk) SaveX(ctx context.Context) []*IncomingFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IncomingFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IncomingFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
