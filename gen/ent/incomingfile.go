// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/google/uuid"
)

// IncomingFile is the model entity for the IncomingFile schema.
type IncomingFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// Checksum holds the value of the "checksum" field.
	Checksum string `json:"checksum,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// UploadDate holds the value of the "upload_date" field.
	UploadDate time.Time `json:"upload_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IncomingFileQuery when eager-loading is set.
	Edges        IncomingFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IncomingFileEdges holds the relations/edges for other nodes in the graph.
type IncomingFileEdges struct {
	// InboxItems holds the value of the inbox_items edge.
	InboxItems []*InboxItem `json:"inbox_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InboxItemsOrErr returns the InboxItems value or an error if the edge
// was not loaded in eager-loading.
func (e IncomingFileEdges) InboxItemsOrErr() ([]*InboxItem, error) {
	if e.loadedTypes[0] {
		return e.InboxItems, nil
	}
	return nil, &NotLoadedError{edge: "inbox_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IncomingFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case incomingfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case incomingfile.FieldFilename, incomingfile.FieldFilePath, incomingfile.FieldFileExt, incomingfile.FieldChecksum, incomingfile.FieldStatus:
			values[i] = new(sql.NullString)
		case incomingfile.FieldUploadDate:
			values[i] = new(sql.NullTime)
		case incomingfile.FieldID, incomingfile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IncomingFile fields.
func (_m *IncomingFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case incomingfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case incomingfile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case incomingfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case incomingfile.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case incomingfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case incomingfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case incomingfile.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case incomingfile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case incomingfile.FieldUploadDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_date", values[i])
			} else if value.Valid {
				_m.UploadDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IncomingFile.
// This includes values selected through modifiers, order, etc.
func (_m *IncomingFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInboxItems queries the "inbox_items" edge of the IncomingFile entity.
func (_m *IncomingFile) QueryInboxItems() *InboxItemQuery {
	return NewIncomingFileClient(_m.config).QueryInboxItems(_m)
}

// Update returns a builder for updating this IncomingFile.
// Note that you need to call IncomingFile.Unwrap() before calling this method if this IncomingFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IncomingFile) Update() *IncomingFileUpdateOne {
	return NewIncomingFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IncomingFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IncomingFile) Unwrap() *IncomingFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IncomingFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IncomingFile) String() string {
	var builder strings.Builder
	builder.WriteString("IncomingFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("upload_date=")
	builder.WriteString(_m.UploadDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IncomingFiles is a parsable slice of IncomingFile.
type IncomingFiles []*IncomingFile
