// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docledger/docledger/gen/ent/inboxitem"
	"github.com/docledger/docledger/gen/ent/incomingfile"
	"github.com/google/uuid"
)

// InboxItem is the model entity for the InboxItem schema.
type InboxItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// UploadedImage holds the value of the "uploaded_image" field.
	UploadedImage string `json:"uploaded_image,omitempty"`
	// UploadDate holds the value of the "upload_date" field.
	UploadDate time.Time `json:"upload_date,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// OcrResults holds the value of the "ocr_results" field.
	OcrResults *string `json:"ocr_results,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// LinkedEntityID holds the value of the "linked_entity_id" field.
	LinkedEntityID *uuid.UUID `json:"linked_entity_id,omitempty"`
	// LinkedEntityType holds the value of the "linked_entity_type" field.
	LinkedEntityType *string `json:"linked_entity_type,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason *string `json:"rejection_reason,omitempty"`
	// RejectedAt holds the value of the "rejected_at" field.
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InboxItemQuery when eager-loading is set.
	Edges        InboxItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InboxItemEdges holds the relations/edges for other nodes in the graph.
type InboxItemEdges struct {
	// File holds the value of the file edge.
	File *IncomingFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InboxItemEdges) FileOrErr() (*IncomingFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: incomingfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InboxItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inboxitem.FieldLinkedEntityID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case inboxitem.FieldUploadedImage, inboxitem.FieldState, inboxitem.FieldStatus, inboxitem.FieldOcrResults, inboxitem.FieldFailureReason, inboxitem.FieldLinkedEntityType, inboxitem.FieldRejectionReason:
			values[i] = new(sql.NullString)
		case inboxitem.FieldUploadDate, inboxitem.FieldRejectedAt:
			values[i] = new(sql.NullTime)
		case inboxitem.FieldID, inboxitem.FieldFileID, inboxitem.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InboxItem fields.
func (_m *InboxItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inboxitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inboxitem.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case inboxitem.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case inboxitem.FieldUploadedImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_image", values[i])
			} else if value.Valid {
				_m.UploadedImage = value.String
			}
		case inboxitem.FieldUploadDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field upload_date", values[i])
			} else if value.Valid {
				_m.UploadDate = value.Time
			}
		case inboxitem.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case inboxitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case inboxitem.FieldOcrResults:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_results", values[i])
			} else if value.Valid {
				_m.OcrResults = new(string)
				*_m.OcrResults = value.String
			}
		case inboxitem.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case inboxitem.FieldLinkedEntityID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field linked_entity_id", values[i])
			} else if value.Valid {
				_m.LinkedEntityID = new(uuid.UUID)
				*_m.LinkedEntityID = *value.S.(*uuid.UUID)
			}
		case inboxitem.FieldLinkedEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linked_entity_type", values[i])
			} else if value.Valid {
				_m.LinkedEntityType = new(string)
				*_m.LinkedEntityType = value.String
			}
		case inboxitem.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = new(string)
				*_m.RejectionReason = value.String
			}
		case inboxitem.FieldRejectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_at", values[i])
			} else if value.Valid {
				_m.RejectedAt = new(time.Time)
				*_m.RejectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InboxItem.
// This includes values selected through modifiers, order, etc.
func (_m *InboxItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the InboxItem entity.
func (_m *InboxItem) QueryFile() *IncomingFileQuery {
	return NewInboxItemClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this InboxItem.
// Note that you need to call InboxItem.Unwrap() before calling this method if this InboxItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InboxItem) Update() *InboxItemUpdateOne {
	return NewInboxItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InboxItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InboxItem) Unwrap() *InboxItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InboxItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InboxItem) String() string {
	var builder strings.Builder
	builder.WriteString("InboxItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("uploaded_image=")
	builder.WriteString(_m.UploadedImage)
	builder.WriteString(", ")
	builder.WriteString("upload_date=")
	builder.WriteString(_m.UploadDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.OcrResults; v != nil {
		builder.WriteString("ocr_results=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LinkedEntityID; v != nil {
		builder.WriteString("linked_entity_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LinkedEntityType; v != nil {
		builder.WriteString("linked_entity_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RejectionReason; v != nil {
		builder.WriteString("rejection_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RejectedAt; v != nil {
		builder.WriteString("rejected_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// InboxItems is a parsable slice of InboxItem.
type InboxItems []*InboxItem
