// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docledger/docledger/gen/ent/serviceprovider"
	"github.com/google/uuid"
)

// ServiceProvider is the model entity for the ServiceProvider schema.
type ServiceProvider struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Avatar holds the value of the "avatar" field.
	Avatar *string `json:"avatar,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// CommentForOcr holds the value of the "comment_for_ocr" field.
	CommentForOcr string `json:"comment_for_ocr,omitempty"`
	// Regular holds the value of the "regular" field.
	Regular string `json:"regular,omitempty"`
	// CustomFields holds the value of the "custom_fields" field.
	CustomFields json.RawMessage `json:"custom_fields,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// CreatedDate holds the value of the "created_date" field.
	CreatedDate time.Time `json:"created_date,omitempty"`
	// ModifiedDate holds the value of the "modified_date" field.
	ModifiedDate time.Time `json:"modified_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ServiceProviderQuery when eager-loading is set.
	Edges        ServiceProviderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ServiceProviderEdges holds the relations/edges for other nodes in the graph.
type ServiceProviderEdges struct {
	// Bills holds the value of the bills edge.
	Bills []*Bill `json:"bills,omitempty"`
	// Receipts holds the value of the receipts edge.
	Receipts []*Receipt `json:"receipts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BillsOrErr returns the Bills value or an error if the edge
// was not loaded in eager-loading.
func (e ServiceProviderEdges) BillsOrErr() ([]*Bill, error) {
	if e.loadedTypes[0] {
		return e.Bills, nil
	}
	return nil, &NotLoadedError{edge: "bills"}
}

// ReceiptsOrErr returns the Receipts value or an error if the edge
// was not loaded in eager-loading.
func (e ServiceProviderEdges) ReceiptsOrErr() ([]*Receipt, error) {
	if e.loadedTypes[1] {
		return e.Receipts, nil
	}
	return nil, &NotLoadedError{edge: "receipts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ServiceProvider) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case serviceprovider.FieldCustomFields:
			values[i] = new([]byte)
		case serviceprovider.FieldName, serviceprovider.FieldAvatar, serviceprovider.FieldComment, serviceprovider.FieldCommentForOcr, serviceprovider.FieldRegular, serviceprovider.FieldState:
			values[i] = new(sql.NullString)
		case serviceprovider.FieldCreatedDate, serviceprovider.FieldModifiedDate:
			values[i] = new(sql.NullTime)
		case serviceprovider.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ServiceProvider fields.
func (_m *ServiceProvider) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case serviceprovider.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case serviceprovider.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case serviceprovider.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = new(string)
				*_m.Avatar = value.String
			}
		case serviceprovider.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case serviceprovider.FieldCommentForOcr:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment_for_ocr", values[i])
			} else if value.Valid {
				_m.CommentForOcr = value.String
			}
		case serviceprovider.FieldRegular:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regular", values[i])
			} else if value.Valid {
				_m.Regular = value.String
			}
		case serviceprovider.FieldCustomFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomFields); err != nil {
					return fmt.Errorf("unmarshal field custom_fields: %w", err)
				}
			}
		case serviceprovider.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case serviceprovider.FieldCreatedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_date", values[i])
			} else if value.Valid {
				_m.CreatedDate = value.Time
			}
		case serviceprovider.FieldModifiedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field modified_date", values[i])
			} else if value.Valid {
				_m.ModifiedDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ServiceProvider.
// This includes values selected through modifiers, order, etc.
func (_m *ServiceProvider) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBills queries the "bills" edge of the ServiceProvider entity.
func (_m *ServiceProvider) QueryBills() *BillQuery {
	return NewServiceProviderClient(_m.config).QueryBills(_m)
}

// QueryReceipts queries the "receipts" edge of the ServiceProvider entity.
func (_m *ServiceProvider) QueryReceipts() *ReceiptQuery {
	return NewServiceProviderClient(_m.config).QueryReceipts(_m)
}

// Update returns a builder for updating this ServiceProvider.
// Note that you need to call ServiceProvider.Unwrap() before calling this method if this ServiceProvider
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ServiceProvider) Update() *ServiceProviderUpdateOne {
	return NewServiceProviderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ServiceProvider entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ServiceProvider) Unwrap() *ServiceProvider {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ServiceProvider is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ServiceProvider) String() string {
	var builder strings.Builder
	builder.WriteString("ServiceProvider(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Avatar; v != nil {
		builder.WriteString("avatar=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("comment_for_ocr=")
	builder.WriteString(_m.CommentForOcr)
	builder.WriteString(", ")
	builder.WriteString("regular=")
	builder.WriteString(_m.Regular)
	builder.WriteString(", ")
	builder.WriteString("custom_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomFields))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("created_date=")
	builder.WriteString(_m.CreatedDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("modified_date=")
	builder.WriteString(_m.ModifiedDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ServiceProviders is a parsable slice of ServiceProvider.
type ServiceProviders []*ServiceProvider
