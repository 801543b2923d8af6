// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldServiceProviderID holds the string denoting the service_provider_id field in the database.
	FieldServiceProviderID = "service_provider_id"
	// FieldPaymentTypeID holds the string denoting the payment_type_id field in the database.
	FieldPaymentTypeID = "payment_type_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldInboxItemID holds the string denoting the inbox_item_id field in the database.
	FieldInboxItemID = "inbox_item_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedDate holds the string denoting the created_date field in the database.
	FieldCreatedDate = "created_date"
	// EdgeServiceProvider holds the string denoting the service_provider edge name in mutations.
	EdgeServiceProvider = "service_provider"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
	// ServiceProviderTable is the table that holds the service_provider relation/edge.
	ServiceProviderTable = "receipts"
	// ServiceProviderInverseTable is the table name for the ServiceProvider entity.
	// It exists in this package in order to avoid circular dependency with the "serviceprovider" package.
	ServiceProviderInverseTable = "service_providers"
	// ServiceProviderColumn is the table column denoting the service_provider relation/edge.
	ServiceProviderColumn = "service_provider_id"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldServiceProviderID,
	FieldPaymentTypeID,
	FieldDate,
	FieldAmount,
	FieldDescription,
	FieldInboxItemID,
	FieldState,
	FieldCreatedDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	AmountValidator func(float64) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultCreatedDate holds the default value on creation for the "created_date" field.
	DefaultCreatedDate func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByServiceProviderID orders the results by the service_provider_id field.
func ByServiceProviderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceProviderID, opts...).ToFunc()
}

// ByPaymentTypeID orders the results by the payment_type_id field.
func ByPaymentTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentTypeID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByInboxItemID orders the results by the inbox_item_id field.
func ByInboxItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInboxItemID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedDate orders the results by the created_date field.
func ByCreatedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedDate, opts...).ToFunc()
}

// ByServiceProviderField orders the results by service_provider field.
func ByServiceProviderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newServiceProviderStep(), sql.OrderByField(field, opts...))
	}
}
func newServiceProviderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ServiceProviderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ServiceProviderTable, ServiceProviderColumn),
	)
}
