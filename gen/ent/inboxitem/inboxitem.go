// Code generated by ent, DO NOT EDIT.

package inboxitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the inboxitem type in the database.
	Label = "inbox_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUploadedImage holds the string denoting the uploaded_image field in the database.
	FieldUploadedImage = "uploaded_image"
	// FieldUploadDate holds the string denoting the upload_date field in the database.
	FieldUploadDate = "upload_date"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOcrResults holds the string denoting the ocr_results field in the database.
	FieldOcrResults = "ocr_results"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldLinkedEntityID holds the string denoting the linked_entity_id field in the database.
	FieldLinkedEntityID = "linked_entity_id"
	// FieldLinkedEntityType holds the string denoting the linked_entity_type field in the database.
	FieldLinkedEntityType = "linked_entity_type"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldRejectedAt holds the string denoting the rejected_at field in the database.
	FieldRejectedAt = "rejected_at"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// Table holds the table name of the inboxitem in the database.
	Table = "inbox_items"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "inbox_items"
	// FileInverseTable is the table name for the IncomingFile entity.
	// It exists in this package in order to avoid circular dependency with the "incomingfile" package.
	FileInverseTable = "incoming_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
)

// Columns holds all SQL columns for inboxitem fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldUserID,
	FieldUploadedImage,
	FieldUploadDate,
	FieldState,
	FieldStatus,
	FieldOcrResults,
	FieldFailureReason,
	FieldLinkedEntityID,
	FieldLinkedEntityType,
	FieldRejectionReason,
	FieldRejectedAt,
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
	// UploadedImageValidator is a validator for the "uploaded_image" field. It is called by the builders before save.
	UploadedImageValidator func(string) error
	// DefaultUploadDate holds the default value on creation for the "upload_date" field.
	DefaultUploadDate func() time.Time
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// LinkedEntityTypeValidator is a validator for the "linked_entity_type" field. It is called by the builders before save.
	LinkedEntityTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InboxItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUploadedImage orders the results by the uploaded_image field.
func ByUploadedImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedImage, opts...).ToFunc()
}

// ByUploadDate orders the results by the upload_date field.
func ByUploadDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadDate, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOcrResults orders the results by the ocr_results field.
func ByOcrResults(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrResults, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByLinkedEntityID orders the results by the linked_entity_id field.
func ByLinkedEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedEntityID, opts...).ToFunc()
}

// ByLinkedEntityType orders the results by the linked_entity_type field.
func ByLinkedEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedEntityType, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByRejectedAt orders the results by the rejected_at field.
func ByRejectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedAt, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
