// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BillsColumns holds the columns for the "bills" table.
	BillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "inbox_item_id", Type: field.TypeUUID, Nullable: true},
		{Name: "state", Type: field.TypeString, Default: "CREATED"},
		{Name: "created_date", Type: field.TypeTime},
		{Name: "service_provider_id", Type: field.TypeUUID},
	}
	// BillsTable holds the schema information for the "bills" table.
	BillsTable = &schema.Table{
		Name:       "bills",
		Columns:    BillsColumns,
		PrimaryKey: []*schema.Column{BillsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bills_service_providers_bills",
				Columns:    []*schema.Column{BillsColumns[8]},
				RefColumns: []*schema.Column{ServiceProvidersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bill_user_id_state_date",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[1], BillsColumns[6], BillsColumns[2]},
			},
			{
				Name:    "bill_service_provider_id",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[8]},
			},
			{
				Name:    "bill_inbox_item_id",
				Unique:  false,
				Columns: []*schema.Column{BillsColumns[5]},
			},
		},
	}
	// InboxItemsColumns holds the columns for the "inbox_items" table.
	InboxItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "uploaded_image", Type: field.TypeString},
		{Name: "upload_date", Type: field.TypeTime},
		{Name: "state", Type: field.TypeString, Default: "CREATED"},
		{Name: "status", Type: field.TypeString, Default: "NEW"},
		{Name: "ocr_results", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "linked_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "linked_entity_type", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "rejected_at", Type: field.TypeTime, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// InboxItemsTable holds the schema information for the "inbox_items" table.
	InboxItemsTable = &schema.Table{
		Name:       "inbox_items",
		Columns:    InboxItemsColumns,
		PrimaryKey: []*schema.Column{InboxItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inbox_items_incoming_files_inbox_items",
				Columns:    []*schema.Column{InboxItemsColumns[12]},
				RefColumns: []*schema.Column{IncomingFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inboxitem_user_id_state",
				Unique:  false,
				Columns: []*schema.Column{InboxItemsColumns[1], InboxItemsColumns[4]},
			},
			{
				Name:    "inboxitem_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{InboxItemsColumns[1], InboxItemsColumns[5]},
			},
			{
				Name:    "inboxitem_file_id",
				Unique:  false,
				Columns: []*schema.Column{InboxItemsColumns[12]},
			},
		},
	}
	// IncomingFilesColumns holds the columns for the "incoming_files" table.
	IncomingFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "checksum", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "NEW"},
		{Name: "upload_date", Type: field.TypeTime},
	}
	// IncomingFilesTable holds the schema information for the "incoming_files" table.
	IncomingFilesTable = &schema.Table{
		Name:       "incoming_files",
		Columns:    IncomingFilesColumns,
		PrimaryKey: []*schema.Column{IncomingFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "incomingfile_user_id_checksum",
				Unique:  true,
				Columns: []*schema.Column{IncomingFilesColumns[1], IncomingFilesColumns[6]},
			},
			{
				Name:    "incomingfile_user_id_upload_date",
				Unique:  false,
				Columns: []*schema.Column{IncomingFilesColumns[1], IncomingFilesColumns[8]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "payment_type_id", Type: field.TypeUUID, Nullable: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "inbox_item_id", Type: field.TypeUUID, Nullable: true},
		{Name: "state", Type: field.TypeString, Default: "CREATED"},
		{Name: "created_date", Type: field.TypeTime},
		{Name: "service_provider_id", Type: field.TypeUUID},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_service_providers_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[9]},
				RefColumns: []*schema.Column{ServiceProvidersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_user_id_state_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[7], ReceiptsColumns[3]},
			},
			{
				Name:    "receipt_service_provider_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[9]},
			},
			{
				Name:    "receipt_inbox_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[6]},
			},
		},
	}
	// ServiceProvidersColumns holds the columns for the "service_providers" table.
	ServiceProvidersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "avatar", Type: field.TypeString, Nullable: true},
		{Name: "comment", Type: field.TypeString, Default: ""},
		{Name: "comment_for_ocr", Type: field.TypeString, Default: ""},
		{Name: "regular", Type: field.TypeString, Default: "NOT_REGULAR"},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "state", Type: field.TypeString, Default: "ACTIVE"},
		{Name: "created_date", Type: field.TypeTime},
		{Name: "modified_date", Type: field.TypeTime},
	}
	// ServiceProvidersTable holds the schema information for the "service_providers" table.
	ServiceProvidersTable = &schema.Table{
		Name:       "service_providers",
		Columns:    ServiceProvidersColumns,
		PrimaryKey: []*schema.Column{ServiceProvidersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "serviceprovider_state",
				Unique:  false,
				Columns: []*schema.Column{ServiceProvidersColumns[7]},
			},
			{
				Name:    "serviceprovider_name",
				Unique:  false,
				Columns: []*schema.Column{ServiceProvidersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BillsTable,
		InboxItemsTable,
		IncomingFilesTable,
		ReceiptsTable,
		ServiceProvidersTable,
	}
)

func init() {
	BillsTable.ForeignKeys[0].RefTable = ServiceProvidersTable
	BillsTable.Annotation = &entsql.Annotation{
		Table: "bills",
	}
	InboxItemsTable.ForeignKeys[0].RefTable = IncomingFilesTable
	InboxItemsTable.Annotation = &entsql.Annotation{
		Table: "inbox_items",
	}
	IncomingFilesTable.Annotation = &entsql.Annotation{
		Table: "incoming_files",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = ServiceProvidersTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ServiceProvidersTable.Annotation = &entsql.Annotation{
		Table: "service_providers",
	}
}
