package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/db/ent/schema/utils"
)

type InboxItem struct{ ent.Schema }

func (InboxItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inbox_items"},
	}
}

func (InboxItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so the repository can filter without loading edges
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}),
		field.String("uploaded_image").NotEmpty(),
		field.Time("upload_date").Default(time.Now),
		field.String("state").
			Default(string(constants.InboxStateCreated)).
			Validate(utils.EnumValidator(constants.AllInboxStates...)),
		field.String("status").Default("NEW"),
		field.String("ocr_results").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("failure_reason").Optional().Nillable(),
		field.UUID("linked_entity_id", uuid.UUID{}).Optional().Nillable(),
		field.String("linked_entity_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.AllLinkedEntityTypes...)),
		field.String("rejection_reason").Optional().Nillable(),
		field.Time("rejected_at").Optional().Nillable(),
	}
}

func (InboxItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", IncomingFile.Type).
			Ref("inbox_items").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (InboxItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "state"),
		index.Fields("user_id", "status"),
		index.Fields("file_id"),
	}
}
