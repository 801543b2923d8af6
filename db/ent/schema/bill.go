package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/db/ent/schema/utils"
)

type Bill struct{ ent.Schema }

func (Bill) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bills"},
	}
}

func (Bill) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("service_provider_id", uuid.UUID{}),
		field.Time("date"),
		field.Float("amount").Positive(),
		field.String("description").Default(""),
		// provenance: nil means manually created
		field.UUID("inbox_item_id", uuid.UUID{}).Optional().Nillable(),
		field.String("state").
			Default(string(constants.LedgerStateCreated)).
			Validate(utils.EnumValidator(constants.AllLedgerStates...)),
		field.Time("created_date").Default(time.Now),
	}
}

func (Bill) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("service_provider", ServiceProvider.Type).
			Ref("bills").
			Field("service_provider_id").
			Unique().
			Required(),
	}
}

func (Bill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "state", "date"),
		index.Fields("service_provider_id"),
		index.Fields("inbox_item_id"),
	}
}
