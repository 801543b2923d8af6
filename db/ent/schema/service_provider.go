package schema

import (
	"encoding/json"
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

type ServiceProvider struct{ ent.Schema }

func (ServiceProvider) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "service_providers"},
	}
}

func (ServiceProvider) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("avatar").Optional().Nillable(),
		field.String("comment").Default(""),
		field.String("comment_for_ocr").Default(""),
		field.String("regular").
			Default(string(constants.RecurrenceNotRegular)).
			Validate(utils.EnumValidator(constants.AllRecurrences...)),
		field.JSON("custom_fields", json.RawMessage{}).Optional(),
		field.String("state").
			Default(string(constants.ProviderStateActive)).
			Validate(utils.EnumValidator(constants.AllProviderStates...)),
		field.Time("created_date").Default(time.Now),
		field.Time("modified_date").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ServiceProvider) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("bills", Bill.Type),
		edge.To("receipts", Receipt.Type),
	}
}

func (ServiceProvider) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("name"),
	}
}
