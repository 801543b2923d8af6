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
)

type IncomingFile struct {
	ent.Schema
}

func (IncomingFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "incoming_files"},
	}
}

func (IncomingFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		// hex-encoded content hash
		field.String("checksum").NotEmpty(),
		// stored as a string so the legacy-consolidation read path keeps
		// working on historical values
		field.String("status").Default("NEW"),
		field.Time("upload_date").Default(time.Now),
	}
}

func (IncomingFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY inbox items (in practice one, retries reuse it)
		edge.To("inbox_items", InboxItem.Type),
	}
}

func (IncomingFile) Indexes() []ent.Index {
	return []ent.Index{
		// duplicate detection: check-and-insert races resolve here
		index.Fields("user_id", "checksum").Unique(),
		index.Fields("user_id", "upload_date"),
	}
}
