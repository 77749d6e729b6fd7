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

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/db/ent/schema/utils"
)

type SourceFile struct{ ent.Schema }

func (SourceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_files"},
	}
}

func (SourceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("run_id", uuid.UUID{}),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").Optional(),
		field.Int64("file_size").NonNegative().Default(0),
		field.Bytes("content_hash").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("status").Default(string(constants.FileStatusUploading)).
			Validate(utils.EnumValidator(constants.FileStatuses...)),
		field.String("origin").
			Validate(utils.EnumValidator(constants.FileOrigins...)),
		field.UUID("parent_id", uuid.UUID{}).Optional().Nillable(),
		field.String("error_message").Optional(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SourceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE run
		edge.From("run", JobRun.Type).
			Ref("files").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (SourceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status"),
		index.Fields("run_id", "content_hash"),
		index.Fields("parent_id"),
	}
}
