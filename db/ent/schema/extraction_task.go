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

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/db/ent/schema/utils"
)

type ExtractionTask struct{ ent.Schema }

func (ExtractionTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_task"},
	}
}

func (ExtractionTask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("run_id", uuid.UUID{}),
		field.String("folder").Default(""),
		field.String("mode").
			Validate(utils.EnumValidator(constants.ProcessingModes...)),
		field.JSON("file_ids", []uuid.UUID{}).Optional(),
		field.String("status").Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses...)),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_kind").Optional(),
		field.String("error_message").Optional(),
		field.Bool("carried_over").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExtractionTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", JobRun.Type).
			Ref("tasks").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (ExtractionTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status"),
		index.Fields("run_id", "folder", "mode"),
	}
}
