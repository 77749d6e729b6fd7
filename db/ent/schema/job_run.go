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

type JobRun struct{ ent.Schema }

func (JobRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_run"},
	}
}

func (JobRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("status").Default(string(constants.RunStatusPending)).
			Validate(utils.EnumValidator(constants.RunStatuses...)),
		field.String("config_step").Default(string(constants.ConfigStepUpload)).
			Validate(utils.EnumValidator(constants.ConfigSteps...)),
		// optimistic-concurrency guard; bumped on every mutation
		field.Int32("version").Default(1),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.JSON("task_defs", json.RawMessage{}).Optional(),
		field.String("fields_checksum").Optional(),
		field.UUID("cloned_from_id", uuid.UUID{}).Optional().Nillable(),
		field.Int32("tasks_total").Default(0).NonNegative(),
		field.Int32("tasks_completed").Default(0).NonNegative(),
		field.Int32("tasks_failed").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (JobRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("runs").
			Field("job_id").
			Unique().
			Required(),
		edge.To("files", SourceFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", ExtractionTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (JobRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "config_step"),
		index.Fields("job_id", "status"),
	}
}
