package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/db/ent/schema/utils"
)

type Export struct{ ent.Schema }

func (Export) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "export"},
	}
}

func (Export) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.UUID("operation_id", uuid.UUID{}),
		field.String("destination").
			Validate(utils.EnumValidator(constants.ExportDestinations...)),
		field.String("file_kind").
			Validate(utils.EnumValidator(constants.ExportFileKinds...)),
		field.String("state").Default(string(constants.OperationAccepted)).
			Validate(utils.EnumValidator(constants.OperationStates...)),
		field.String("artifact_path").Optional(),
		field.String("external_ref").Optional(),
		field.String("error_message").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Export) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("operation_id"),
	}
}
