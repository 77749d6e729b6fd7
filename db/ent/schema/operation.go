package schema

import (
	"encoding/json"
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

type Operation struct{ ent.Schema }

func (Operation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "operation"},
	}
}

// Operations reference their run by id only: they are weakly associated,
// not owned, so run deletion does not cascade here.
func (Operation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("kind").
			Validate(utils.EnumValidator(constants.OperationKinds...)),
		field.UUID("run_id", uuid.UUID{}),
		field.String("state").Default(string(constants.OperationAccepted)).
			Validate(utils.EnumValidator(constants.OperationStates...)),
		field.Int("total").Default(0).NonNegative(),
		field.Int("completed").Default(0).NonNegative(),
		field.Int("failed").Default(0).NonNegative(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Operation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "state"),
		index.Fields("kind", "created_at"),
	}
}
