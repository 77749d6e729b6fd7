package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
)

// Operation is a pollable handle for an async unit of work (an import batch,
// an export). It references its run by id, it is not owned by it.
type Operation struct {
	ID           uuid.UUID                `json:"id"`
	Kind         constants.OperationKind  `json:"kind"`
	RunID        uuid.UUID                `json:"run_id"`
	State        constants.OperationState `json:"state"`
	Total        int                      `json:"total"`
	Completed    int                      `json:"completed"`
	Failed       int                      `json:"failed"`
	Result       json.RawMessage          `json:"result,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// Progress returns a 0-100 value derived from the operation counters.
func (o *Operation) Progress() int {
	if constants.IsTerminalOperationState(o.State) {
		return 100
	}
	if o.Total <= 0 {
		return 0
	}
	p := (o.Completed + o.Failed) * 100 / o.Total
	if p > 100 {
		p = 100
	}
	return p
}
