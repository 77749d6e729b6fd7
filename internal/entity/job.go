package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a user-level extraction container for data transfer between layers.
type Job struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
