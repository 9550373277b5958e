package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is something feedback is collected about.
type Event struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// EventUpdateParams holds the mutable fields of an event.
type EventUpdateParams struct {
	Name        string
	Description string
}
