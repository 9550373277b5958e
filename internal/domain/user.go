package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that leaves feedback on events.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// UserUpdateParams holds the mutable fields of a user.
type UserUpdateParams struct {
	Email string
	Name  string
}
