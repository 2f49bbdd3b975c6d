package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a portal account. The authenticated user is the actor
// recorded as change_made_by on every history entry.
type User struct {
	ID uuid.UUID

	Username       string
	Email          string
	PasswordHashed string

	FirstName *string
	LastName  *string

	IsAdmin  bool
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
