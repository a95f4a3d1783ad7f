package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the account-level identity of a guardian or parent.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
