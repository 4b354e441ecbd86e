package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareProfile is a user-scoped public-sharing record: a random token that
// grants read-only access to the user's year data while enabled.
type ShareProfile struct {
	UserID     uuid.UUID
	ShareToken string
	IsEnabled  bool
	UpdatedAt  time.Time
}

// NewShareProfile creates an enabled share profile with the given token.
func NewShareProfile(userID uuid.UUID, token string) *ShareProfile {
	return &ShareProfile{
		UserID:     userID,
		ShareToken: token,
		IsEnabled:  true,
		UpdatedAt:  time.Now().UTC(),
	}
}
