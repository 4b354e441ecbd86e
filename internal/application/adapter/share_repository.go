package adapter

import (
	"context"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ShareRepository defines the interface for public-sharing records.
type ShareRepository interface {
	// Upsert inserts or replaces the user's share profile, keyed by user id.
	Upsert(ctx context.Context, profile *entity.ShareProfile) error

	// FindByToken retrieves the profile matching a share token.
	FindByToken(ctx context.Context, token string) (*entity.ShareProfile, error)
}
