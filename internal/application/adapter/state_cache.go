package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// StateCache is the local durable cache: one serialized state tree per user
// under a fixed key, read at startup and rewritten after every state change.
// Load returns domain ErrCacheMiss when no usable snapshot exists; callers
// fall back to the default seeded state rather than failing.
type StateCache interface {
	Load(ctx context.Context, userID uuid.UUID) (*entity.StateTree, error)
	Save(ctx context.Context, userID uuid.UUID, tree *entity.StateTree) error
}
