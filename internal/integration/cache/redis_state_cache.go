// Package cache implements the local state snapshot cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// stateKeyPrefix namespaces snapshot keys; one key per user.
const stateKeyPrefix = "habit_tracker:state:"

// redisStateCache implements adapter.StateCache on a Redis client. Snapshots
// are whole-tree JSON documents with no expiry: the cache is a durable local
// mirror, not a hot-path accelerator.
type redisStateCache struct {
	client *redis.Client
}

// NewRedisStateCache creates a new Redis-backed state cache.
func NewRedisStateCache(client *redis.Client) adapter.StateCache {
	return &redisStateCache{
		client: client,
	}
}

func stateKey(userID uuid.UUID) string {
	return stateKeyPrefix + userID.String()
}

// Load reads the user's snapshot. A missing key and a corrupt document both
// report a cache miss; callers seed the default state instead of failing.
func (c *redisStateCache) Load(ctx context.Context, userID uuid.UUID) (*entity.StateTree, error) {
	raw, err := c.client.Get(ctx, stateKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	var tree entity.StateTree
	if err := json.Unmarshal(raw, &tree); err != nil {
		slog.Warn("Discarding corrupt state snapshot", "user_id", userID, "error", err)
		return nil, domainerror.ErrCacheMiss
	}
	return &tree, nil
}

// Save rewrites the user's snapshot with the full tree.
func (c *redisStateCache) Save(ctx context.Context, userID uuid.UUID, tree *entity.StateTree) error {
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to serialize state snapshot: %w", err)
	}

	if err := c.client.Set(ctx, stateKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state snapshot: %w", err)
	}
	return nil
}
