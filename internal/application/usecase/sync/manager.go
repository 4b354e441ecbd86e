package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Manager constructs and caches one Session per authenticated user. Session
// establishment seeds the tree from the local snapshot cache (falling back
// to the default seeded state when the snapshot is absent or corrupt) and
// then kicks off a full reconciliation against the remote store.
type Manager struct {
	habitRepo adapter.HabitRepository
	entryRepo adapter.EntryRepository
	cache     adapter.StateCache
	clock     adapter.Clock
	status    *StatusTracker

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a session manager.
func NewManager(
	habitRepo adapter.HabitRepository,
	entryRepo adapter.EntryRepository,
	cache adapter.StateCache,
	clock adapter.Clock,
	status *StatusTracker,
) *Manager {
	return &Manager{
		habitRepo: habitRepo,
		entryRepo: entryRepo,
		cache:     cache,
		clock:     clock,
		status:    status,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Session returns the user's session, establishing it on first use.
func (m *Manager) Session(ctx context.Context, userID uuid.UUID) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s
	}

	s := &Session{
		userID:    userID,
		habitRepo: m.habitRepo,
		entryRepo: m.entryRepo,
		cache:     m.cache,
		clock:     m.clock,
		status:    m.status,
		tree:      m.seedTree(ctx, userID),
	}
	m.sessions[userID] = s
	m.mu.Unlock()

	// Session establishment triggers a full reload for the active scope.
	go func() {
		if err := s.Reload(context.Background()); err != nil {
			slog.Warn("Initial reconciliation failed", "user_id", userID, "error", err)
		}
	}()

	return s
}

// seedTree loads the cached snapshot, or the default seeded state when no
// usable snapshot exists.
func (m *Manager) seedTree(ctx context.Context, userID uuid.UUID) *entity.StateTree {
	now := m.clock.Now()

	tree, err := m.cache.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrCacheMiss) {
			slog.Warn("Discarding unusable state snapshot", "user_id", userID, "error", err)
		}
		return entity.DefaultStateTree(userID, now.Year())
	}
	return tree.Normalize(now)
}
