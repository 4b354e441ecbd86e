package sync

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// Session owns one user's state tree. All mutation entry points run to
// completion against the current snapshot under the session lock, so
// readers never observe a torn tree: mutations clone the tree, apply the
// change, and swap the pointer. A swapped-in tree is never modified again,
// which lets Snapshot hand out the live pointer as a read-only reference.
type Session struct {
	userID uuid.UUID

	habitRepo adapter.HabitRepository
	entryRepo adapter.EntryRepository
	cache     adapter.StateCache
	clock     adapter.Clock
	status    *StatusTracker

	mu        sync.RWMutex
	tree      *entity.StateTree
	reloadGen uint64
}

// Snapshot returns the current state tree. Callers treat it as read-only;
// statistics and series computations never mutate it.
func (s *Session) Snapshot() *entity.StateTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// SelectedYear returns the active year scope.
func (s *Session) SelectedYear() int {
	return s.Snapshot().UI.SelectedYear
}

// Status returns the sync status side-channel for this session's user.
func (s *Session) Status() valueobject.SyncStatus {
	return s.status.Get(s.userID)
}

// UserID returns the owning user's id.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// mutate clones the current tree, applies fn to the clone, swaps it in, and
// rewrites the local snapshot cache. The cache write happens under the lock
// so the durable snapshot always reflects the latest swapped tree. A cache
// failure is logged, not surfaced: the in-memory change already succeeded.
func (s *Session) mutate(ctx context.Context, fn func(tree *entity.StateTree) error) (*entity.StateTree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.tree.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.tree = next

	if err := s.cache.Save(ctx, s.userID, next); err != nil {
		slog.Warn("Failed to write state snapshot", "user_id", s.userID, "error", err)
	}
	return next, nil
}

// remote runs a remote write asynchronously. Completion only updates the
// status indicator; the optimistic local change is kept on failure. Writes
// are not queued or serialized against each other — overlapping operations
// race and the last writer wins.
func (s *Session) remote(operation string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			slog.Error("Remote write failed", "operation", operation, "user_id", s.userID, "error", err)
			s.status.SetFailed(s.userID, "Failed to "+operation)
			return
		}
		s.status.SetSynced(s.userID)
	}()
}
