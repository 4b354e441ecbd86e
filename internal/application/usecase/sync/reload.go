package sync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// Reload discards the in-memory habits and entries for the active scope and
// replaces them with a fresh fetch for (user, selected year). A fetch
// failure leaves the stale tree in place and surfaces the error — never an
// empty board on a flaky network. Each reload carries a generation number;
// when the scope changes again before a fetch completes, the stale result
// is discarded on arrival rather than applied.
func (s *Session) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.reloadGen++
	gen := s.reloadGen
	year := s.tree.UI.SelectedYear
	s.mu.Unlock()

	s.status.SetLoading(s.userID)

	habits, err := s.habitRepo.FindByUserID(ctx, s.userID)
	if err != nil {
		return s.reloadFailed(err)
	}

	records, err := s.entryRepo.FindByUserAndYear(ctx, s.userID, year)
	if err != nil {
		return s.reloadFailed(err)
	}

	store := storeFromRecords(records)

	s.mu.Lock()
	if gen != s.reloadGen {
		// A newer reload superseded this fetch; drop the result.
		s.mu.Unlock()
		slog.Info("Discarding superseded reload", "user_id", s.userID, "year", year)
		return nil
	}
	next := &entity.StateTree{
		Habits:  habits,
		Entries: store,
		UI:      s.tree.UI,
	}
	next.Normalize(s.clock.Now())
	s.tree = next
	if err := s.cache.Save(ctx, s.userID, next); err != nil {
		slog.Warn("Failed to write state snapshot", "user_id", s.userID, "error", err)
	}
	s.mu.Unlock()

	s.status.SetSynced(s.userID)
	return nil
}

func (s *Session) reloadFailed(err error) error {
	s.status.SetFailed(s.userID, "Failed to load remote data")
	return domainerror.NewSyncError(
		domainerror.ErrCodeReloadFailed,
		"failed to reload remote state",
		err,
	)
}

// ChangeYear switches the selected year optimistically and triggers a
// reconciliation for the new scope in the background.
func (s *Session) ChangeYear(ctx context.Context, year int) (*entity.StateTree, error) {
	tree, err := s.mutate(ctx, func(t *entity.StateTree) error {
		t.UI.SelectedYear = year
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.Reload(context.Background()); err != nil {
			slog.Warn("Year reload failed", "user_id", s.userID, "year", year, "error", err)
		}
	}()

	return tree, nil
}

func storeFromRecords(records []adapter.EntryRecord) entity.EntryStore {
	store := make(entity.EntryStore, len(records))
	for _, r := range records {
		day, ok := store[r.DateISO]
		if !ok {
			day = make(map[uuid.UUID]entity.Entry)
			store[r.DateISO] = day
		}
		day[r.HabitID] = r.Entry
	}
	return store
}
