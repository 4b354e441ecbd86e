package sync

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// MoveHabit applies one positional gesture event: the dragged habit is
// spliced out and reinserted at the target habit's position. The change is
// local only — repeated moves give the live reorder preview; CommitOrder
// performs the terminal batch persistence.
func (s *Session) MoveHabit(ctx context.Context, fromID, toID uuid.UUID) error {
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		next := habit.MoveHabit(t.Habits, fromID, toID)
		if next == nil {
			return nil // no-op move; keep the tree unchanged
		}
		t.Habits = next
		return nil
	})
	return err
}

// CommitOrder assigns SortIndex = position to every habit, regardless of
// whether that value changed, and upserts the full batch keyed by habit id.
// No version check guards the batch: the last writer for the full set wins.
func (s *Session) CommitOrder(ctx context.Context) error {
	var updates []adapter.SortIndexUpdate
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		if len(t.Habits) == 0 {
			return domainerror.NewHabitError(
				domainerror.ErrCodeEmptyReorder,
				"reorder requires at least one habit",
				domainerror.ErrEmptyReorder,
			)
		}
		habit.AssignSortIndexes(t.Habits)
		updates = make([]adapter.SortIndexUpdate, len(t.Habits))
		for i, h := range t.Habits {
			updates[i] = adapter.SortIndexUpdate{HabitID: h.ID, SortIndex: i}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.remote("save order", func(ctx context.Context) error {
		return s.habitRepo.UpdateSortIndexes(ctx, s.userID, updates)
	})

	return nil
}

// SetOrder rearranges the habit list to match an explicit ordered id list
// and commits. Unknown ids fail the whole batch; habits missing from the
// list keep their relative order after the listed ones.
func (s *Session) SetOrder(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return domainerror.NewHabitError(
			domainerror.ErrCodeEmptyReorder,
			"reorder requires at least one habit",
			domainerror.ErrEmptyReorder,
		)
	}

	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		byID := make(map[uuid.UUID]*entity.Habit, len(t.Habits))
		for _, h := range t.Habits {
			byID[h.ID] = h
		}

		next := make([]*entity.Habit, 0, len(t.Habits))
		listed := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			h, ok := byID[id]
			if !ok {
				return domainerror.NewHabitError(
					domainerror.ErrCodeHabitNotFound,
					"habit not found: "+id.String(),
					domainerror.ErrHabitNotFound,
				)
			}
			if listed[id] {
				continue
			}
			listed[id] = true
			next = append(next, h)
		}
		for _, h := range t.Habits {
			if !listed[h.ID] {
				next = append(next, h)
			}
		}

		t.Habits = next
		return nil
	})
	if err != nil {
		return err
	}

	return s.CommitOrder(ctx)
}

// Reorder resolves a single drop gesture: move then commit.
func (s *Session) Reorder(ctx context.Context, fromID, toID uuid.UUID) error {
	if err := s.MoveHabit(ctx, fromID, toID); err != nil {
		return err
	}
	return s.CommitOrder(ctx)
}
