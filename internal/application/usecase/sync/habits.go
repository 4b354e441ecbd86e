package sync

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// AddHabitInput represents the input for habit creation.
type AddHabitInput struct {
	Name  string
	Kind  entity.HabitKind
	Unit  string
	Goals valueobject.Goals
}

// AddHabit appends a habit optimistically and issues the remote insert. The
// new habit takes the next position in the display order.
func (s *Session) AddHabit(ctx context.Context, input AddHabitInput) (*entity.Habit, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameRequired,
			"habit name is required",
			domainerror.ErrHabitNameRequired,
		)
	}
	if !entity.IsValidHabitKind(input.Kind) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitKind,
			"kind must be 'number' or 'checkbox'",
			domainerror.ErrInvalidHabitKind,
		)
	}

	var created *entity.Habit
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		created = entity.NewHabit(s.userID, name, input.Kind, input.Unit, input.Goals, len(t.Habits))
		t.Habits = append(t.Habits, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	row := created.Clone()
	s.remote("add habit", func(ctx context.Context) error {
		return s.habitRepo.Create(ctx, row)
	})

	return created, nil
}

// UpdateHabitInput carries a partial habit patch; nil fields are unchanged.
type UpdateHabitInput struct {
	HabitID  uuid.UUID
	Name     *string
	Unit     *string
	Goals    *valueobject.Goals
	Decimals *int
}

// UpdateHabit merges a patch into the habit optimistically and issues the
// remote update with the merged row.
func (s *Session) UpdateHabit(ctx context.Context, input UpdateHabitInput) (*entity.Habit, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameRequired,
			"habit name is required",
			domainerror.ErrHabitNameRequired,
		)
	}
	if input.Decimals != nil && (*input.Decimals < 0 || *input.Decimals > entity.MaxDecimals) {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidDecimals,
			"decimals must be between 0 and 6",
			domainerror.ErrInvalidDecimals,
		)
	}

	var merged *entity.Habit
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		h := t.FindHabit(input.HabitID)
		if h == nil {
			return domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		if input.Name != nil {
			h.Name = strings.TrimSpace(*input.Name)
		}
		if input.Unit != nil && h.Kind == entity.HabitKindNumber {
			h.Unit = *input.Unit
		}
		if input.Goals != nil {
			h.Goals = input.Goals.Normalized()
		}
		if input.Decimals != nil && h.Kind == entity.HabitKindNumber {
			h.Decimals = *input.Decimals
		}
		h.UpdatedAt = s.clock.Now()
		merged = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	row := merged.Clone()
	s.remote("update habit", func(ctx context.Context) error {
		return s.habitRepo.Update(ctx, row)
	})

	return merged, nil
}

// DeleteHabit removes a habit and every entry referencing it from every
// date, leaving other habits' entries untouched, then issues the remote
// deletes.
func (s *Session) DeleteHabit(ctx context.Context, habitID uuid.UUID) error {
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		found := false
		next := make([]*entity.Habit, 0, len(t.Habits))
		for _, h := range t.Habits {
			if h.ID == habitID {
				found = true
				continue
			}
			next = append(next, h)
		}
		if !found {
			return domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		t.Habits = next
		t.Entries = t.Entries.DeleteHabit(habitID)
		return nil
	})
	if err != nil {
		return err
	}

	s.remote("delete habit", func(ctx context.Context) error {
		if err := s.entryRepo.DeleteByHabit(ctx, s.userID, habitID); err != nil {
			return err
		}
		return s.habitRepo.Delete(ctx, s.userID, habitID)
	})

	return nil
}
