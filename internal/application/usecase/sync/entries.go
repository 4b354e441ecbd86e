package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// LogValueInput represents one logged value. Number habits carry the user's
// literal input in Value so its decimal precision can be measured; checkbox
// habits carry Checked.
type LogValueInput struct {
	DateISO string
	HabitID uuid.UUID
	Value   string
	Checked bool
}

// LogValueOutput reports the optimistic result: the stored entry and the
// habit, whose decimals may have been auto-upgraded.
type LogValueOutput struct {
	Entry entity.Entry
	Habit *entity.Habit
}

func validDateISO(dateISO string) bool {
	_, err := time.Parse("2006-01-02", dateISO)
	return err == nil
}

// decimalPlaces measures the decimal digits present in the user's literal
// input, capped at MaxDecimals. "12.50" counts as 2: the user typed that
// precision, so the habit keeps showing it.
func decimalPlaces(d decimal.Decimal) int {
	places := int(-d.Exponent())
	if places < 0 {
		places = 0
	}
	if places > entity.MaxDecimals {
		places = entity.MaxDecimals
	}
	return places
}

// LogValue inserts or overwrites the entry for (date, habit) optimistically
// and issues the remote upsert. For number habits the decimal precision of
// the literal input is measured; when it exceeds the habit's stored
// decimals the habit is upgraded, both optimistically and as a follow-up
// remote update. Decimals never decrease automatically.
func (s *Session) LogValue(ctx context.Context, input LogValueInput) (*LogValueOutput, error) {
	if !validDateISO(input.DateISO) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDate,
		)
	}

	var (
		stored       entity.Entry
		habit        *entity.Habit
		decUpgraded  bool
		nextDecimals int
	)
	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		h := t.FindHabit(input.HabitID)
		if h == nil {
			return domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}

		switch h.Kind {
		case entity.HabitKindCheckbox:
			stored = entity.Entry{Checked: input.Checked}
		case entity.HabitKindNumber:
			// Negative values are accepted as typed; there is no clamp at
			// the data-entry boundary.
			d, err := decimal.NewFromString(input.Value)
			if err != nil {
				return domainerror.NewEntryError(
					domainerror.ErrCodeInvalidEntryValue,
					"value must be a number",
					domainerror.ErrInvalidEntryValue,
				)
			}
			amount, _ := d.Float64()
			stored = entity.Entry{Amount: amount}

			if detected := decimalPlaces(d); detected > h.Decimals {
				h.Decimals = detected
				decUpgraded = true
				nextDecimals = detected
			}
		}

		t.Entries = t.Entries.Set(input.DateISO, h.ID, stored)
		habit = h
		return nil
	})
	if err != nil {
		return nil, err
	}

	record := adapter.EntryRecord{
		UserID:  s.userID,
		DateISO: input.DateISO,
		HabitID: habit.ID,
		Entry:   stored,
	}
	habitID := habit.ID
	s.remote("save entry", func(ctx context.Context) error {
		if err := s.entryRepo.Upsert(ctx, record); err != nil {
			return err
		}
		if decUpgraded {
			return s.habitRepo.UpdateDecimals(ctx, s.userID, habitID, nextDecimals)
		}
		return nil
	})

	return &LogValueOutput{Entry: stored, Habit: habit}, nil
}

// RemoveLog deletes the entry for (date, habit) optimistically and issues
// the remote delete. Removing the only entry of a day drops the day itself.
func (s *Session) RemoveLog(ctx context.Context, dateISO string, habitID uuid.UUID) error {
	if !validDateISO(dateISO) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDate,
		)
	}

	_, err := s.mutate(ctx, func(t *entity.StateTree) error {
		if _, ok := t.Entries.Get(dateISO, habitID); !ok {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		t.Entries = t.Entries.Delete(dateISO, habitID)
		return nil
	})
	if err != nil {
		return err
	}

	s.remote("remove entry", func(ctx context.Context) error {
		return s.entryRepo.Delete(ctx, s.userID, dateISO, habitID)
	})

	return nil
}
