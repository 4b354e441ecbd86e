package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", iso)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", iso, err)
	}
	return parsed
}

func numberHabit() *entity.Habit {
	return &entity.Habit{ID: uuid.New(), Kind: entity.HabitKindNumber}
}

func checkboxHabit() *entity.Habit {
	return &entity.Habit{ID: uuid.New(), Kind: entity.HabitKindCheckbox}
}

func TestCalculate_EmptyStore(t *testing.T) {
	habit := numberHabit()
	got := Calculate(habit, entity.EntryStore{}, 2026, mustDate(t, "2026-08-29"))

	if got.Total != 0 || got.DaysLogged != 0 || got.AvgPerLoggedDay != 0 || got.AvgLast7 != 0 {
		t.Errorf("Calculate() on empty store = %+v, want zeros", got)
	}
	if got.Best != nil {
		t.Errorf("Best = %v, want nil on empty store", *got.Best)
	}
}

func TestCalculate_NumberHabit(t *testing.T) {
	habit := numberHabit()
	other := uuid.New()
	store := entity.EntryStore{}.
		Set("2026-03-01", habit.ID, entity.Entry{Amount: 10}).
		Set("2026-03-02", habit.ID, entity.Entry{Amount: 30}).
		Set("2026-03-03", other, entity.Entry{Amount: 99}).
		Set("2025-12-31", habit.ID, entity.Entry{Amount: 500})

	got := Calculate(habit, store, 2026, mustDate(t, "2026-08-29"))

	if got.Total != 40 {
		t.Errorf("Total = %v, want 40", got.Total)
	}
	if got.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2", got.DaysLogged)
	}
	if got.Best == nil || *got.Best != 30 {
		t.Errorf("Best = %v, want 30", got.Best)
	}
	if got.AvgPerLoggedDay != 20 {
		t.Errorf("AvgPerLoggedDay = %v, want 20", got.AvgPerLoggedDay)
	}
}

func TestCalculate_CheckboxHabitHasNoBest(t *testing.T) {
	habit := checkboxHabit()
	store := entity.EntryStore{}.
		Set("2026-03-01", habit.ID, entity.Entry{Checked: true}).
		Set("2026-03-02", habit.ID, entity.Entry{Checked: false})

	got := Calculate(habit, store, 2026, mustDate(t, "2026-08-29"))

	if got.Total != 1 {
		t.Errorf("Total = %v, want 1 (checked days count 1)", got.Total)
	}
	if got.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2 (unchecked logs still count)", got.DaysLogged)
	}
	if got.Best != nil {
		t.Errorf("Best = %v, want nil for checkbox habits", *got.Best)
	}
}

func TestCalculate_AvgLast7(t *testing.T) {
	t.Run("unlogged days count as zero", func(t *testing.T) {
		habit := numberHabit()
		store := entity.EntryStore{}.
			Set("2026-08-29", habit.ID, entity.Entry{Amount: 14}).
			Set("2026-08-27", habit.ID, entity.Entry{Amount: 7})

		got := Calculate(habit, store, 2026, mustDate(t, "2026-08-29"))
		if got.AvgLast7 != 3 {
			t.Errorf("AvgLast7 = %v, want 3 (21 over 7 days)", got.AvgLast7)
		}
	})

	t.Run("window shrinks at the year start", func(t *testing.T) {
		habit := numberHabit()
		store := entity.EntryStore{}.
			Set("2026-01-02", habit.ID, entity.Entry{Amount: 6}).
			Set("2025-12-30", habit.ID, entity.Entry{Amount: 100})

		// Jan 3: only Jan 1-3 fall inside 2026, so the window holds 3 days.
		got := Calculate(habit, store, 2026, mustDate(t, "2026-01-03"))
		if got.AvgLast7 != 2 {
			t.Errorf("AvgLast7 = %v, want 2 (6 over 3 in-year days)", got.AvgLast7)
		}
	})

	t.Run("entries outside the window are ignored", func(t *testing.T) {
		habit := numberHabit()
		store := entity.EntryStore{}.
			Set("2026-08-01", habit.ID, entity.Entry{Amount: 70})

		got := Calculate(habit, store, 2026, mustDate(t, "2026-08-29"))
		if got.AvgLast7 != 0 {
			t.Errorf("AvgLast7 = %v, want 0", got.AvgLast7)
		}
	})
}

func TestYearSummary_SortsByTotalDescending(t *testing.T) {
	low := &entity.Habit{ID: uuid.New(), Name: "Low", Kind: entity.HabitKindNumber}
	high := &entity.Habit{ID: uuid.New(), Name: "High", Kind: entity.HabitKindNumber}
	store := entity.EntryStore{}.
		Set("2026-03-01", low.ID, entity.Entry{Amount: 1}).
		Set("2026-03-01", high.ID, entity.Entry{Amount: 100})

	items := YearSummary([]*entity.Habit{low, high}, store, 2026, mustDate(t, "2026-08-29"))

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Habit.Name != "High" || items[1].Habit.Name != "Low" {
		t.Errorf("order = [%s, %s], want [High, Low]", items[0].Habit.Name, items[1].Habit.Name)
	}
}

func TestYearSummary_StableForTies(t *testing.T) {
	first := &entity.Habit{ID: uuid.New(), Name: "First", Kind: entity.HabitKindNumber}
	second := &entity.Habit{ID: uuid.New(), Name: "Second", Kind: entity.HabitKindNumber}

	items := YearSummary([]*entity.Habit{first, second}, entity.EntryStore{}, 2026, mustDate(t, "2026-08-29"))

	if items[0].Habit.Name != "First" || items[1].Habit.Name != "Second" {
		t.Error("ties must keep the habit list order")
	}
}
