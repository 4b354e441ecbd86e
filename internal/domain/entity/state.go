package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// UIState holds per-user interface preferences carried in the state tree.
type UIState struct {
	SelectedYear int `json:"selected_year"`
}

// StateTree is the aggregate root the synchronization layer owns: the
// ordered habit list, the entry store for the selected year, and UI
// preferences. Mutations always go through structural copies so concurrent
// readers never observe a torn tree.
type StateTree struct {
	Habits  []*Habit   `json:"habits"`
	Entries EntryStore `json:"entries"`
	UI      UIState    `json:"ui"`
}

// NewStateTree builds an empty tree for the given year.
func NewStateTree(year int) *StateTree {
	return &StateTree{
		Habits:  []*Habit{},
		Entries: EntryStore{},
		UI:      UIState{SelectedYear: year},
	}
}

// DefaultStateTree seeds the state used when no durable cache exists: two
// sample habits so a first-time user sees a working board.
func DefaultStateTree(userID uuid.UUID, year int) *StateTree {
	pushups := NewHabit(userID, "Pushups", HabitKindNumber, "reps",
		valueobject.Goals{Daily: 50}, 0)
	read := NewHabit(userID, "Read", HabitKindCheckbox, "",
		valueobject.Goals{Daily: 1}, 1)

	return &StateTree{
		Habits:  []*Habit{pushups, read},
		Entries: EntryStore{},
		UI:      UIState{SelectedYear: year},
	}
}

// YearOptions returns the selectable years around the current one: the
// previous, current and next calendar year.
func YearOptions(now time.Time) []int {
	y := now.Year()
	return []int{y - 1, y, y + 1}
}

// Clone returns a deep structural copy of the tree.
func (t *StateTree) Clone() *StateTree {
	habits := make([]*Habit, len(t.Habits))
	for i, h := range t.Habits {
		habits[i] = h.Clone()
	}
	return &StateTree{
		Habits:  habits,
		Entries: t.Entries.Clone(),
		UI:      t.UI,
	}
}

// FindHabit returns the habit with the given id, or nil.
func (t *StateTree) FindHabit(id uuid.UUID) *Habit {
	for _, h := range t.Habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Normalize repairs a tree loaded from an untrusted source (the durable
// cache): nil collections become empty ones and an invalid selected year
// falls back to the current calendar year. Habit goals are re-normalized so
// legacy cached shapes keep working.
func (t *StateTree) Normalize(now time.Time) *StateTree {
	if t.Habits == nil {
		t.Habits = []*Habit{}
	}
	if t.Entries == nil {
		t.Entries = EntryStore{}
	}
	if t.UI.SelectedYear <= 0 {
		t.UI.SelectedYear = now.Year()
	}
	for _, h := range t.Habits {
		h.Goals = h.Goals.Normalized()
		if h.Kind != HabitKindNumber {
			h.Decimals = 0
		}
	}
	return t
}
