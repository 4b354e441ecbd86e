package entity

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Entry is one logged value for a habit on a date. Checkbox habits use
// Checked, number habits use Amount; the habit's kind decides which field
// is meaningful.
type Entry struct {
	Checked bool    `json:"checked,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// NumericValue maps the entry payload to a number: checked 1/0 for checkbox
// habits, the raw amount for number habits.
func (e Entry) NumericValue(kind HabitKind) float64 {
	if kind == HabitKindCheckbox {
		if e.Checked {
			return 1
		}
		return 0
	}
	return e.Amount
}

// EntryStore maps ISO date -> habit id -> logged entry. All updates are
// copy-on-write: readers holding an older store never observe a mutation.
// Invariant: no date key maps to an empty day.
type EntryStore map[string]map[uuid.UUID]Entry

// Get returns the entry for (date, habit) and whether it exists.
func (s EntryStore) Get(dateISO string, habitID uuid.UUID) (Entry, bool) {
	day, ok := s[dateISO]
	if !ok {
		return Entry{}, false
	}
	e, ok := day[habitID]
	return e, ok
}

// Set returns a new store with the (date, habit) entry inserted or
// overwritten. The input store is left untouched.
func (s EntryStore) Set(dateISO string, habitID uuid.UUID, e Entry) EntryStore {
	next := make(EntryStore, len(s)+1)
	for d, day := range s {
		next[d] = day
	}

	day := make(map[uuid.UUID]Entry, len(s[dateISO])+1)
	for id, cur := range s[dateISO] {
		day[id] = cur
	}
	day[habitID] = e
	next[dateISO] = day

	return next
}

// Delete returns a new store without the (date, habit) pair. When the day
// empties, the date key itself is removed.
func (s EntryStore) Delete(dateISO string, habitID uuid.UUID) EntryStore {
	day, ok := s[dateISO]
	if !ok {
		return s
	}
	if _, ok := day[habitID]; !ok {
		return s
	}

	next := make(EntryStore, len(s))
	for d, cur := range s {
		if d != dateISO {
			next[d] = cur
		}
	}

	if len(day) > 1 {
		rest := make(map[uuid.UUID]Entry, len(day)-1)
		for id, e := range day {
			if id != habitID {
				rest[id] = e
			}
		}
		next[dateISO] = rest
	}

	return next
}

// DeleteHabit returns a new store with every entry for one habit removed
// from every date. Other habits' entries on those dates are untouched.
func (s EntryStore) DeleteHabit(habitID uuid.UUID) EntryStore {
	next := s
	for dateISO, day := range s {
		if _, ok := day[habitID]; ok {
			next = next.Delete(dateISO, habitID)
		}
	}
	return next
}

// YearRange returns the inclusive ISO date bounds for a year. Zero-padded
// ISO-8601 dates sort identically under string and chronological order, so
// lexicographic comparison against these bounds is exact.
func YearRange(year int) (start, end string) {
	return fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)
}

// WithinYear reports whether an ISO date falls inside the given year.
func WithinYear(dateISO string, year int) bool {
	start, end := YearRange(year)
	return dateISO >= start && dateISO <= end
}

// DatesInYear lists the store's dates inside the year, most recent first.
func (s EntryStore) DatesInYear(year int) []string {
	out := make([]string, 0, len(s))
	for d := range s {
		if WithinYear(d, year) {
			out = append(out, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Clone returns a deep structural copy of the store.
func (s EntryStore) Clone() EntryStore {
	next := make(EntryStore, len(s))
	for d, day := range s {
		cp := make(map[uuid.UUID]Entry, len(day))
		for id, e := range day {
			cp[id] = e
		}
		next[d] = cp
	}
	return next
}
