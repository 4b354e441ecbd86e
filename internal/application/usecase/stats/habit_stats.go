// Package stats computes per-year habit statistics and cumulative trend
// series over an entry store snapshot. Everything here is pure: the store is
// read-only and "today" is passed in.
package stats

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// HabitStats aggregates one habit's activity inside a year.
type HabitStats struct {
	Total           float64  `json:"total"`
	DaysLogged      int      `json:"days_logged"`
	Best            *float64 `json:"best,omitempty"`
	AvgPerLoggedDay float64  `json:"avg_per_logged_day"`
	AvgLast7        float64  `json:"avg_last_7"`
}

const dateISOFormat = "2006-01-02"

// Calculate walks the store's dates inside the year and aggregates totals,
// logged-day counts, the best numeric value, and two averages. Absent days
// are not zero-counted except inside the trailing 7-day window. Every
// divide-by-zero case resolves to 0; the function never errors.
func Calculate(habit *entity.Habit, store entity.EntryStore, year int, today time.Time) HabitStats {
	var (
		total      float64
		daysLogged int
		best       *float64
	)

	for dateISO, day := range store {
		if !entity.WithinYear(dateISO, year) {
			continue
		}
		e, ok := day[habit.ID]
		if !ok {
			continue
		}
		daysLogged++
		v := e.NumericValue(habit.Kind)
		total += v
		if habit.Kind == entity.HabitKindNumber {
			if best == nil || v > *best {
				value := v
				best = &value
			}
		}
	}

	// Trailing window: the 7 calendar days ending today, restricted to the
	// ones inside the year. Near a year boundary this can hold fewer than 7
	// samples. Unlogged days count as zero here.
	var windowSum float64
	windowLen := 0
	base := today
	for i := 6; i >= 0; i-- {
		d := base.AddDate(0, 0, -i)
		iso := d.Format(dateISOFormat)
		if !entity.WithinYear(iso, year) {
			continue
		}
		windowLen++
		if e, ok := store.Get(iso, habit.ID); ok {
			windowSum += e.NumericValue(habit.Kind)
		}
	}

	out := HabitStats{
		Total:      total,
		DaysLogged: daysLogged,
		Best:       best,
	}
	if daysLogged > 0 {
		out.AvgPerLoggedDay = total / float64(daysLogged)
	}
	if windowLen > 0 {
		out.AvgLast7 = windowSum / float64(windowLen)
	}
	return out
}
