package stats

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// Point is one day on a habit's cumulative trend line. GoalCum is nil when
// the habit has no yearly target, signalling "no goal line" to the consumer
// rather than a goal of zero.
type Point struct {
	Date      string   `json:"date"`
	Daily     float64  `json:"daily"`
	ActualCum float64  `json:"actual_cum"`
	GoalCum   *float64 `json:"goal_cum"`
}

// daysInYear returns the exact day count for a calendar year. Goal
// derivation upstream approximates with 365; pacing is charted per actual
// day, so leap years must be exact here.
func daysInYear(year int) int {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// BuildSeries produces the full daily timeline for a habit in a year:
// January 1 through today for the current year, or December 31 for a past
// year. The range is anchored to the calendar year, not the first logged
// date, so charts show the full elapsed year even with zero data.
func BuildSeries(habit *entity.Habit, store entity.EntryStore, year int, today time.Time) []Point {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if year == today.Year() {
		end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	if end.Before(start) {
		return []Point{}
	}

	goalYearly := habit.YearlyGoal()

	var actualCum, goalCum float64
	out := make([]Point, 0, int(end.Sub(start).Hours()/24)+1)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format(dateISOFormat)

		var daily float64
		if e, ok := store.Get(iso, habit.ID); ok {
			daily = e.NumericValue(habit.Kind)
		}
		actualCum += daily

		p := Point{
			Date:      iso,
			Daily:     daily,
			ActualCum: actualCum,
		}
		if goalYearly > 0 {
			goalCum += goalYearly / float64(daysInYear(d.Year()))
			paced := goalCum
			p.GoalCum = &paced
		}
		out = append(out, p)
	}

	return out
}
