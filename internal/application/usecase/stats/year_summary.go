package stats

import (
	"sort"
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// SummaryItem pairs one habit with its year statistics.
type SummaryItem struct {
	Habit *entity.Habit `json:"habit"`
	Stats HabitStats    `json:"stats"`
}

// YearSummary computes statistics for every habit in the tree, sorted by
// total descending so the most active habits lead the list.
func YearSummary(habits []*entity.Habit, store entity.EntryStore, year int, today time.Time) []SummaryItem {
	out := make([]SummaryItem, 0, len(habits))
	for _, h := range habits {
		out = append(out, SummaryItem{
			Habit: h,
			Stats: Calculate(h, store, year, today),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stats.Total > out[j].Stats.Total
	})
	return out
}
