// Package entry contains entry-related read use cases.
package entry

import (
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// HistoryMonthAll disables the month filter.
const HistoryMonthAll = "all"

// HistoryItem is one habit's logged value on a history day, rendered for
// display with the habit's precision.
type HistoryItem struct {
	HabitID uuid.UUID `json:"habit_id"`
	Name    string    `json:"name"`
	Display string    `json:"display"`
}

// HistoryDay groups a date's logged items, in habit display order.
type HistoryDay struct {
	DateISO string        `json:"date"`
	Items   []HistoryItem `json:"items"`
}

func validMonth(month string) bool {
	if month == HistoryMonthAll {
		return true
	}
	switch month {
	case "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12":
		return true
	}
	return false
}

// ListHistory returns the year's logged dates, most recent first, optionally
// restricted to one month ("01"…"12"). Items follow the habit list order.
func ListHistory(tree *entity.StateTree, year int, month string) ([]HistoryDay, error) {
	if !validMonth(month) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidHistoryMonth,
			"month must be 'all' or '01'..'12'",
			domainerror.ErrInvalidHistoryMonth,
		)
	}

	dates := tree.Entries.DatesInYear(year)
	out := make([]HistoryDay, 0, len(dates))
	for _, d := range dates {
		if month != HistoryMonthAll && d[5:7] != month {
			continue
		}

		day := tree.Entries[d]
		items := make([]HistoryItem, 0, len(day))
		for _, h := range tree.Habits {
			e, ok := day[h.ID]
			if !ok {
				continue
			}
			items = append(items, HistoryItem{
				HabitID: h.ID,
				Name:    h.Name,
				Display: h.DisplayEntry(e),
			})
		}
		out = append(out, HistoryDay{DateISO: d, Items: items})
	}
	return out, nil
}
