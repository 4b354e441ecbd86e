package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/entry"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// LogValueRequest represents the request body for logging a value. Number
// habits send the literal input in Value so the server can measure the
// typed decimal precision; checkbox habits send Checked.
type LogValueRequest struct {
	Date    string `json:"date" binding:"required"`
	HabitID string `json:"habit_id" binding:"required"`
	Value   string `json:"value,omitempty"`
	Checked bool   `json:"checked,omitempty"`
}

// EntryPayload represents one logged value in API responses.
type EntryPayload struct {
	Checked bool    `json:"checked,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
}

// ToEntryPayload converts a domain Entry to its payload.
func ToEntryPayload(e entity.Entry) EntryPayload {
	return EntryPayload{
		Checked: e.Checked,
		Amount:  e.Amount,
	}
}

// LogValueResponse reports the stored entry and the habit, whose decimals
// may have been auto-upgraded by the logged literal.
type LogValueResponse struct {
	Entry EntryPayload  `json:"entry"`
	Habit HabitResponse `json:"habit"`
}

// HistoryItemResponse is one habit's display payload on a history day.
type HistoryItemResponse struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Display string `json:"display"`
}

// HistoryDayResponse groups one date's logged items.
type HistoryDayResponse struct {
	Date  string                `json:"date"`
	Items []HistoryItemResponse `json:"items"`
}

// HistoryResponse represents the history listing for a year.
type HistoryResponse struct {
	Year  int                  `json:"year"`
	Month string               `json:"month"`
	Days  []HistoryDayResponse `json:"days"`
}

// ToHistoryResponse converts history days to their response form.
func ToHistoryResponse(year int, month string, days []entry.HistoryDay) HistoryResponse {
	out := make([]HistoryDayResponse, len(days))
	for i, d := range days {
		items := make([]HistoryItemResponse, len(d.Items))
		for j, it := range d.Items {
			items[j] = HistoryItemResponse{
				HabitID: it.HabitID.String(),
				Name:    it.Name,
				Display: it.Display,
			}
		}
		out[i] = HistoryDayResponse{Date: d.DateISO, Items: items}
	}
	return HistoryResponse{Year: year, Month: month, Days: out}
}
