package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
)

// HabitStatsResponse represents one habit's year statistics.
type HabitStatsResponse struct {
	Total           float64  `json:"total"`
	DaysLogged      int      `json:"days_logged"`
	Best            *float64 `json:"best,omitempty"`
	AvgPerLoggedDay float64  `json:"avg_per_logged_day"`
	AvgLast7        float64  `json:"avg_last_7"`
}

// ToHabitStatsResponse converts computed stats to their response form.
func ToHabitStatsResponse(s stats.HabitStats) HabitStatsResponse {
	return HabitStatsResponse{
		Total:           s.Total,
		DaysLogged:      s.DaysLogged,
		Best:            s.Best,
		AvgPerLoggedDay: s.AvgPerLoggedDay,
		AvgLast7:        s.AvgLast7,
	}
}

// SummaryItemResponse pairs one habit with its year statistics.
type SummaryItemResponse struct {
	Habit HabitResponse      `json:"habit"`
	Stats HabitStatsResponse `json:"stats"`
}

// SummaryResponse represents the year summary, most active habits first.
type SummaryResponse struct {
	Year  int                   `json:"year"`
	Items []SummaryItemResponse `json:"items"`
}

// ToSummaryResponse converts a year summary to its response form.
func ToSummaryResponse(year int, items []stats.SummaryItem) SummaryResponse {
	out := make([]SummaryItemResponse, len(items))
	for i, item := range items {
		out[i] = SummaryItemResponse{
			Habit: ToHabitResponse(item.Habit),
			Stats: ToHabitStatsResponse(item.Stats),
		}
	}
	return SummaryResponse{Year: year, Items: out}
}

// SeriesPointResponse is one day on a habit's cumulative trend line. GoalCum
// stays null when the habit has no yearly target.
type SeriesPointResponse struct {
	Date      string   `json:"date"`
	Daily     float64  `json:"daily"`
	ActualCum float64  `json:"actual_cum"`
	GoalCum   *float64 `json:"goal_cum"`
}

// SeriesResponse represents the cumulative series for one habit.
type SeriesResponse struct {
	Habit  HabitResponse         `json:"habit"`
	Year   int                   `json:"year"`
	Points []SeriesPointResponse `json:"points"`
}

// ToSeriesResponse converts series points to their response form.
func ToSeriesResponse(habit HabitResponse, year int, points []stats.Point) SeriesResponse {
	out := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = SeriesPointResponse{
			Date:      p.Date,
			Daily:     p.Daily,
			ActualCum: p.ActualCum,
			GoalCum:   p.GoalCum,
		}
	}
	return SeriesResponse{Habit: habit, Year: year, Points: out}
}
