package dto

import (
	"github.com/habit-tracker/backend/internal/application/usecase/share"
)

// ShareLinkResponse carries the rotated token and the public URL.
type ShareLinkResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// PublicYearResponse is the read-only year data exposed by a share token.
type PublicYearResponse struct {
	Year    int                                `json:"year"`
	Habits  []HabitResponse                    `json:"habits"`
	Entries map[string]map[string]EntryPayload `json:"entries"`
	Summary []SummaryItemResponse              `json:"summary"`
}

// ToPublicYearResponse converts the public-year output to its response form.
func ToPublicYearResponse(year int, out *share.GetPublicYearOutput) PublicYearResponse {
	summary := make([]SummaryItemResponse, len(out.Summary))
	for i, item := range out.Summary {
		summary[i] = SummaryItemResponse{
			Habit: ToHabitResponse(item.Habit),
			Stats: ToHabitStatsResponse(item.Stats),
		}
	}
	return PublicYearResponse{
		Year:    year,
		Habits:  ToHabitResponses(out.Habits),
		Entries: ToEntriesPayload(out.Entries),
		Summary: summary,
	}
}
