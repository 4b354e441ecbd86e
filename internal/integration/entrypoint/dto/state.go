package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// SyncStatusResponse is the sync side-channel in API responses.
type SyncStatusResponse struct {
	State     string    `json:"state"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSyncStatusResponse converts a domain SyncStatus to its response form.
func ToSyncStatusResponse(s valueobject.SyncStatus) SyncStatusResponse {
	return SyncStatusResponse{
		State:     string(s.State),
		Message:   s.Message,
		UpdatedAt: s.UpdatedAt,
	}
}

// StateResponse is the full session snapshot plus sync status.
type StateResponse struct {
	Habits       []HabitResponse                    `json:"habits"`
	Entries      map[string]map[string]EntryPayload `json:"entries"`
	SelectedYear int                                `json:"selected_year"`
	YearOptions  []int                              `json:"year_options"`
	Sync         SyncStatusResponse                 `json:"sync"`
}

// ToEntriesPayload converts the entry store to its wire form, keyed by ISO
// date then habit id.
func ToEntriesPayload(store entity.EntryStore) map[string]map[string]EntryPayload {
	out := make(map[string]map[string]EntryPayload, len(store))
	for date, day := range store {
		payload := make(map[string]EntryPayload, len(day))
		for habitID, e := range day {
			payload[habitID.String()] = ToEntryPayload(e)
		}
		out[date] = payload
	}
	return out
}

// ToStateResponse converts a state tree and sync status to the snapshot DTO.
func ToStateResponse(tree *entity.StateTree, status valueobject.SyncStatus, now time.Time) StateResponse {
	return StateResponse{
		Habits:       ToHabitResponses(tree.Habits),
		Entries:      ToEntriesPayload(tree.Entries),
		SelectedYear: tree.UI.SelectedYear,
		YearOptions:  entity.YearOptions(now),
		Sync:         ToSyncStatusResponse(status),
	}
}

// ChangeYearRequest represents the request body for switching the active year.
type ChangeYearRequest struct {
	Year int `json:"year" binding:"required,min=1970,max=9999"`
}
