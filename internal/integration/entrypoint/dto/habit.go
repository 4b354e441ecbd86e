package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// GoalsPayload carries the per-period goal magnitudes. Absent periods read
// as zero, meaning "no goal".
type GoalsPayload struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// ToValueObject converts the payload to a normalized domain Goals value.
func (p GoalsPayload) ToValueObject() valueobject.Goals {
	return valueobject.Goals{
		Daily:   p.Daily,
		Weekly:  p.Weekly,
		Monthly: p.Monthly,
		Yearly:  p.Yearly,
	}.Normalized()
}

// GoalsPayloadFromValueObject converts a domain Goals value to its payload.
func GoalsPayloadFromValueObject(g valueobject.Goals) GoalsPayload {
	n := g.Normalized()
	return GoalsPayload{
		Daily:   n.Daily,
		Weekly:  n.Weekly,
		Monthly: n.Monthly,
		Yearly:  n.Yearly,
	}
}

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name  string       `json:"name" binding:"required,min=1,max=255"`
	Kind  string       `json:"kind" binding:"required,oneof=number checkbox"`
	Unit  string       `json:"unit,omitempty" binding:"omitempty,max=64"`
	Goals GoalsPayload `json:"goals"`
}

// UpdateHabitRequest represents the request body for a partial habit update.
type UpdateHabitRequest struct {
	Name     *string       `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Unit     *string       `json:"unit,omitempty" binding:"omitempty,max=64"`
	Goals    *GoalsPayload `json:"goals,omitempty"`
	Decimals *int          `json:"decimals,omitempty" binding:"omitempty,min=0,max=6"`
}

// ReorderHabitsRequest carries the full ordered habit id list.
type ReorderHabitsRequest struct {
	HabitIDs []string `json:"habit_ids" binding:"required,min=1"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      string       `json:"kind"`
	Unit      string       `json:"unit,omitempty"`
	Decimals  int          `json:"decimals"`
	Goals     GoalsPayload `json:"goals"`
	SortIndex int          `json:"sort_index"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(habit *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:        habit.ID.String(),
		Name:      habit.Name,
		Kind:      string(habit.Kind),
		Unit:      habit.Unit,
		Decimals:  habit.EffectiveDecimals(),
		Goals:     GoalsPayloadFromValueObject(habit.Goals),
		SortIndex: habit.SortIndex,
		CreatedAt: habit.CreatedAt,
		UpdatedAt: habit.UpdatedAt,
	}
}

// ToHabitResponses converts a habit list preserving display order.
func ToHabitResponses(habits []*entity.Habit) []HabitResponse {
	out := make([]HabitResponse, len(habits))
	for i, h := range habits {
		out[i] = ToHabitResponse(h)
	}
	return out
}
