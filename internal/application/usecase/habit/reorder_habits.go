// Package habit contains habit-related use cases.
package habit

import (
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// MoveHabit returns a new list with the habit identified by fromID spliced
// out and reinserted at the position of the habit identified by toID. This
// is an array move, not a swap: every other habit keeps its relative order.
// It returns nil when the move is a no-op (unknown ids or same position), so
// callers can skip the commit.
func MoveHabit(list []*entity.Habit, fromID, toID uuid.UUID) []*entity.Habit {
	if fromID == toID {
		return nil
	}

	fromIndex, toIndex := -1, -1
	for i, h := range list {
		switch h.ID {
		case fromID:
			fromIndex = i
		case toID:
			toIndex = i
		}
	}
	if fromIndex < 0 || toIndex < 0 || fromIndex == toIndex {
		return nil
	}

	next := make([]*entity.Habit, 0, len(list))
	next = append(next, list[:fromIndex]...)
	next = append(next, list[fromIndex+1:]...)

	moved := list[fromIndex]
	next = append(next[:toIndex], append([]*entity.Habit{moved}, next[toIndex:]...)...)
	return next
}

// AssignSortIndexes sets SortIndex = position for every habit in the list,
// regardless of whether the value changed. The result feeds the batch upsert
// that commits a reorder.
func AssignSortIndexes(list []*entity.Habit) []*entity.Habit {
	for i, h := range list {
		h.SortIndex = i
	}
	return list
}
