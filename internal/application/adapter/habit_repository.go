// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// SortIndexUpdate assigns one habit its position in the display order.
type SortIndexUpdate struct {
	HabitID   uuid.UUID
	SortIndex int
}

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create inserts a new habit.
	Create(ctx context.Context, habit *entity.Habit) error

	// Update updates an existing habit.
	Update(ctx context.Context, habit *entity.Habit) error

	// UpdateDecimals raises the stored display precision for one habit. Used
	// by the decimal auto-upgrade follow-up write.
	UpdateDecimals(ctx context.Context, userID, habitID uuid.UUID, decimals int) error

	// Delete removes a habit owned by the user.
	Delete(ctx context.Context, userID, habitID uuid.UUID) error

	// FindByUserID retrieves all habits for a user ordered by sort index,
	// then creation time.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// UpdateSortIndexes persists a full reorder batch. Every listed habit
	// gets its new index; the last writer for the full set wins.
	UpdateSortIndexes(ctx context.Context, userID uuid.UUID, updates []SortIndexUpdate) error
}
