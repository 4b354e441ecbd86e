package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// EntryRecord is one persisted (date, habit) log row.
type EntryRecord struct {
	UserID  uuid.UUID
	DateISO string
	HabitID uuid.UUID
	Entry   entity.Entry
}

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Upsert inserts or overwrites the entry for (user, date, habit).
	Upsert(ctx context.Context, record EntryRecord) error

	// Delete removes the entry for (user, date, habit).
	Delete(ctx context.Context, userID uuid.UUID, dateISO string, habitID uuid.UUID) error

	// DeleteByHabit removes every entry referencing a habit.
	DeleteByHabit(ctx context.Context, userID, habitID uuid.UUID) error

	// FindByUserAndYear retrieves all entries whose date falls inside the
	// year range for the user.
	FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]EntryRecord, error)
}
