package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Upsert inserts or overwrites the entry for (user, date, habit).
func (r *entryRepository) Upsert(ctx context.Context, record adapter.EntryRecord) error {
	entryModel := model.EntryFromRecord(record)
	entryModel.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date_iso"},
			{Name: "habit_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes the entry for (user, date, habit).
func (r *entryRepository) Delete(ctx context.Context, userID uuid.UUID, dateISO string, habitID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date_iso = ? AND habit_id = ?", userID, dateISO, habitID).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByHabit removes every entry referencing a habit.
func (r *entryRepository) DeleteByHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Delete(&model.EntryModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndYear retrieves all entries whose date falls inside the year.
// Zero-padded ISO dates compare correctly as strings, so the year filter is
// a plain range predicate on the date column.
func (r *entryRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) ([]adapter.EntryRecord, error) {
	start, end := entity.YearRange(year)

	var entryModels []model.EntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date_iso >= ? AND date_iso <= ?", userID, start, end).
		Order("date_iso ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]adapter.EntryRecord, len(entryModels))
	for i := range entryModels {
		records[i] = entryModels[i].ToRecord()
	}
	return records, nil
}
