// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create inserts a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update overwrites an existing habit's mutable fields.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ? AND id = ?", habit.UserID, habit.ID).
		Updates(map[string]interface{}{
			"name":       habitModel.Name,
			"unit":       habitModel.Unit,
			"decimals":   habitModel.Decimals,
			"goals":      habitModel.Goals,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateDecimals raises the stored display precision for one habit.
func (r *habitRepository) UpdateDecimals(ctx context.Context, userID, habitID uuid.UUID, decimals int) error {
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ? AND id = ?", userID, habitID).
		Updates(map[string]interface{}{
			"decimals":   decimals,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a habit owned by the user.
func (r *habitRepository) Delete(ctx context.Context, userID, habitID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, habitID).
		Delete(&model.HabitModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserID retrieves all habits for a user in display order.
func (r *habitRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_index ASC, created_at ASC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i := range habitModels {
		habits[i] = habitModels[i].ToEntity()
	}
	return habits, nil
}

// UpdateSortIndexes persists a full reorder batch in one transaction.
func (r *habitRepository) UpdateSortIndexes(ctx context.Context, userID uuid.UUID, updates []adapter.SortIndexUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, update := range updates {
			result := tx.Model(&model.HabitModel{}).
				Where("user_id = ? AND id = ?", userID, update.HabitID).
				Updates(map[string]interface{}{
					"sort_index": update.SortIndex,
					"updated_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
