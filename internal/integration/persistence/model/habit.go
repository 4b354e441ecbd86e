// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name      string            `gorm:"type:varchar(255);not null"`
	Kind      string            `gorm:"type:varchar(20);not null"`
	Unit      string            `gorm:"type:varchar(64);not null;default:''"`
	Decimals  int               `gorm:"not null;default:0"`
	Goals     valueobject.Goals `gorm:"type:jsonb"`
	SortIndex int               `gorm:"not null;default:0;index"`
	CreatedAt time.Time         `gorm:"not null"`
	UpdatedAt time.Time         `gorm:"not null"`

	// Legacy single-goal columns, still present on rows written before the
	// per-period goals document existed. Read-only: new writes always leave
	// them at their defaults.
	GoalDaily  float64 `gorm:"column:goal_daily;not null;default:0"`
	GoalPeriod string  `gorm:"column:goal_period;type:varchar(20);not null;default:'daily'"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity. Rows that predate
// the goals document carry their goal in the legacy columns; those migrate
// on read.
func (m *HabitModel) ToEntity() *entity.Habit {
	goals := m.Goals.Normalized()
	if goals.IsZero() && m.GoalDaily > 0 {
		goals = valueobject.GoalsFromLegacy(m.GoalDaily, valueobject.GoalPeriod(m.GoalPeriod))
	}

	return &entity.Habit{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Kind:      entity.HabitKind(m.Kind),
		Unit:      m.Unit,
		Decimals:  m.Decimals,
		Goals:     goals,
		SortIndex: m.SortIndex,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:         habit.ID,
		UserID:     habit.UserID,
		Name:       habit.Name,
		Kind:       string(habit.Kind),
		Unit:       habit.Unit,
		Decimals:   habit.Decimals,
		Goals:      habit.Goals.Normalized(),
		SortIndex:  habit.SortIndex,
		CreatedAt:  habit.CreatedAt,
		UpdatedAt:  habit.UpdatedAt,
		GoalDaily:  0,
		GoalPeriod: string(valueobject.GoalPeriodDaily),
	}
}
