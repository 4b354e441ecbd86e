package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// ShareProfileModel represents the share_profiles table in the database.
type ShareProfileModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShareToken string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	IsEnabled  bool      `gorm:"not null;default:true"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the ShareProfileModel.
func (ShareProfileModel) TableName() string {
	return "share_profiles"
}

// ToEntity converts a ShareProfileModel to a domain ShareProfile entity.
func (m *ShareProfileModel) ToEntity() *entity.ShareProfile {
	return &entity.ShareProfile{
		UserID:     m.UserID,
		ShareToken: m.ShareToken,
		IsEnabled:  m.IsEnabled,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ShareProfileFromEntity creates a ShareProfileModel from a domain entity.
func ShareProfileFromEntity(profile *entity.ShareProfile) *ShareProfileModel {
	return &ShareProfileModel{
		UserID:     profile.UserID,
		ShareToken: profile.ShareToken,
		IsEnabled:  profile.IsEnabled,
		UpdatedAt:  profile.UpdatedAt,
	}
}
