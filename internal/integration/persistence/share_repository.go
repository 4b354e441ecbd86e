package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// shareRepository implements the adapter.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new share repository instance.
func NewShareRepository(db *gorm.DB) adapter.ShareRepository {
	return &shareRepository{
		db: db,
	}
}

// Upsert inserts or replaces the user's share profile. Rotating a token is
// an upsert against the same user row.
func (r *shareRepository) Upsert(ctx context.Context, profile *entity.ShareProfile) error {
	profileModel := model.ShareProfileFromEntity(profile)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"share_token", "is_enabled", "updated_at"}),
	}).Create(profileModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByToken retrieves the profile matching a share token.
func (r *shareRepository) FindByToken(ctx context.Context, token string) (*entity.ShareProfile, error) {
	var profileModel model.ShareProfileModel
	result := r.db.WithContext(ctx).Where("share_token = ?", token).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrShareNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}
