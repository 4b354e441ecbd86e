package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

func TestShareRepository_UpsertAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewShareRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	profile := &entity.ShareProfile{
		UserID:     userID,
		ShareToken: "aaaabbbbccccddddaaaabbbbccccdddd",
		IsEnabled:  true,
	}
	if err := repo.Upsert(ctx, profile); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.FindByToken(ctx, profile.ShareToken)
	if err != nil {
		t.Fatalf("FindByToken() error = %v", err)
	}
	if got.UserID != userID || !got.IsEnabled {
		t.Errorf("profile = %+v", got)
	}
}

func TestShareRepository_UpsertRotatesToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewShareRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := &entity.ShareProfile{UserID: userID, ShareToken: "token-one", IsEnabled: true}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	second := &entity.ShareProfile{UserID: userID, ShareToken: "token-two", IsEnabled: true}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	if _, err := repo.FindByToken(ctx, "token-two"); err != nil {
		t.Fatalf("FindByToken(new) error = %v", err)
	}

	// The old token stops resolving: rotation replaces the user's single row.
	_, err := repo.FindByToken(ctx, "token-one")
	if !errors.Is(err, domainerror.ErrShareNotFound) {
		t.Fatalf("FindByToken(old) error = %v, want ErrShareNotFound", err)
	}
}

func TestShareRepository_FindByToken_Unknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewShareRepository(db)

	_, err := repo.FindByToken(context.Background(), "never-issued")
	if !errors.Is(err, domainerror.ErrShareNotFound) {
		t.Fatalf("FindByToken() error = %v, want ErrShareNotFound", err)
	}
}
