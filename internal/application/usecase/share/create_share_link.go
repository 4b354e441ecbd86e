// Package share contains public-sharing use cases.
package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// shareTokenBytes is the entropy of a share token; rendered as 32 hex chars.
const shareTokenBytes = 16

// NewShareToken generates a random 16-byte hex token.
func NewShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateShareLinkInput represents the input for share link creation.
type CreateShareLinkInput struct {
	UserID uuid.UUID
}

// CreateShareLinkOutput carries the rotated token and the public URL. The
// API always returns the raw URL so a client-side copy failure can degrade
// to manual copy.
type CreateShareLinkOutput struct {
	Token string
	URL   string
}

// CreateShareLinkUseCase rotates the user's share token and enables sharing.
type CreateShareLinkUseCase struct {
	shareRepo adapter.ShareRepository
	baseURL   string
}

// NewCreateShareLinkUseCase creates a new CreateShareLinkUseCase instance.
func NewCreateShareLinkUseCase(shareRepo adapter.ShareRepository, baseURL string) *CreateShareLinkUseCase {
	return &CreateShareLinkUseCase{
		shareRepo: shareRepo,
		baseURL:   baseURL,
	}
}

// Execute generates a fresh token and upserts it against the user's
// public-sharing record. Rotation invalidates previously issued links.
func (uc *CreateShareLinkUseCase) Execute(ctx context.Context, input CreateShareLinkInput) (*CreateShareLinkOutput, error) {
	token, err := NewShareToken()
	if err != nil {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeShareTokenGeneration,
			"failed to generate share token",
			domainerror.ErrShareTokenGeneration,
		)
	}

	profile := entity.NewShareProfile(input.UserID, token)
	if err := uc.shareRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save share profile: %w", err)
	}

	return &CreateShareLinkOutput{
		Token: token,
		URL:   fmt.Sprintf("%s/view/%s", uc.baseURL, token),
	}, nil
}
