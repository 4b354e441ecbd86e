package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a JWT access token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for access-token operations. The
// authentication protocol itself lives outside this system; only validation
// of the session identity remains.
type TokenService interface {
	// GenerateAccessToken mints a token for a user id. Used by tooling and tests.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
