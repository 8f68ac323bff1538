package ports

import (
	"context"
	"time"

	"github.com/storekit/catalog-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     string
}

// TokenClaims is the identity embedded in an access token.
type TokenClaims struct {
	UserID    string
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// AuthService defines credential verification and token lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token
	// alongside the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// ValidateToken verifies signature, expiry and revocation state, returning
	// the embedded identity on success.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
	// Logout revokes the token until its natural expiry.
	Logout(ctx context.Context, token string) error
}
