package ports

import (
	"context"
	"time"
)

// TokenStore tracks revoked token IDs. Entries expire on their own once the
// token they shadow would have expired anyway.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
