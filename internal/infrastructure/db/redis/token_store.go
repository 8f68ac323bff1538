package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore records revoked token IDs with a TTL matching the remaining
// token lifetime. Key format: revoked:<jti>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke marks the token ID as revoked until ttl elapses.
func (t *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return t.client.Set(ctx, t.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been revoked.
func (t *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (t *TokenStore) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
