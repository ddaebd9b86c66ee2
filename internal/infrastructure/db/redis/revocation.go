package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList is the token denylist backed by Redis. Entries expire with
// the token they revoke, so the list never outgrows the set of live tokens.
// Key format: revoked:<jti>
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke denylists a token id until its natural expiry.
func (l *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return l.client.Set(ctx, l.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been denylisted.
func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(tokenID string) string {
	return "revoked:" + tokenID
}
