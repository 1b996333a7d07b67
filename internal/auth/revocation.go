package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList invalidates session tokens before their natural expiry.
// Entries are keyed by token id and pruned automatically once the token
// would have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revocationKeyPrefix = "revoked:"

type redisRevocationList struct {
	client *redis.Client
}

// NewRedisRevocationList returns a Redis-backed revocation list shared
// across server instances.
func NewRedisRevocationList(client *redis.Client) RevocationList {
	return &redisRevocationList{client: client}
}

func (l *redisRevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to track.
		return nil
	}
	return l.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err()
}

func (l *redisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
