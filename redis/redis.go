package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "skillverify:revoked:"

// TokenStore remembers revoked token IDs until the token would have expired.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(ctx context.Context, addr, password string) (*TokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &TokenStore{client: client}, nil
}

// Revoke is a no-op for tokens that have already expired.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}
