package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultIdempotencyTTL = 24 * time.Hour

	// PendingTTL bounds how long a crashed checkout can keep its key claimed.
	PendingTTL = time.Minute

	pendingValue = "pending"
)

// RedisIdempotencyStore maps (user, Idempotency-Key) to the purchase created for it.
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, userID int, key string) (uuid.UUID, error) {
	redisKey := idempotencyKey(userID, key)

	claimed, err := s.client.SetNX(ctx, redisKey, pendingValue, PendingTTL).Result()
	if err != nil {
		return uuid.Nil, fmt.Errorf("redis setnx failed: %w", err)
	}

	if claimed {
		return uuid.Nil, nil
	}

	raw, err := s.client.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) || raw == pendingValue {
		return uuid.Nil, &domain.CheckoutInProgressError{Msg: fmt.Sprintf("checkout for idempotency key %q is in progress", key)}
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("redis get failed: %w", err)
	}

	purchaseID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("stored purchase id %q is malformed: %w", raw, err)
	}

	return purchaseID, nil
}

// Complete replaces the pending claim with the committed purchase id.
func (s *RedisIdempotencyStore) Complete(ctx context.Context, userID int, key string, purchaseID uuid.UUID) error {
	err := s.client.Set(ctx, idempotencyKey(userID, key), purchaseID.String(), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Release drops the claim of a checkout that rolled back so the key can be retried.
func (s *RedisIdempotencyStore) Release(ctx context.Context, userID int, key string) error {
	err := s.client.Del(ctx, idempotencyKey(userID, key)).Err()
	if err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}

	return nil
}

type NopIdempotencyStore struct {
}

func (NopIdempotencyStore) Reserve(context.Context, int, string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (NopIdempotencyStore) Complete(context.Context, int, string, uuid.UUID) error {
	return nil
}

func (NopIdempotencyStore) Release(context.Context, int, string) error {
	return nil
}

func idempotencyKey(userID int, key string) string {
	return fmt.Sprintf("checkout:idempotency:%d:%s", userID, key)
}
