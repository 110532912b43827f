package tracker

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisSeenKey is the sorted set holding resolved game ids, scored by
// resolution order so Load preserves insertion order.
const redisSeenKey = "matchfeed:seen_games"

// RedisStore persists the seen-set in Redis. Useful when several deploys
// share one seen-set; single-writer semantics still apply.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed seen-set store and verifies
// connectivity.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context) ([]string, error) {
	ids, err := s.client.ZRange(ctx, redisSeenKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load seen-set: %w", err)
	}
	return ids, nil
}

func (s *RedisStore) Append(ctx context.Context, gameID string) error {
	next, err := s.client.ZCard(ctx, redisSeenKey).Result()
	if err != nil {
		return fmt.Errorf("seen-set size: %w", err)
	}
	if err := s.client.ZAddNX(ctx, redisSeenKey, redis.Z{
		Score:  float64(next),
		Member: gameID,
	}).Err(); err != nil {
		return fmt.Errorf("append seen-set: %w", err)
	}
	return nil
}

func (s *RedisStore) Flush(ctx context.Context) error { return nil }

func (s *RedisStore) Close() error { return s.client.Close() }
