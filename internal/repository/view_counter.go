package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter tracks how often employer viewers have opened a candidate's
// profile. Counters feed the candidate exposure view; losing them is
// acceptable, so they live in Redis rather than Postgres.
type ViewCounter interface {
	Increment(ctx context.Context, candidateID string) error
	Get(ctx context.Context, candidateID string) (int64, error)
}

type redisViewCounter struct {
	client *redis.Client
}

// NewViewCounter returns a Redis-backed counter.
func NewViewCounter(client *redis.Client) ViewCounter {
	return &redisViewCounter{client: client}
}

func viewKey(candidateID string) string {
	return fmt.Sprintf("candidate:%s:profile_views", candidateID)
}

func (c *redisViewCounter) Increment(ctx context.Context, candidateID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, viewKey(candidateID)).Err()
}

func (c *redisViewCounter) Get(ctx context.Context, candidateID string) (int64, error) {
	if c.client == nil {
		return 0, nil
	}
	count, err := c.client.Get(ctx, viewKey(candidateID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}
