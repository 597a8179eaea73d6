package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const dashboardStatsKey = "cabinet:dashboard:stats"

// DashboardStatsKey is the cache slot for dashboard aggregates.
func DashboardStatsKey() string {
	return dashboardStatsKey
}

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client}
}

// GetJSON reads a cached value into dest. A cache miss returns
// (false, nil).
func (r *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	res := r.client.Get(ctx, key)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return false, nil
		}
		return false, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(buf, dest); err != nil {
		return false, err
	}

	return true, nil
}

// SetJSON stores a value with a TTL.
func (r *Redis) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	marshal, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, marshal, ttl).Err()
}

// Invalidate drops a key.
func (r *Redis) Invalidate(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
