package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("feature cache miss")

type FeatureCacheRepo struct {
	client *redis.Client
}

func NewFeatureCacheRepo(client *redis.Client) *FeatureCacheRepo {
	return &FeatureCacheRepo{client: client}
}

func featureKey(accountID int64, grantKey string) string {
	return fmt.Sprintf("feature:%d:%s", accountID, grantKey)
}

func (r *FeatureCacheRepo) Get(ctx context.Context, accountID int64, grantKey string) (bool, error) {
	if accountID <= 0 || grantKey == "" {
		return false, fmt.Errorf("invalid feature cache key")
	}
	if r.client == nil {
		return false, ErrCacheMiss
	}

	val, err := r.client.Get(ctx, featureKey(accountID, grantKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, ErrCacheMiss
		}
		return false, fmt.Errorf("get feature cache: %w", err)
	}

	return val == "1", nil
}

func (r *FeatureCacheRepo) Set(ctx context.Context, accountID int64, grantKey string, allowed bool, ttl time.Duration) error {
	if accountID <= 0 || grantKey == "" {
		return fmt.Errorf("invalid feature cache key")
	}
	if r.client == nil {
		return nil
	}

	val := "0"
	if allowed {
		val = "1"
	}

	if err := r.client.Set(ctx, featureKey(accountID, grantKey), val, ttl).Err(); err != nil {
		return fmt.Errorf("set feature cache: %w", err)
	}

	return nil
}
