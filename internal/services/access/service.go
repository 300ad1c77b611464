package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
	redisrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/redis"
)

var ErrValidation = errors.New("validation error")

type GrantStore interface {
	HasGrant(ctx context.Context, accountID int64, grantKey string) (bool, error)
}

type GrantCache interface {
	Get(ctx context.Context, accountID int64, grantKey string) (bool, error)
	Set(ctx context.Context, accountID int64, grantKey string, allowed bool, ttl time.Duration) error
}

type Config struct {
	CacheTTL time.Duration
}

type Dependencies struct {
	Grants GrantStore
	Cache  GrantCache
	Logger *zap.Logger
}

type Service struct {
	grants GrantStore
	cache  GrantCache
	logger *zap.Logger
	cfg    Config
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		grants: deps.Grants,
		cache:  deps.Cache,
		logger: deps.Logger,
		cfg:    cfg,
	}
}

// CanAct answers whether the account may perform the action on the feature.
// The cache is best-effort: a cache failure falls through to the grant store
// and never blocks the decision.
func (s *Service) CanAct(ctx context.Context, accountID int64, feature enums.Feature, action enums.FeatureAction) (bool, error) {
	if accountID <= 0 || feature == "" || action == "" {
		return false, ErrValidation
	}
	if s.grants == nil {
		return false, fmt.Errorf("grant store is not configured")
	}

	key := enums.GrantKey(feature, action)

	if s.cache != nil {
		allowed, err := s.cache.Get(ctx, accountID, key)
		if err == nil {
			return allowed, nil
		}
		if !errors.Is(err, redisrepo.ErrCacheMiss) {
			s.logger.Warn("feature cache read failed", zap.Int64("account_id", accountID), zap.String("grant_key", key), zap.Error(err))
		}
	}

	allowed, err := s.grants.HasGrant(ctx, accountID, key)
	if err != nil {
		return false, fmt.Errorf("resolve feature grant: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, accountID, key, allowed, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("feature cache write failed", zap.Int64("account_id", accountID), zap.String("grant_key", key), zap.Error(err))
		}
	}

	return allowed, nil
}
