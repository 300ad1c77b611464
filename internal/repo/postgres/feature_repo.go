package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeatureRepo struct {
	pool *pgxpool.Pool
}

func NewFeatureRepo(pool *pgxpool.Pool) *FeatureRepo {
	return &FeatureRepo{pool: pool}
}

func (r *FeatureRepo) HasGrant(ctx context.Context, accountID int64, grantKey string) (bool, error) {
	if accountID <= 0 || grantKey == "" {
		return false, fmt.Errorf("invalid grant lookup payload")
	}
	if r.pool == nil {
		return false, nil
	}

	var ok bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1
	FROM feature_grants
	WHERE account_id = $1 AND grant_key = $2
)
`, accountID, grantKey).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("lookup feature grant: %w", err)
	}

	return ok, nil
}
