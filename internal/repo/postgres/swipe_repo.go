package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
)

var ErrSwipeNotFound = errors.New("swipe not found")

type SwipeRepo struct {
	pool *pgxpool.Pool
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

type SwipeRecord struct {
	ID              int64
	LikerProfileID  int64
	TargetProfileID int64
	Kind            enums.SwipeKind
	CreatedAt       time.Time
}

// Insert records a swipe for the ordered (liker, target) pair. The insert is
// guarded by the pair uniqueness constraint: on conflict nothing is written
// and the pre-existing row is returned with created=false. Check-then-insert
// is deliberately avoided; the constraint is the only race arbiter.
func (r *SwipeRepo) Insert(ctx context.Context, tx pgx.Tx, likerProfileID, targetProfileID int64, kind enums.SwipeKind, now time.Time) (SwipeRecord, bool, error) {
	if likerProfileID <= 0 || targetProfileID <= 0 || kind == "" {
		return SwipeRecord{}, false, fmt.Errorf("invalid swipe payload")
	}
	if tx == nil {
		return SwipeRecord{}, false, fmt.Errorf("transaction is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var rec SwipeRecord
	err := tx.QueryRow(ctx, `
INSERT INTO rencontre_swipes (
	liker_profile_id,
	target_profile_id,
	kind,
	created_at
) VALUES ($1, $2, $3, $4)
ON CONFLICT (liker_profile_id, target_profile_id) DO NOTHING
RETURNING id, liker_profile_id, target_profile_id, kind, created_at
`, likerProfileID, targetProfileID, string(kind), now.UTC()).Scan(
		&rec.ID,
		&rec.LikerProfileID,
		&rec.TargetProfileID,
		&rec.Kind,
		&rec.CreatedAt,
	)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return SwipeRecord{}, false, fmt.Errorf("insert swipe: %w", err)
	}

	// Conflict path: the pair was already swiped. Return the existing row.
	existing, err := r.GetByPair(ctx, tx, likerProfileID, targetProfileID)
	if err != nil {
		return SwipeRecord{}, false, err
	}
	return existing, false, nil
}

func (r *SwipeRepo) GetByPair(ctx context.Context, tx pgx.Tx, likerProfileID, targetProfileID int64) (SwipeRecord, error) {
	if likerProfileID <= 0 || targetProfileID <= 0 {
		return SwipeRecord{}, fmt.Errorf("invalid swipe pair")
	}
	if tx == nil {
		return SwipeRecord{}, fmt.Errorf("transaction is required")
	}

	var rec SwipeRecord
	err := tx.QueryRow(ctx, `
SELECT id, liker_profile_id, target_profile_id, kind, created_at
FROM rencontre_swipes
WHERE liker_profile_id = $1 AND target_profile_id = $2
LIMIT 1
`, likerProfileID, targetProfileID).Scan(
		&rec.ID,
		&rec.LikerProfileID,
		&rec.TargetProfileID,
		&rec.Kind,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SwipeRecord{}, ErrSwipeNotFound
		}
		return SwipeRecord{}, fmt.Errorf("get swipe by pair: %w", err)
	}

	return rec, nil
}

func (r *SwipeRepo) LikeExists(ctx context.Context, tx pgx.Tx, likerProfileID, targetProfileID int64) (bool, error) {
	if likerProfileID <= 0 || targetProfileID <= 0 {
		return false, fmt.Errorf("invalid like lookup payload")
	}
	if tx == nil {
		return false, fmt.Errorf("transaction is required")
	}

	var one int
	err := tx.QueryRow(ctx, `
SELECT 1
FROM rencontre_swipes
WHERE liker_profile_id = $1 AND target_profile_id = $2 AND kind = $3
LIMIT 1
`, likerProfileID, targetProfileID, string(enums.SwipeKindLike)).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup reciprocal like: %w", err)
	}

	return true, nil
}

// ListTargetIDsByLiker returns every profile the liker already swiped, either
// kind. Discovery uses this as the exclusion set.
func (r *SwipeRepo) ListTargetIDsByLiker(ctx context.Context, likerProfileID int64) ([]int64, error) {
	if likerProfileID <= 0 {
		return nil, fmt.Errorf("invalid liker profile id")
	}
	if r.pool == nil {
		return []int64{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT target_profile_id
FROM rencontre_swipes
WHERE liker_profile_id = $1
`, likerProfileID)
	if err != nil {
		return nil, fmt.Errorf("list swiped targets: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 64)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan swiped target: %w", err)
		}
		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate swiped targets: %w", rows.Err())
	}

	return ids, nil
}
