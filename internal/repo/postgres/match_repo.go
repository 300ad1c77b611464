package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

type MatchRecord struct {
	ID         int64
	ProfileAID int64
	ProfileBID int64
	CreatedAt  time.Time
}

type MatchListItem struct {
	MatchID              int64
	CounterpartProfileID int64
	CounterpartAccountID int64
	CounterpartName      string
	CounterpartGender    string
	CounterpartAge       int
	MatchedAt            time.Time
}

// CreateCanonical stores the match for an unordered profile pair. The pair is
// normalized to (min, max) before the insert so both swipe directions target
// the same row; the uniqueness constraint decides which concurrent writer
// actually creates it. created=false means another writer got there first.
func (r *MatchRepo) CreateCanonical(ctx context.Context, tx pgx.Tx, profileID, otherProfileID int64, now time.Time) (MatchRecord, bool, error) {
	if profileID <= 0 || otherProfileID <= 0 {
		return MatchRecord{}, false, fmt.Errorf("invalid match pair")
	}
	if profileID == otherProfileID {
		return MatchRecord{}, false, fmt.Errorf("match pair must be distinct")
	}
	if tx == nil {
		return MatchRecord{}, false, fmt.Errorf("transaction is required")
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	a, b := profileID, otherProfileID
	if a > b {
		a, b = b, a
	}

	var rec MatchRecord
	err := tx.QueryRow(ctx, `
INSERT INTO rencontre_matches (
	profile_a_id,
	profile_b_id,
	created_at
) VALUES ($1, $2, $3)
ON CONFLICT (profile_a_id, profile_b_id) DO NOTHING
RETURNING id, profile_a_id, profile_b_id, created_at
`, a, b, now.UTC()).Scan(
		&rec.ID,
		&rec.ProfileAID,
		&rec.ProfileBID,
		&rec.CreatedAt,
	)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return MatchRecord{}, false, fmt.Errorf("insert match: %w", err)
	}

	existing, err := r.getCanonical(ctx, tx, a, b)
	if err != nil {
		return MatchRecord{}, false, err
	}
	return existing, false, nil
}

func (r *MatchRepo) getCanonical(ctx context.Context, tx pgx.Tx, a, b int64) (MatchRecord, error) {
	var rec MatchRecord
	err := tx.QueryRow(ctx, `
SELECT id, profile_a_id, profile_b_id, created_at
FROM rencontre_matches
WHERE profile_a_id = $1 AND profile_b_id = $2
LIMIT 1
`, a, b).Scan(
		&rec.ID,
		&rec.ProfileAID,
		&rec.ProfileBID,
		&rec.CreatedAt,
	)
	if err != nil {
		return MatchRecord{}, fmt.Errorf("get match by pair: %w", err)
	}
	return rec, nil
}

// ListForProfile returns the profile's matches newest first, each joined with
// the counterpart profile for display.
func (r *MatchRepo) ListForProfile(ctx context.Context, profileID int64, limit int) ([]MatchListItem, error) {
	if profileID <= 0 {
		return nil, fmt.Errorf("invalid profile id")
	}
	if limit <= 0 {
		limit = 50
	}
	if r.pool == nil {
		return []MatchListItem{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	m.id,
	p.id,
	p.account_id,
	COALESCE(p.display_name, ''),
	COALESCE(p.gender, ''),
	p.age,
	m.created_at
FROM rencontre_matches m
JOIN rencontre_profiles p
	ON p.id = CASE WHEN m.profile_a_id = $1 THEN m.profile_b_id ELSE m.profile_a_id END
WHERE m.profile_a_id = $1 OR m.profile_b_id = $1
ORDER BY m.created_at DESC, m.id DESC
LIMIT $2
`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	items := make([]MatchListItem, 0, limit)
	for rows.Next() {
		var it MatchListItem
		if err := rows.Scan(
			&it.MatchID,
			&it.CounterpartProfileID,
			&it.CounterpartAccountID,
			&it.CounterpartName,
			&it.CounterpartGender,
			&it.CounterpartAge,
			&it.MatchedAt,
		); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		items = append(items, it)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate matches: %w", rows.Err())
	}

	return items, nil
}
