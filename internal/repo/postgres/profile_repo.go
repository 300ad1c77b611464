package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("rencontre profile not found")

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

type ProfileRecord struct {
	ID              int64
	AccountID       int64
	DisplayName     string
	Gender          string
	Age             int
	CountryID       *int64
	CityID          *int64
	EncounterTypeID *int64
	Bio             string
	CreatedAt       time.Time
}

type ProfileListQuery struct {
	ExcludeProfileIDs []int64
	ExcludeAccountID  int64
}

const profileColumns = `
	id,
	account_id,
	COALESCE(display_name, ''),
	COALESCE(gender, ''),
	age,
	country_id,
	city_id,
	encounter_type_id,
	COALESCE(bio, ''),
	created_at`

func (r *ProfileRepo) GetByID(ctx context.Context, profileID int64) (ProfileRecord, error) {
	if profileID <= 0 {
		return ProfileRecord{}, fmt.Errorf("invalid profile id")
	}
	if r.pool == nil {
		return ProfileRecord{}, ErrProfileNotFound
	}

	row := r.pool.QueryRow(ctx, `
SELECT `+profileColumns+`
FROM rencontre_profiles
WHERE id = $1
LIMIT 1
`, profileID)

	rec, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileRecord{}, ErrProfileNotFound
		}
		return ProfileRecord{}, fmt.Errorf("get profile by id: %w", err)
	}

	return rec, nil
}

func (r *ProfileRepo) GetByAccount(ctx context.Context, accountID int64) (ProfileRecord, error) {
	if accountID <= 0 {
		return ProfileRecord{}, fmt.Errorf("invalid account id")
	}
	if r.pool == nil {
		return ProfileRecord{}, ErrProfileNotFound
	}

	row := r.pool.QueryRow(ctx, `
SELECT `+profileColumns+`
FROM rencontre_profiles
WHERE account_id = $1
LIMIT 1
`, accountID)

	rec, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProfileRecord{}, ErrProfileNotFound
		}
		return ProfileRecord{}, fmt.Errorf("get profile by account: %w", err)
	}

	return rec, nil
}

// ListProfiles returns every profile outside the exclusion set and the
// excluded account, newest first. Ordering is deterministic for a fixed
// snapshot so that discovery pagination is reproducible.
func (r *ProfileRepo) ListProfiles(ctx context.Context, q ProfileListQuery) ([]ProfileRecord, error) {
	if q.ExcludeAccountID <= 0 {
		return nil, fmt.Errorf("invalid exclude account id")
	}
	if r.pool == nil {
		return []ProfileRecord{}, nil
	}

	excluded := q.ExcludeProfileIDs
	if excluded == nil {
		excluded = []int64{}
	}

	rows, err := r.pool.Query(ctx, `
SELECT `+profileColumns+`
FROM rencontre_profiles
WHERE
	account_id <> $1
	AND NOT (id = ANY($2::bigint[]))
ORDER BY created_at DESC, id DESC
`, q.ExcludeAccountID, excluded)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	items := make([]ProfileRecord, 0, 64)
	for rows.Next() {
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		items = append(items, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate profiles: %w", rows.Err())
	}

	return items, nil
}

func scanProfile(row pgx.Row) (ProfileRecord, error) {
	var rec ProfileRecord
	err := row.Scan(
		&rec.ID,
		&rec.AccountID,
		&rec.DisplayName,
		&rec.Gender,
		&rec.Age,
		&rec.CountryID,
		&rec.CityID,
		&rec.EncounterTypeID,
		&rec.Bio,
		&rec.CreatedAt,
	)
	if err != nil {
		return ProfileRecord{}, err
	}
	return rec, nil
}
