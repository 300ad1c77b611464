package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
)

type ReferenceRepo struct {
	pool *pgxpool.Pool
}

func NewReferenceRepo(pool *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

func (r *ReferenceRepo) ListCountries(ctx context.Context) ([]model.Country, error) {
	if r.pool == nil {
		return []model.Country{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name
FROM countries
ORDER BY name ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	items := make([]model.Country, 0, 32)
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		items = append(items, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate countries: %w", rows.Err())
	}

	return items, nil
}

func (r *ReferenceRepo) ListCitiesByCountry(ctx context.Context, countryID int64) ([]model.City, error) {
	if countryID <= 0 {
		return nil, fmt.Errorf("invalid country id")
	}
	if r.pool == nil {
		return []model.City{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, country_id, name
FROM cities
WHERE country_id = $1
ORDER BY name ASC
`, countryID)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	items := make([]model.City, 0, 32)
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.CountryID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		items = append(items, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate cities: %w", rows.Err())
	}

	return items, nil
}

func (r *ReferenceRepo) ListEncounterTypes(ctx context.Context) ([]model.EncounterType, error) {
	if r.pool == nil {
		return []model.EncounterType{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name
FROM encounter_types
ORDER BY name ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list encounter types: %w", err)
	}
	defer rows.Close()

	items := make([]model.EncounterType, 0, 16)
	for rows.Next() {
		var t model.EncounterType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan encounter type: %w", err)
		}
		items = append(items, t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate encounter types: %w", rows.Err())
	}

	return items, nil
}
