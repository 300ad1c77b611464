package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	ListCitiesByCountry(ctx context.Context, countryID int64) ([]model.City, error)
	ListEncounterTypes(ctx context.Context) ([]model.EncounterType, error)
}

type Options struct {
	Countries      []model.Country
	EncounterTypes []model.EncounterType
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Options returns the static filter option lists in one call.
func (s *Service) Options(ctx context.Context) (Options, error) {
	if s.store == nil {
		return Options{}, fmt.Errorf("reference store is not configured")
	}

	countries, err := s.store.ListCountries(ctx)
	if err != nil {
		return Options{}, err
	}

	types, err := s.store.ListEncounterTypes(ctx)
	if err != nil {
		return Options{}, err
	}

	return Options{Countries: countries, EncounterTypes: types}, nil
}

func (s *Service) Cities(ctx context.Context, countryID int64) ([]model.City, error) {
	if countryID <= 0 {
		return nil, ErrValidation
	}
	if s.store == nil {
		return nil, fmt.Errorf("reference store is not configured")
	}

	return s.store.ListCitiesByCountry(ctx, countryID)
}
