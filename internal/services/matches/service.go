package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
)

var ErrValidation = errors.New("validation error")

type ProfileStore interface {
	GetByAccount(ctx context.Context, accountID int64) (pgrepo.ProfileRecord, error)
}

type MatchStore interface {
	ListForProfile(ctx context.Context, profileID int64, limit int) ([]pgrepo.MatchListItem, error)
}

type Summary struct {
	MatchID              int64
	CounterpartProfileID int64
	CounterpartName      string
	CounterpartGender    string
	CounterpartAge       int
	MatchedAt            time.Time
}

type Config struct {
	PageSize int
}

type Dependencies struct {
	ProfileStore ProfileStore
	MatchStore   MatchStore
}

type Service struct {
	profileStore ProfileStore
	matchStore   MatchStore
	cfg          Config
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}

	return &Service{
		profileStore: deps.ProfileStore,
		matchStore:   deps.MatchStore,
		cfg:          cfg,
	}
}

func (s *Service) List(ctx context.Context, accountID int64, limit int) ([]Summary, error) {
	if accountID <= 0 {
		return nil, ErrValidation
	}
	if s.profileStore == nil || s.matchStore == nil {
		return nil, fmt.Errorf("match dependencies are not configured")
	}

	if limit <= 0 || limit > s.cfg.PageSize {
		limit = s.cfg.PageSize
	}

	profile, err := s.profileStore.GetByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return []Summary{}, nil
		}
		return nil, err
	}

	items, err := s.matchStore.ListForProfile(ctx, profile.ID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(items))
	for _, it := range items {
		out = append(out, Summary{
			MatchID:              it.MatchID,
			CounterpartProfileID: it.CounterpartProfileID,
			CounterpartName:      it.CounterpartName,
			CounterpartGender:    it.CounterpartGender,
			CounterpartAge:       it.CounterpartAge,
			MatchedAt:            it.MatchedAt,
		})
	}

	return out, nil
}
