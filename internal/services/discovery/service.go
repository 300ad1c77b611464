package discovery

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/rules"
	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
)

var ErrValidation = errors.New("validation error")

type ProfileStore interface {
	GetByAccount(ctx context.Context, accountID int64) (pgrepo.ProfileRecord, error)
	ListProfiles(ctx context.Context, q pgrepo.ProfileListQuery) ([]pgrepo.ProfileRecord, error)
}

type SwipeHistory interface {
	ListTargetIDsByLiker(ctx context.Context, likerProfileID int64) ([]int64, error)
}

type Config struct {
	PageSize    int
	MaxPageSize int
}

type Dependencies struct {
	ProfileStore ProfileStore
	SwipeHistory SwipeHistory
	Logger       *zap.Logger
}

type Service struct {
	profileStore ProfileStore
	swipeHistory SwipeHistory
	logger       *zap.Logger
	cfg          Config
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		profileStore: deps.ProfileStore,
		swipeHistory: deps.SwipeHistory,
		logger:       deps.Logger,
		cfg:          cfg,
	}
}

// Next returns the account's next discovery page: profiles the account has
// never swiped, excluding its own, filtered by the criteria. An account
// without a dating profile gets an empty page rather than an error.
func (s *Service) Next(ctx context.Context, accountID int64, criteria rules.Criteria, limit int) ([]model.DatingProfile, error) {
	if accountID <= 0 {
		return nil, ErrValidation
	}
	if s.profileStore == nil || s.swipeHistory == nil {
		return nil, fmt.Errorf("discovery dependencies are not configured")
	}

	if limit <= 0 {
		limit = s.cfg.PageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	actor, err := s.profileStore.GetByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgrepo.ErrProfileNotFound) {
			return []model.DatingProfile{}, nil
		}
		return nil, err
	}

	swiped, err := s.swipeHistory.ListTargetIDsByLiker(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	excluded := make([]int64, 0, len(swiped)+1)
	excluded = append(excluded, swiped...)
	excluded = append(excluded, actor.ID)

	records, err := s.profileStore.ListProfiles(ctx, pgrepo.ProfileListQuery{
		ExcludeProfileIDs: excluded,
		ExcludeAccountID:  accountID,
	})
	if err != nil {
		return nil, err
	}

	criteria = rules.NormalizeCriteria(criteria)

	page := make([]model.DatingProfile, 0, limit)
	for _, rec := range records {
		candidate := toDatingProfile(rec)
		if !rules.MatchesFilter(candidate, criteria) {
			continue
		}
		page = append(page, candidate)
		if len(page) >= limit {
			break
		}
	}

	return page, nil
}

func toDatingProfile(rec pgrepo.ProfileRecord) model.DatingProfile {
	return model.DatingProfile{
		ID:              rec.ID,
		AccountID:       rec.AccountID,
		DisplayName:     rec.DisplayName,
		Gender:          rec.Gender,
		Age:             rec.Age,
		CountryID:       rec.CountryID,
		CityID:          rec.CityID,
		EncounterTypeID: rec.EncounterTypeID,
		Bio:             rec.Bio,
		CreatedAt:       rec.CreatedAt,
	}
}
