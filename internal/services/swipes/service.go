package swipes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnsupportedKind    = errors.New("unsupported swipe kind")
	ErrInvalidSwipeTarget = errors.New("invalid swipe target")
)

type ProfileStore interface {
	GetByID(ctx context.Context, profileID int64) (pgrepo.ProfileRecord, error)
	GetByAccount(ctx context.Context, accountID int64) (pgrepo.ProfileRecord, error)
}

type SwipeStore interface {
	Insert(ctx context.Context, tx pgx.Tx, likerProfileID, targetProfileID int64, kind enums.SwipeKind, now time.Time) (pgrepo.SwipeRecord, bool, error)
	LikeExists(ctx context.Context, tx pgx.Tx, likerProfileID, targetProfileID int64) (bool, error)
}

type MatchStore interface {
	CreateCanonical(ctx context.Context, tx pgx.Tx, profileID, otherProfileID int64, now time.Time) (pgrepo.MatchRecord, bool, error)
}

type MatchEvents interface {
	PublishMatch(ctx context.Context, event model.MatchEvent)
}

type Outcome struct {
	Swipe     model.SwipeAction
	Duplicate bool
	Match     *model.Match
}

type Dependencies struct {
	Pool         *pgxpool.Pool
	ProfileStore ProfileStore
	SwipeStore   SwipeStore
	MatchStore   MatchStore
	Events       MatchEvents
	Logger       *zap.Logger
}

type Service struct {
	pool         *pgxpool.Pool
	profileStore ProfileStore
	swipeStore   SwipeStore
	matchStore   MatchStore
	events       MatchEvents
	logger       *zap.Logger
	now          func() time.Time
	runTx        func(ctx context.Context, pool *pgxpool.Pool, fn func(context.Context, pgx.Tx) error) error
}

func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		pool:         deps.Pool,
		profileStore: deps.ProfileStore,
		swipeStore:   deps.SwipeStore,
		matchStore:   deps.MatchStore,
		events:       deps.Events,
		logger:       deps.Logger,
		now:          time.Now,
		runTx:        pgrepo.WithTx,
	}
}

// Record stores one swipe and, when it completes a mutual like, creates the
// match for the pair. The whole write path runs in a single transaction so
// that two accounts liking each other concurrently resolve through the match
// uniqueness constraint: exactly one of them observes Match != nil.
//
// A repeated swipe on the same target is acknowledged as Duplicate without a
// new row and without re-running match detection.
func (s *Service) Record(ctx context.Context, accountID, targetProfileID int64, kind string) (Outcome, error) {
	if accountID <= 0 || targetProfileID <= 0 {
		return Outcome{}, ErrValidation
	}

	swipeKind, ok := enums.ParseSwipeKind(kind)
	if !ok {
		return Outcome{}, ErrUnsupportedKind
	}

	if s.profileStore == nil || s.swipeStore == nil || s.matchStore == nil {
		return Outcome{}, fmt.Errorf("swipe dependencies are not configured")
	}

	actor, err := s.profileStore.GetByAccount(ctx, accountID)
	if err != nil {
		return Outcome{}, err
	}

	target, err := s.profileStore.GetByID(ctx, targetProfileID)
	if err != nil {
		return Outcome{}, err
	}
	if target.ID == actor.ID || target.AccountID == actor.AccountID {
		return Outcome{}, ErrInvalidSwipeTarget
	}

	now := s.now().UTC()

	var outcome Outcome
	if err := s.runTx(ctx, s.pool, func(txCtx context.Context, tx pgx.Tx) error {
		rec, created, err := s.swipeStore.Insert(txCtx, tx, actor.ID, target.ID, swipeKind, now)
		if err != nil {
			return err
		}

		outcome.Swipe = model.SwipeAction{
			ID:              rec.ID,
			LikerProfileID:  rec.LikerProfileID,
			TargetProfileID: rec.TargetProfileID,
			Kind:            rec.Kind,
			CreatedAt:       rec.CreatedAt,
		}
		if !created {
			outcome.Duplicate = true
			return nil
		}
		if swipeKind != enums.SwipeKindLike {
			return nil
		}

		reciprocal, err := s.swipeStore.LikeExists(txCtx, tx, target.ID, actor.ID)
		if err != nil {
			return err
		}
		if !reciprocal {
			return nil
		}

		matchRec, matchCreated, err := s.matchStore.CreateCanonical(txCtx, tx, actor.ID, target.ID, now)
		if err != nil {
			return err
		}
		if !matchCreated {
			// The concurrent mutual swipe already created it; that writer
			// owns the notification.
			s.logger.Debug("match already created by concurrent swipe",
				zap.Int64("profile_a_id", matchRec.ProfileAID),
				zap.Int64("profile_b_id", matchRec.ProfileBID))
			return nil
		}

		outcome.Match = &model.Match{
			ID:         matchRec.ID,
			ProfileAID: matchRec.ProfileAID,
			ProfileBID: matchRec.ProfileBID,
			CreatedAt:  matchRec.CreatedAt,
		}
		return nil
	}); err != nil {
		return Outcome{}, err
	}

	if outcome.Match != nil && s.events != nil {
		accountA, accountB := actor.AccountID, target.AccountID
		if outcome.Match.ProfileAID != actor.ID {
			accountA, accountB = target.AccountID, actor.AccountID
		}
		s.events.PublishMatch(ctx, model.MatchEvent{
			MatchID:    outcome.Match.ID,
			ProfileAID: outcome.Match.ProfileAID,
			ProfileBID: outcome.Match.ProfileBID,
			AccountAID: accountA,
			AccountBID: accountB,
			CreatedAt:  outcome.Match.CreatedAt,
		})
	}

	return outcome, nil
}
