package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
)

type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, accountID int64, payload []byte) error
}

type Config struct {
	PublishTimeout time.Duration
}

type Dependencies struct {
	Publisher EventPublisher
	Logger    *zap.Logger
}

type Service struct {
	publisher EventPublisher
	logger    *zap.Logger
	cfg       Config
	now       func() time.Time
	newID     func() string
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 2 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Service{
		publisher: deps.Publisher,
		logger:    deps.Logger,
		cfg:       cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// PublishMatch pushes the match toast to both accounts. Delivery is
// fire-and-forget: a failed or offline recipient is logged and dropped, the
// swipe that created the match has already committed and never rolls back
// because of notification problems.
func (s *Service) PublishMatch(_ context.Context, event model.MatchEvent) {
	if s.publisher == nil {
		return
	}
	if event.MatchID <= 0 || event.AccountAID <= 0 || event.AccountBID <= 0 {
		s.logger.Warn("dropping malformed match event",
			zap.Int64("match_id", event.MatchID),
			zap.Int64("account_a_id", event.AccountAID),
			zap.Int64("account_b_id", event.AccountBID))
		return
	}

	payload, err := json.Marshal(model.RealtimeEvent{
		ID:     s.newID(),
		Type:   model.RealtimeEventTypeMatch,
		Match:  event,
		SentAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("marshal match event", zap.Int64("match_id", event.MatchID), zap.Error(err))
		return
	}

	// Detached from the request context: the caller is already done.
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.PublishTimeout)
	defer cancel()

	for _, accountID := range []int64{event.AccountAID, event.AccountBID} {
		if err := s.publisher.PublishAccountEvent(ctx, accountID, payload); err != nil {
			s.logger.Warn("match notification dropped",
				zap.Int64("match_id", event.MatchID),
				zap.Int64("account_id", accountID),
				zap.Error(err))
		}
	}
}
