package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
)

type publisherStub struct {
	calls    []int64
	payloads [][]byte
	failFor  map[int64]error
}

func (s *publisherStub) PublishAccountEvent(_ context.Context, accountID int64, payload []byte) error {
	s.calls = append(s.calls, accountID)
	s.payloads = append(s.payloads, payload)
	if err, ok := s.failFor[accountID]; ok {
		return err
	}
	return nil
}

func matchEvent() model.MatchEvent {
	return model.MatchEvent{
		MatchID:    7,
		ProfileAID: 11,
		ProfileBID: 22,
		AccountAID: 101,
		AccountBID: 202,
		CreatedAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishMatchNotifiesBothAccounts(t *testing.T) {
	pub := &publisherStub{}
	svc := NewService(Dependencies{Publisher: pub}, Config{})

	svc.PublishMatch(context.Background(), matchEvent())

	if len(pub.calls) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(pub.calls))
	}
	if pub.calls[0] != 101 || pub.calls[1] != 202 {
		t.Fatalf("unexpected recipients: %v", pub.calls)
	}

	var evt model.RealtimeEvent
	if err := json.Unmarshal(pub.payloads[0], &evt); err != nil {
		t.Fatalf("payload must be valid JSON: %v", err)
	}
	if evt.Type != model.RealtimeEventTypeMatch {
		t.Fatalf("unexpected event type: %s", evt.Type)
	}
	if evt.ID == "" {
		t.Fatalf("event id must be set")
	}
	if evt.Match.MatchID != 7 || evt.Match.AccountAID != 101 || evt.Match.AccountBID != 202 {
		t.Fatalf("unexpected match payload: %+v", evt.Match)
	}
}

func TestPublishMatchSwallowsDeliveryFailure(t *testing.T) {
	pub := &publisherStub{failFor: map[int64]error{101: errors.New("subscriber gone")}}
	svc := NewService(Dependencies{Publisher: pub}, Config{})

	svc.PublishMatch(context.Background(), matchEvent())

	// The first delivery failing must not stop the second one.
	if len(pub.calls) != 2 {
		t.Fatalf("expected both deliveries attempted, got %d", len(pub.calls))
	}
}

func TestPublishMatchDropsMalformedEvent(t *testing.T) {
	pub := &publisherStub{}
	svc := NewService(Dependencies{Publisher: pub}, Config{})

	svc.PublishMatch(context.Background(), model.MatchEvent{MatchID: 0})

	if len(pub.calls) != 0 {
		t.Fatalf("malformed event must not be delivered: %v", pub.calls)
	}
}
