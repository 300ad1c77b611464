package redisrepo

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EventRepo fans realtime payloads out over per-account pub/sub channels.
// Delivery is fire-and-forget: publishing to a channel nobody subscribes to
// succeeds and the payload is dropped.
type EventRepo struct {
	client *redis.Client
}

func NewEventRepo(client *redis.Client) *EventRepo {
	return &EventRepo{client: client}
}

func accountChannel(accountID int64) string {
	return fmt.Sprintf("rencontre:events:%d", accountID)
}

func (r *EventRepo) PublishAccountEvent(ctx context.Context, accountID int64, payload []byte) error {
	if accountID <= 0 {
		return fmt.Errorf("invalid account id")
	}
	if len(payload) == 0 {
		return fmt.Errorf("empty event payload")
	}
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}

	if err := r.client.Publish(ctx, accountChannel(accountID), payload).Err(); err != nil {
		return fmt.Errorf("publish account event: %w", err)
	}

	return nil
}

type EventStream struct {
	C <-chan []byte

	sub    *redis.PubSub
	cancel context.CancelFunc
}

func (s *EventStream) Close() error {
	s.cancel()
	return s.sub.Close()
}

// SubscribeAccount opens a live stream of the account's realtime payloads.
// The stream carries no history; anything published before the subscription
// is gone.
func (r *EventRepo) SubscribeAccount(ctx context.Context, accountID int64) (*EventStream, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("invalid account id")
	}
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	streamCtx, cancel := context.WithCancel(ctx)
	sub := r.client.Subscribe(streamCtx, accountChannel(accountID))

	if _, err := sub.Receive(streamCtx); err != nil {
		cancel()
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe account events: %w", err)
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		in := sub.Channel()
		for {
			select {
			case <-streamCtx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-streamCtx.Done():
					return
				}
			}
		}
	}()

	return &EventStream{C: out, sub: sub, cancel: cancel}, nil
}
