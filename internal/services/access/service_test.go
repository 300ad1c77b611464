package access

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
	redisrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/redis"
)

type grantStoreStub struct {
	allowed map[string]bool
	calls   int
}

func (s *grantStoreStub) HasGrant(_ context.Context, _ int64, grantKey string) (bool, error) {
	s.calls++
	return s.allowed[grantKey], nil
}

func newTestCache(t *testing.T) *redisrepo.FeatureCacheRepo {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisrepo.NewFeatureCacheRepo(client)
}

func TestCanActResolvesGrant(t *testing.T) {
	grants := &grantStoreStub{allowed: map[string]bool{"rencontre:swipe": true}}
	svc := NewService(Dependencies{Grants: grants, Cache: newTestCache(t)}, Config{CacheTTL: time.Minute})

	allowed, err := svc.CanAct(context.Background(), 101, enums.FeatureRencontre, enums.ActionSwipe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected the grant to allow the action")
	}

	denied, err := svc.CanAct(context.Background(), 101, enums.FeatureRencontre, enums.ActionCreate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if denied {
		t.Fatalf("expected the missing grant to deny the action")
	}
}

func TestCanActUsesCache(t *testing.T) {
	grants := &grantStoreStub{allowed: map[string]bool{"rencontre:view": true}}
	svc := NewService(Dependencies{Grants: grants, Cache: newTestCache(t)}, Config{CacheTTL: time.Minute})

	for i := 0; i < 3; i++ {
		allowed, err := svc.CanAct(context.Background(), 101, enums.FeatureRencontre, enums.ActionView)
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("expected allow on call %d", i)
		}
	}

	if grants.calls != 1 {
		t.Fatalf("grant store must be hit once, got %d", grants.calls)
	}
}

func TestCanActWithoutCache(t *testing.T) {
	grants := &grantStoreStub{allowed: map[string]bool{"rencontre:view": true}}
	svc := NewService(Dependencies{Grants: grants}, Config{})

	allowed, err := svc.CanAct(context.Background(), 101, enums.FeatureRencontre, enums.ActionView)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected allow without a cache")
	}
}

func TestCanActValidation(t *testing.T) {
	svc := NewService(Dependencies{Grants: &grantStoreStub{}}, Config{})

	if _, err := svc.CanAct(context.Background(), 0, enums.FeatureRencontre, enums.ActionView); err != ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
