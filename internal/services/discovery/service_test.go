package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/rules"
	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
)

type profileStoreStub struct {
	profiles  []pgrepo.ProfileRecord
	lastQuery pgrepo.ProfileListQuery
}

func (s *profileStoreStub) GetByAccount(_ context.Context, accountID int64) (pgrepo.ProfileRecord, error) {
	for _, p := range s.profiles {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return pgrepo.ProfileRecord{}, pgrepo.ErrProfileNotFound
}

func (s *profileStoreStub) ListProfiles(_ context.Context, q pgrepo.ProfileListQuery) ([]pgrepo.ProfileRecord, error) {
	s.lastQuery = q

	excluded := make(map[int64]bool, len(q.ExcludeProfileIDs))
	for _, id := range q.ExcludeProfileIDs {
		excluded[id] = true
	}

	out := make([]pgrepo.ProfileRecord, 0, len(s.profiles))
	for _, p := range s.profiles {
		if p.AccountID == q.ExcludeAccountID || excluded[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type swipeHistoryStub struct {
	targets map[int64][]int64
}

func (s *swipeHistoryStub) ListTargetIDsByLiker(_ context.Context, likerProfileID int64) ([]int64, error) {
	return s.targets[likerProfileID], nil
}

func ptrInt64(v int64) *int64 { return &v }

func fixtureProfiles() []pgrepo.ProfileRecord {
	createdAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return []pgrepo.ProfileRecord{
		{ID: 1, AccountID: 100, DisplayName: "Viewer", Gender: "Homme", Age: 30, CountryID: ptrInt64(1), CreatedAt: createdAt},
		{ID: 2, AccountID: 200, DisplayName: "P1", Gender: "Femme", Age: 24, CountryID: ptrInt64(1), CreatedAt: createdAt.Add(time.Hour)},
		{ID: 3, AccountID: 300, DisplayName: "P2", Gender: "Femme", Age: 40, CountryID: ptrInt64(2), CreatedAt: createdAt.Add(2 * time.Hour)},
		{ID: 4, AccountID: 400, DisplayName: "P3", Gender: "Homme", Age: 25, CountryID: ptrInt64(1), CreatedAt: createdAt.Add(3 * time.Hour)},
	}
}

func TestNextFiltersByCriteria(t *testing.T) {
	profiles := &profileStoreStub{profiles: fixtureProfiles()}
	history := &swipeHistoryStub{targets: map[int64][]int64{}}
	svc := NewService(Dependencies{ProfileStore: profiles, SwipeHistory: history}, Config{})

	criteria := rules.Criteria{
		Gender:    "Femme",
		CountryID: ptrInt64(1),
		AgeMin:    20,
		AgeMax:    30,
	}

	page, err := svc.Next(context.Background(), 100, criteria, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected one candidate, got %d", len(page))
	}
	if page[0].ID != 2 {
		t.Fatalf("expected profile 2, got %d", page[0].ID)
	}
}

func TestNextExcludesSwipedProfiles(t *testing.T) {
	profiles := &profileStoreStub{profiles: fixtureProfiles()}
	// Both a like and a pass remove the target from the pool.
	history := &swipeHistoryStub{targets: map[int64][]int64{1: {2, 4}}}
	svc := NewService(Dependencies{ProfileStore: profiles, SwipeHistory: history}, Config{})

	page, err := svc.Next(context.Background(), 100, rules.Criteria{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected one candidate, got %d", len(page))
	}
	if page[0].ID != 3 {
		t.Fatalf("expected profile 3, got %d", page[0].ID)
	}

	got := map[int64]bool{}
	for _, id := range profiles.lastQuery.ExcludeProfileIDs {
		got[id] = true
	}
	if !got[1] || !got[2] || !got[4] {
		t.Fatalf("exclusion set must contain own and swiped profiles: %v", profiles.lastQuery.ExcludeProfileIDs)
	}
}

func TestNextWithoutProfileReturnsEmptyPage(t *testing.T) {
	profiles := &profileStoreStub{profiles: fixtureProfiles()}
	history := &swipeHistoryStub{targets: map[int64][]int64{}}
	svc := NewService(Dependencies{ProfileStore: profiles, SwipeHistory: history}, Config{})

	page, err := svc.Next(context.Background(), 999, rules.Criteria{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d candidates", len(page))
	}
}

func TestNextLimitAndDeterminism(t *testing.T) {
	profiles := &profileStoreStub{profiles: fixtureProfiles()}
	history := &swipeHistoryStub{targets: map[int64][]int64{}}
	svc := NewService(Dependencies{ProfileStore: profiles, SwipeHistory: history}, Config{PageSize: 2, MaxPageSize: 2})

	first, err := svc.Next(context.Background(), 100, rules.Criteria{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected the default page size, got %d", len(first))
	}

	second, err := svc.Next(context.Background(), 100, rules.Criteria{}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("limit must be capped at the max page size, got %d", len(second))
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same snapshot must yield the same order: %v vs %v", first, second)
		}
	}
}
