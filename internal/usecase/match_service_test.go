package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/infrastructure/repository/memory"
)

func TestMatchService_SeedDefaultFixturesIsIdempotent(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(nil, nil)
	svc := NewMatchService(NewSyncService(&stubProvider{}, matchRepo, nil, nil), matchRepo, 0, nil)

	for i := 0; i < 2; i++ {
		report, err := svc.SeedFixtures(context.Background(), nil)
		if err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
		if report.SuccessCount != 25 || report.FailedCount != 0 {
			t.Fatalf("seed run %d: unexpected report %+v", i, report)
		}
	}

	items, err := matchRepo.ListSince(context.Background(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(items) != 25 {
		t.Fatalf("expected 25 stored fixtures, got=%d", len(items))
	}
	first := items[0]
	if first.ExternalID != "manual-ashes-warmup-day1" || first.Status != "Upcoming" || first.TeamA != "Prime Ministers XI" {
		t.Fatalf("unexpected first fixture: %+v", first)
	}
	if last := items[len(items)-1]; last.ExternalID != "manual-ashes-2nd-test-day5" {
		t.Fatalf("unexpected last fixture: %s", last.ExternalID)
	}
}

func TestMatchService_SeedCustomFixturesSkipsMalformed(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(nil, nil)
	svc := NewMatchService(NewSyncService(&stubProvider{}, matchRepo, nil, nil), matchRepo, 0, nil)

	report, err := svc.SeedFixtures(context.Background(), []ExternalMatch{
		{ID: "manual-1", Name: "Nepal vs Oman", Status: "Live", DateTimeGMT: "2025-12-10T06:00:00Z"},
		{ID: "manual-2"},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if report.SuccessCount != 1 || report.SkippedCount != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestMatchService_WindowDays(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(nil, nil)
	now := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
	start := now.Add(-4 * 24 * time.Hour)
	seedMatch(t, matchRepo, "four-days-ago", start)

	syncer := NewSyncService(&stubProvider{}, matchRepo, nil, nil).WithClock(func() time.Time { return now })
	svc := NewMatchService(syncer, matchRepo, 0, nil)

	if _, err := svc.GetCachedOrFreshMatches(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative days, got %v", err)
	}
	for _, days := range []int{MaxWindowDays + 1, 106752, 213504} {
		if _, err := svc.GetCachedOrFreshMatches(context.Background(), days); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for days=%d, got %v", days, err)
		}
	}
	if got, err := svc.GetCachedOrFreshMatches(context.Background(), MaxWindowDays); err != nil || len(got.Matches) != 1 {
		t.Fatalf("max window: got=%d err=%v", len(got.Matches), err)
	}

	got, err := svc.GetCachedOrFreshMatches(context.Background(), 0)
	if err != nil {
		t.Fatalf("default window: %v", err)
	}
	if len(got.Matches) != 1 {
		t.Fatalf("expected default 5 day window to include match, got=%d", len(got.Matches))
	}

	got, err = svc.GetCachedOrFreshMatches(context.Background(), 2)
	if err != nil {
		t.Fatalf("2 day window: %v", err)
	}
	if len(got.Matches) != 0 {
		t.Fatalf("expected 2 day window to exclude match, got=%d", len(got.Matches))
	}
}
