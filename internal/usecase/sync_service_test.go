package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
)

var syncTestNow = time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return syncTestNow }

func strPtr(v string) *string { return &v }

func seedMatch(t *testing.T, repo match.Repository, externalID string, start time.Time) match.Match {
	t.Helper()
	item, err := repo.Upsert(context.Background(), match.Patch{
		ExternalID: externalID,
		Name:       strPtr("seeded " + externalID),
		Venue:      strPtr("Hagley Oval, Christchurch"),
		StartTime:  &start,
	})
	if err != nil {
		t.Fatalf("seed match %s: %v", externalID, err)
	}
	return item
}

func TestSyncService_ProviderFailureServesStoredSnapshot(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(idgen.NewSequenceGenerator("m"), fixedNow)
	playerRepo := memory.NewPlayerRepository(nil, fixedNow)
	window := 5 * 24 * time.Hour

	stored := []match.Match{
		seedMatch(t, matchRepo, "m-1", syncTestNow.Add(-window)),
		seedMatch(t, matchRepo, "m-2", syncTestNow.Add(-time.Hour)),
		seedMatch(t, matchRepo, "m-3", syncTestNow.Add(48*time.Hour)),
	}
	seedMatch(t, matchRepo, "m-old", syncTestNow.Add(-window-time.Microsecond))

	provider := &stubProvider{matchesErr: fmt.Errorf("%w: status 503", ErrProviderUnavailable)}
	svc := NewSyncService(provider, matchRepo, playerRepo, nil).WithClock(fixedNow)

	got, err := svc.SyncAndFetchMatches(context.Background(), window)
	if err != nil {
		t.Fatalf("expected no error on provider failure, got %v", err)
	}
	if !got.Stale {
		t.Fatalf("expected stale result")
	}
	if len(got.Matches) != 3 {
		t.Fatalf("expected 3 stored matches, got=%d", len(got.Matches))
	}
	for i := range stored {
		if got.Matches[i].ID != stored[i].ID || got.Matches[i].Venue != stored[i].Venue {
			t.Fatalf("position %d: want=%+v got=%+v", i, stored[i], got.Matches[i])
		}
	}
}

func TestSyncService_SkipsMalformedAndUpsertsRest(t *testing.T) {
	t.Parallel()

	matchRepo := memory.NewMatchRepository(nil, fixedNow)
	provider := &stubProvider{matches: []ExternalMatch{
		{ID: "ok-1", Name: "Australia vs England, 2nd Test, Day 2", Teams: []string{"Australia", "England"}, DateTimeGMT: "2025-12-05T04:00:00"},
		{ID: "", Name: "no id"},
		{ID: "no-name"},
		{ID: "ok-2", Name: "India vs South Africa, 3rd ODI", Venue: "ACA-VDCA Cricket Stadium", Status: "Live", DateTimeGMT: "2025-12-05T08:00:00"},
		{ID: "ok-3", Name: "undated"},
	}}
	svc := NewSyncService(provider, matchRepo, memory.NewPlayerRepository(nil, nil), nil).WithClock(fixedNow)

	got, err := svc.SyncAndFetchMatches(context.Background(), 5*24*time.Hour)
	if err != nil {
		t.Fatalf("sync matches: %v", err)
	}
	if got.Stale {
		t.Fatalf("did not expect a stale result")
	}
	if got.Report.SuccessCount != 3 || got.Report.SkippedCount != 2 || got.Report.FailedCount != 0 {
		t.Fatalf("unexpected report: %+v", got.Report)
	}
	if len(got.Matches) != 2 || got.Matches[0].ExternalID != "ok-1" || got.Matches[1].ExternalID != "ok-2" {
		t.Fatalf("unexpected windowed matches: %+v", got.Matches)
	}
	if got.Matches[0].Status != match.DefaultStatus || got.Matches[1].Status != "Live" {
		t.Fatalf("unexpected statuses: %s %s", got.Matches[0].Status, got.Matches[1].Status)
	}
}

func TestSyncService_RejectsNonPositiveWindow(t *testing.T) {
	t.Parallel()

	svc := NewSyncService(&stubProvider{}, memory.NewMatchRepository(nil, nil), memory.NewPlayerRepository(nil, nil), nil)
	if _, err := svc.SyncAndFetchMatches(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSyncService_ImportContinuesPastFailures(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		players: map[string]ExternalPlayer{
			"id-1": {ID: "id-1", Name: "Steve Smith", Country: "Australia", Role: "Batsman"},
			"id-2": {ID: "id-2", Name: "Pat Cummins", Country: "Australia", Role: "Bowler"},
			"id-4": {ID: "id-4", Name: "Joe Root", Country: "England", Role: "Batting Allrounder"},
			"id-5": {ID: "id-5", Name: "Jos Buttler", Country: "England", Role: "WK-Batsman"},
		},
		playerErr: map[string]error{
			"id-3": fmt.Errorf("%w: timeout", ErrProviderUnavailable),
		},
	}
	playerRepo := memory.NewPlayerRepository(nil, nil)
	svc := NewSyncService(provider, memory.NewMatchRepository(nil, nil), playerRepo, nil)

	got, err := svc.SyncPlayersByIDs(context.Background(), []string{"id-1", "id-2", "id-3", "id-4", "id-5"})
	if err != nil {
		t.Fatalf("import players: %v", err)
	}

	if got.Count != 4 || len(got.Players) != 4 {
		t.Fatalf("expected 4 imported players, got count=%d len=%d", got.Count, len(got.Players))
	}
	wantNames := []string{"Steve Smith", "Pat Cummins", "Joe Root", "Jos Buttler"}
	for i, name := range wantNames {
		if got.Players[i].Name != name {
			t.Fatalf("position %d: want=%s got=%s", i, name, got.Players[i].Name)
		}
	}
	if len(got.SkippedIDs) != 1 || got.SkippedIDs[0] != "id-3" {
		t.Fatalf("expected id-3 skipped, got %v", got.SkippedIDs)
	}
	if got.Report.FailedCount != 1 || got.Report.Items[2].Status != ItemStatusFailed {
		t.Fatalf("unexpected report: %+v", got.Report)
	}

	wantCalls := []string{"id-1", "id-2", "id-3", "id-4", "id-5"}
	if fmt.Sprint(provider.playerCalls) != fmt.Sprint(wantCalls) {
		t.Fatalf("expected sequential calls in order, got %v", provider.playerCalls)
	}
}

func TestSyncService_ImportReportsUndecodablePayloadAsSkipped(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		players: map[string]ExternalPlayer{
			"id-1": {ID: "id-1", Name: "Shaheen Afridi", Country: "Pakistan", Role: "Bowler"},
		},
		playerErr: map[string]error{
			"id-2": fmt.Errorf("%w: player=id-2: unexpected end of JSON input", ErrMalformedItem),
			"id-3": fmt.Errorf("%w: status 502", ErrProviderUnavailable),
		},
	}
	svc := NewSyncService(provider, memory.NewMatchRepository(nil, nil), memory.NewPlayerRepository(nil, nil), nil)

	got, err := svc.SyncPlayersByIDs(context.Background(), []string{"id-1", "id-2", "id-3"})
	if err != nil {
		t.Fatalf("import players: %v", err)
	}
	if got.Report.SuccessCount != 1 || got.Report.SkippedCount != 1 || got.Report.FailedCount != 1 {
		t.Fatalf("unexpected report counts: %+v", got.Report)
	}
	if got.Report.Items[1].Status != ItemStatusSkipped || got.Report.Items[2].Status != ItemStatusFailed {
		t.Fatalf("unexpected item statuses: %+v", got.Report.Items)
	}
	if fmt.Sprint(got.SkippedIDs) != fmt.Sprint([]string{"id-2", "id-3"}) {
		t.Fatalf("unexpected skipped ids: %v", got.SkippedIDs)
	}
}

func TestSyncService_ImportIsIdempotent(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{players: map[string]ExternalPlayer{
		"id-1": {ID: "id-1", Name: "Kagiso Rabada", Country: "South Africa", Role: "Bowler"},
		"id-2": {Name: "Nameless Id"},
		"id-3": {ID: "id-3"},
	}}
	playerRepo := memory.NewPlayerRepository(nil, nil)
	svc := NewSyncService(provider, memory.NewMatchRepository(nil, nil), playerRepo, nil)

	for i := 0; i < 2; i++ {
		got, err := svc.SyncPlayersByIDs(context.Background(), []string{" id-1 ", "", "id-2", "id-3"})
		if err != nil {
			t.Fatalf("import run %d: %v", i, err)
		}
		if got.Count != 2 || got.Report.SkippedCount != 1 {
			t.Fatalf("run %d: unexpected result %+v", i, got.Report)
		}
	}

	items, _ := playerRepo.List(context.Background())
	if len(items) != 2 {
		t.Fatalf("expected 2 stored players after repeated import, got=%d", len(items))
	}
	for _, item := range items {
		if item.Name == "Nameless Id" && item.ExternalID != "id-2" {
			t.Fatalf("expected requested id to back-fill external id, got %q", item.ExternalID)
		}
	}
}

func TestSyncService_ImportRequiresIDs(t *testing.T) {
	t.Parallel()

	svc := NewSyncService(&stubProvider{}, memory.NewMatchRepository(nil, nil), memory.NewPlayerRepository(nil, nil), nil)
	if _, err := svc.SyncPlayersByIDs(context.Background(), []string{" ", ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
