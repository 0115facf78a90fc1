package match

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPatchApply_PartialOverlayKeepsVenue(t *testing.T) {
	t.Parallel()

	venue := "Hagley Oval, Christchurch"
	stored := Patch{ExternalID: "m-1", Venue: &venue}.New("id-1", time.Now())

	live := "Live"
	Patch{ExternalID: "m-1", Status: &live}.Apply(&stored)

	if stored.Status != "Live" {
		t.Fatalf("expected status Live, got=%s", stored.Status)
	}
	if stored.Venue != venue {
		t.Fatalf("expected venue to be kept, got=%q", stored.Venue)
	}
}

func TestPatchApply_ClearStartTime(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 12, 9, 14, 0, 0, 0, time.UTC)
	stored := Patch{ExternalID: "m-3", StartTime: &start}.New("id-3", time.Now())

	Patch{ExternalID: "m-3", ClearStartTime: true}.Apply(&stored)
	if stored.StartTime != nil {
		t.Fatalf("expected start time cleared, got %v", stored.StartTime)
	}

	Patch{ExternalID: "m-3", StartTime: &start, ClearStartTime: true}.Apply(&stored)
	if stored.StartTime == nil || !stored.StartTime.Equal(start) {
		t.Fatalf("a present start time must win over the clear flag, got %v", stored.StartTime)
	}
}

func TestPatchNew_Defaults(t *testing.T) {
	t.Parallel()

	got := Patch{ExternalID: "m-2"}.New("id-2", time.Now())
	if got.Status != DefaultStatus {
		t.Fatalf("expected default status, got=%s", got.Status)
	}
	if got.Teams == nil || len(got.Teams) != 0 {
		t.Fatalf("expected empty teams, got=%v", got.Teams)
	}
	if string(got.Score) != "[]" {
		t.Fatalf("expected empty score array, got=%s", got.Score)
	}
}

func TestPatchValidate(t *testing.T) {
	t.Parallel()

	if err := (Patch{}).Validate(); err == nil {
		t.Fatalf("expected error without external id")
	}
	if err := (Patch{ExternalID: "m", Score: json.RawMessage("{")}).Validate(); err == nil {
		t.Fatalf("expected error for invalid score JSON")
	}
}

func TestInWindow_InclusiveBound(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 11, 24, 12, 0, 0, 0, time.UTC)
	atBound := since
	before := since.Add(-time.Microsecond)

	if !(Match{StartTime: &atBound}).InWindow(since) {
		t.Fatalf("expected match at the bound to be included")
	}
	if (Match{StartTime: &before}).InWindow(since) {
		t.Fatalf("expected match before the bound to be excluded")
	}
	if (Match{}).InWindow(since) {
		t.Fatalf("expected match without start time to be excluded")
	}
}

func TestPublicID(t *testing.T) {
	t.Parallel()

	if got := (Match{ID: "id", ExternalID: "ext"}).PublicID(); got != "ext" {
		t.Fatalf("expected external id, got=%s", got)
	}
	if got := (Match{ID: "id"}).PublicID(); got != "id" {
		t.Fatalf("expected store id, got=%s", got)
	}
}
