package postgres

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
)

func TestBuildMatchUpsertQuery_OnlyOverwritesPresentColumns(t *testing.T) {
	t.Parallel()

	status := "Live"
	patch := match.Patch{ExternalID: "ext-1", Status: &status}
	row := patch.New("id-1", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	query, args := buildMatchUpsertQuery(row, matchPatchColumns(patch))

	if !strings.HasPrefix(query, "INSERT INTO matches (id, external_id, name, teams") {
		t.Fatalf("unexpected insert prefix: %s", query)
	}
	wantTail := " ON CONFLICT (external_id) DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at RETURNING " + strings.Join(matchColumns, ", ")
	if !strings.HasSuffix(query, wantTail) {
		t.Fatalf("unexpected conflict clause:\n%s", query)
	}
	if strings.Contains(query, "venue = EXCLUDED.venue") {
		t.Fatalf("absent venue must not be overwritten: %s", query)
	}
	if !strings.Contains(query, "$14") {
		t.Fatalf("expected postgres placeholders, got %s", query)
	}
	if len(args) != len(matchColumns) {
		t.Fatalf("expected %d args, got %d", len(matchColumns), len(args))
	}
	if got, ok := args[3].(pq.StringArray); !ok || got == nil {
		t.Fatalf("expected non-nil teams array arg, got %#v", args[3])
	}
	if args[10] != "[]" {
		t.Fatalf("expected default score, got %#v", args[10])
	}
}

func TestMatchPatchColumns(t *testing.T) {
	t.Parallel()

	name, venue := "A vs B", "Lord's"
	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	got := matchPatchColumns(match.Patch{
		ExternalID: "x",
		Name:       &name,
		Teams:      []string{},
		Venue:      &venue,
		StartTime:  &start,
		Score:      json.RawMessage(`[]`),
	})
	want := []string{"name", "teams", "venue", "start_time", "score"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected columns: got=%v want=%v", got, want)
	}

	if cols := matchPatchColumns(match.Patch{ExternalID: "x"}); len(cols) != 0 {
		t.Fatalf("expected no columns for key-only patch, got %v", cols)
	}
	if cols := matchPatchColumns(match.Patch{ExternalID: "x", ClearStartTime: true}); strings.Join(cols, ",") != "start_time" {
		t.Fatalf("expected start_time to be written when cleared, got %v", cols)
	}
}

func TestMatchTableModel_ToDomain(t *testing.T) {
	t.Parallel()

	row := matchTableModel{
		ID:         "id-1",
		ExternalID: "ext-1",
		Teams:      pq.StringArray{"India", "South Africa"},
		Score:      []byte(`[{"r":10}]`),
	}
	got := row.toDomain()
	if got.StartTime != nil {
		t.Fatalf("expected nil start time for NULL column")
	}
	if string(got.Score) != `[{"r":10}]` || len(got.Teams) != 2 {
		t.Fatalf("unexpected conversion: %+v", got)
	}

	if empty := (matchTableModel{}).toDomain(); string(empty.Score) != "[]" {
		t.Fatalf("expected default score, got %s", empty.Score)
	}
}
