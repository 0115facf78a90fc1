package usecase

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/domain/statvalue"
)

func TestNormalizeMatch_FullPayload(t *testing.T) {
	t.Parallel()

	patch, err := NormalizeMatch(ExternalMatch{
		ID:          "a1b2",
		Name:        "India vs South Africa, 1st ODI",
		Teams:       []string{"India", "South Africa", "Reserve XI"},
		Venue:       "JSCA International Stadium Complex, Ranchi",
		Status:      "India won by 17 runs",
		DateTimeGMT: "2025-11-30T08:00:00",
		Date:        "2025-11-29",
		MatchType:   "odi",
		Score:       json.RawMessage(`[{"r":349,"w":8,"o":50,"inning":"India Inning 1"}]`),
		Result:      "India won",
	})
	if err != nil {
		t.Fatalf("normalize match: %v", err)
	}

	if patch.ExternalID != "a1b2" || *patch.Name != "India vs South Africa, 1st ODI" {
		t.Fatalf("unexpected identity fields: %+v", patch)
	}
	if *patch.TeamA != "India" || *patch.TeamB != "South Africa" || len(patch.Teams) != 3 {
		t.Fatalf("unexpected teams: a=%s b=%s all=%v", *patch.TeamA, *patch.TeamB, patch.Teams)
	}
	want := time.Date(2025, 11, 30, 8, 0, 0, 0, time.UTC)
	if patch.StartTime == nil || !patch.StartTime.Equal(want) {
		t.Fatalf("expected start time from dateTimeGMT, got %v", patch.StartTime)
	}
	if string(patch.Score) != `[{"r":349,"w":8,"o":50,"inning":"India Inning 1"}]` {
		t.Fatalf("score must pass through unchanged, got %s", patch.Score)
	}
	if *patch.Status != "India won by 17 runs" || *patch.MatchType != "odi" || *patch.Result != "India won" {
		t.Fatalf("unexpected status fields: %+v", patch)
	}
}

func TestNormalizeMatch_Defaults(t *testing.T) {
	t.Parallel()

	patch, err := NormalizeMatch(ExternalMatch{ID: "x", Name: "Bhutan vs Bahrain", Date: "2025-12-08"})
	if err != nil {
		t.Fatalf("normalize match: %v", err)
	}

	if *patch.Venue != "Unknown" {
		t.Fatalf("expected Unknown venue, got %q", *patch.Venue)
	}
	if patch.Teams == nil || len(patch.Teams) != 0 || *patch.TeamA != "" || *patch.TeamB != "" {
		t.Fatalf("expected empty teams, got %v", patch.Teams)
	}
	if patch.StartTime == nil || !patch.StartTime.Equal(time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start time from date, got %v", patch.StartTime)
	}
	if string(patch.Score) != "[]" {
		t.Fatalf("expected empty score list, got %s", patch.Score)
	}
	if patch.Status != nil {
		t.Fatalf("missing status must stay absent, got %q", *patch.Status)
	}

	noDate, err := NormalizeMatch(ExternalMatch{ID: "y", Name: "TBD", DateTimeGMT: "soon"})
	if err != nil {
		t.Fatalf("normalize match: %v", err)
	}
	if noDate.StartTime != nil || !noDate.ClearStartTime {
		t.Fatalf("expected start time to be cleared, got start=%v clear=%t", noDate.StartTime, noDate.ClearStartTime)
	}
	if patch.ClearStartTime {
		t.Fatalf("a parsed date must not clear the start time")
	}
}

func TestNormalizeMatch_RejectsMalformed(t *testing.T) {
	t.Parallel()

	cases := map[string]ExternalMatch{
		"missing id":   {Name: "A vs B"},
		"missing name": {ID: "id-1", Name: "  "},
		"bad score":    {ID: "id-2", Name: "A vs B", Score: json.RawMessage(`{"r":`)},
	}
	for name, raw := range cases {
		name, raw := name, raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := NormalizeMatch(raw); !errors.Is(err, ErrMalformedItem) {
				t.Fatalf("expected ErrMalformedItem, got %v", err)
			}
		})
	}
}

func TestNormalizePlayer_UsesFormatPriority(t *testing.T) {
	t.Parallel()

	patch, err := NormalizePlayer(ExternalPlayer{
		ID:      "c61d247d",
		Name:    "Hardik Pandya",
		Country: "India",
		Role:    "Batting Allrounder",
		Stats: []statvalue.Entry{
			{Category: "batting", Format: "test", Label: "runs", Value: "532"},
			{Category: "batting", Format: "t20", Label: "runs", Value: " 1 812 "},
			{Category: "batting", Format: "odi", Label: "runs", Value: "0"},
			{Category: "batting", Format: "odi", Label: "m", Value: "94"},
			{Category: "batting", Format: "odi", Label: "avg", Value: "33.8"},
			{Category: "batting", Format: "odi", Label: "SR", Value: "110.5"},
			{Category: "batting", Format: "test", Label: "100", Value: "1"},
			{Category: "batting", Format: "odi", Label: "50", Value: "11"},
			{Category: "Bowling", Format: "ODI", Label: "wkts", Value: "89"},
			{Category: "bowling", Format: "odi", Label: "econ", Value: "5.6"},
		},
	})
	if err != nil {
		t.Fatalf("normalize player: %v", err)
	}

	if *patch.Role != player.RoleAllRounder {
		t.Fatalf("expected All-Rounder, got %s", *patch.Role)
	}
	if *patch.Team != "India" || patch.ExternalID != "c61d247d" {
		t.Fatalf("unexpected identity: team=%s ext=%s", *patch.Team, patch.ExternalID)
	}
	if *patch.Runs != 1812 {
		t.Fatalf("expected t20 runs after zero odi runs, got %d", *patch.Runs)
	}
	if *patch.Matches != 94 || *patch.Hundreds != 1 || *patch.Fifties != 11 || *patch.Wickets != 89 {
		t.Fatalf("unexpected counting stats: %+v", patch)
	}
	if *patch.BattingAverage != 33.8 || *patch.StrikeRate != 110.5 || *patch.Economy != 5.6 {
		t.Fatalf("unexpected rate stats: avg=%v sr=%v econ=%v", *patch.BattingAverage, *patch.StrikeRate, *patch.Economy)
	}
}

func TestNormalizePlayer_Defaults(t *testing.T) {
	t.Parallel()

	patch, err := NormalizePlayer(ExternalPlayer{ID: "p1", Name: "Unknown Quick"})
	if err != nil {
		t.Fatalf("normalize player: %v", err)
	}
	if *patch.Team != player.UnknownTeam || *patch.Role != player.RoleOther {
		t.Fatalf("unexpected defaults: team=%s role=%s", *patch.Team, *patch.Role)
	}
	if *patch.Runs != 0 || *patch.Economy != 0 {
		t.Fatalf("expected zero stats, got runs=%d econ=%v", *patch.Runs, *patch.Economy)
	}

	if _, err := NormalizePlayer(ExternalPlayer{ID: "p2"}); !errors.Is(err, ErrMalformedItem) {
		t.Fatalf("expected ErrMalformedItem for nameless player, got %v", err)
	}
}
