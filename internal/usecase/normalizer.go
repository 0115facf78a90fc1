package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/domain/statvalue"
)

var statFormatPriority = []string{statvalue.FormatODI, statvalue.FormatT20, statvalue.FormatTest}

// NormalizeMatch builds the overlay patch for one provider match.
func NormalizeMatch(raw ExternalMatch) (match.Patch, error) {
	externalID := strings.TrimSpace(raw.ID)
	if externalID == "" {
		return match.Patch{}, fmt.Errorf("%w: match id is missing", ErrMalformedItem)
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return match.Patch{}, fmt.Errorf("%w: match=%s name is missing", ErrMalformedItem, externalID)
	}

	teams := make([]string, 0, len(raw.Teams))
	for _, t := range raw.Teams {
		teams = append(teams, strings.TrimSpace(t))
	}
	teamA, teamB := "", ""
	if len(teams) > 0 {
		teamA = teams[0]
	}
	if len(teams) > 1 {
		teamB = teams[1]
	}

	venue := strings.TrimSpace(raw.Venue)
	if venue == "" {
		venue = match.UnknownVenue
	}

	score := json.RawMessage("[]")
	if trimmed := strings.TrimSpace(string(raw.Score)); trimmed != "" && trimmed != "null" {
		if !json.Valid([]byte(trimmed)) {
			return match.Patch{}, fmt.Errorf("%w: match=%s score is not valid JSON", ErrMalformedItem, externalID)
		}
		score = json.RawMessage(trimmed)
	}

	start := parseMatchStart(raw.DateTimeGMT, raw.Date)
	matchType := strings.TrimSpace(raw.MatchType)
	result := strings.TrimSpace(raw.Result)

	patch := match.Patch{
		ExternalID: externalID,
		Name:       &name,
		Teams:      teams,
		TeamA:      &teamA,
		TeamB:      &teamB,
		Venue:      &venue,
		StartTime:  start,
		MatchType:  &matchType,
		Score:      score,
		Result:     &result,

		ClearStartTime: start == nil,
	}
	// A missing status leaves the stored one in place.
	if status := strings.TrimSpace(raw.Status); status != "" {
		patch.Status = &status
	}

	return patch, nil
}

// NormalizePlayer builds the overlay patch for one provider player profile.
func NormalizePlayer(raw ExternalPlayer) (player.Patch, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return player.Patch{}, fmt.Errorf("%w: player=%s name is missing", ErrMalformedItem, strings.TrimSpace(raw.ID))
	}

	team := strings.TrimSpace(raw.Country)
	if team == "" {
		team = player.UnknownTeam
	}
	role := player.ClassifyRole(raw.Role)

	stats := player.Stats{
		Matches:        int(math.Round(firstStat(raw.Stats, statvalue.CategoryBatting, "m"))),
		Runs:           int(math.Round(firstStat(raw.Stats, statvalue.CategoryBatting, "runs"))),
		Hundreds:       int(math.Round(firstStat(raw.Stats, statvalue.CategoryBatting, "100"))),
		Fifties:        int(math.Round(firstStat(raw.Stats, statvalue.CategoryBatting, "50"))),
		BattingAverage: firstStat(raw.Stats, statvalue.CategoryBatting, "avg"),
		StrikeRate:     firstStat(raw.Stats, statvalue.CategoryBatting, "sr"),
		Wickets:        int(math.Round(firstStat(raw.Stats, statvalue.CategoryBowling, "wkts"))),
		Economy:        firstStat(raw.Stats, statvalue.CategoryBowling, "econ"),
	}

	patch := player.StatsPatch(stats)
	patch.ExternalID = strings.TrimSpace(raw.ID)
	patch.Name = &name
	patch.Team = &team
	patch.Role = &role

	return patch, nil
}

// firstStat returns the first non-zero value walking formats ODI, T20, Test.
func firstStat(entries []statvalue.Entry, category, label string) float64 {
	for _, format := range statFormatPriority {
		if v := statvalue.Extract(entries, category, format, label); v != 0 {
			return v
		}
	}
	return 0
}

func parseMatchStart(dateTimeGMT, date string) *time.Time {
	for _, candidate := range []string{dateTimeGMT, date} {
		if t, ok := parseProviderTime(candidate); ok {
			return &t
		}
	}
	return nil
}

// Provider timestamps come without a zone suffix and are GMT.
var providerTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseProviderTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range providerTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
