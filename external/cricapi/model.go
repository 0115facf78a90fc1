package cricapi

import (
	"encoding/json"
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricktrackr/internal/domain/statvalue"
	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

type envelope struct {
	Status string          `json:"status"`
	Reason string          `json:"reason"`
	Data   json.RawMessage `json:"data"`
}

// matchItem mirrors one currentMatches entry. Teams and Score stay raw so a
// malformed value in either does not reject the whole match.
type matchItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	MatchType   string          `json:"matchType"`
	Status      string          `json:"status"`
	Venue       string          `json:"venue"`
	Date        string          `json:"date"`
	DateTimeGMT string          `json:"dateTimeGMT"`
	Teams       json.RawMessage `json:"teams"`
	Score       json.RawMessage `json:"score"`
	Result      string          `json:"result"`
}

type playerInfo struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Country string          `json:"country"`
	Role    string          `json:"role"`
	Stats   json.RawMessage `json:"stats"`
}

// statItem keeps value raw: the provider sends it as a string but numbers
// show up too.
type statItem struct {
	Fn        string          `json:"fn"`
	MatchType string          `json:"matchtype"`
	Stat      string          `json:"stat"`
	Value     json.RawMessage `json:"value"`
}

func decodeMatch(raw json.RawMessage) (usecase.ExternalMatch, error) {
	var item matchItem
	if err := sonic.Unmarshal(raw, &item); err != nil {
		return usecase.ExternalMatch{}, fmt.Errorf("decode match: %w", err)
	}

	var score json.RawMessage
	if !isEmptyJSON(item.Score) {
		score = item.Score
	}

	return usecase.ExternalMatch{
		ID:          item.ID,
		Name:        item.Name,
		Teams:       decodeTeams(item.Teams),
		Venue:       item.Venue,
		Status:      item.Status,
		DateTimeGMT: item.DateTimeGMT,
		Date:        item.Date,
		MatchType:   item.MatchType,
		Score:       score,
		Result:      item.Result,
	}, nil
}

// decodeTeams returns the team names, or an empty list when teams is absent
// or not an array of strings.
func decodeTeams(raw json.RawMessage) []string {
	if isEmptyJSON(raw) {
		return []string{}
	}
	var teams []string
	if err := sonic.Unmarshal(raw, &teams); err != nil {
		return []string{}
	}
	return teams
}

func decodePlayer(raw json.RawMessage) (usecase.ExternalPlayer, error) {
	var item playerInfo
	if err := sonic.Unmarshal(raw, &item); err != nil {
		return usecase.ExternalPlayer{}, fmt.Errorf("decode player: %w", err)
	}

	return usecase.ExternalPlayer{
		ID:      item.ID,
		Name:    item.Name,
		Country: item.Country,
		Role:    item.Role,
		Stats:   decodeStats(item.Stats),
	}, nil
}

// decodeStats keeps every well-formed stat entry and drops the rest.
func decodeStats(raw json.RawMessage) []statvalue.Entry {
	if isEmptyJSON(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]statvalue.Entry, 0, len(items))
	for _, rawItem := range items {
		var item statItem
		if err := sonic.Unmarshal(rawItem, &item); err != nil {
			continue
		}
		out = append(out, statvalue.Entry{
			Category: item.Fn,
			Format:   item.MatchType,
			Label:    item.Stat,
			Value:    statValueText(item.Value),
		})
	}
	return out
}

func statValueText(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return ""
	}
	var s string
	if err := sonic.Unmarshal(raw, &s); err == nil {
		return s
	}
	return text
}
