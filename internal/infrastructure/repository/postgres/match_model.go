package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
)

type matchTableModel struct {
	ID         string         `db:"id"`
	ExternalID string         `db:"external_id"`
	Name       string         `db:"name"`
	Teams      pq.StringArray `db:"teams"`
	TeamA      string         `db:"team_a"`
	TeamB      string         `db:"team_b"`
	Venue      string         `db:"venue"`
	Status     string         `db:"status"`
	StartTime  sql.NullTime   `db:"start_time"`
	MatchType  string         `db:"match_type"`
	Score      []byte         `db:"score"`
	Result     string         `db:"result"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

var matchColumns = []string{
	"id",
	"external_id",
	"name",
	"teams",
	"team_a",
	"team_b",
	"venue",
	"status",
	"start_time",
	"match_type",
	"score",
	"result",
	"created_at",
	"updated_at",
}

func (m matchTableModel) toDomain() match.Match {
	out := match.Match{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		Name:       m.Name,
		Teams:      append([]string{}, m.Teams...),
		TeamA:      m.TeamA,
		TeamB:      m.TeamB,
		Venue:      m.Venue,
		Status:     m.Status,
		MatchType:  m.MatchType,
		Score:      json.RawMessage("[]"),
		Result:     m.Result,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
	if m.StartTime.Valid {
		v := m.StartTime.Time.UTC()
		out.StartTime = &v
	}
	if len(m.Score) > 0 {
		out.Score = append(json.RawMessage{}, m.Score...)
	}
	return out
}

// matchRowValues lists the insert values of item in matchColumns order.
func matchRowValues(item match.Match) []any {
	var start sql.NullTime
	if item.StartTime != nil {
		start = sql.NullTime{Time: item.StartTime.UTC(), Valid: true}
	}
	teams := item.Teams
	if teams == nil {
		teams = []string{}
	}
	score := string(item.Score)
	if score == "" {
		score = "[]"
	}
	return []any{
		item.ID,
		item.ExternalID,
		item.Name,
		pq.StringArray(teams),
		item.TeamA,
		item.TeamB,
		item.Venue,
		item.Status,
		start,
		item.MatchType,
		score,
		item.Result,
		item.CreatedAt,
		item.UpdatedAt,
	}
}

// matchPatchColumns names the columns a patch writes on conflict.
func matchPatchColumns(p match.Patch) []string {
	cols := make([]string, 0, 10)
	if p.Name != nil {
		cols = append(cols, "name")
	}
	if p.Teams != nil {
		cols = append(cols, "teams")
	}
	if p.TeamA != nil {
		cols = append(cols, "team_a")
	}
	if p.TeamB != nil {
		cols = append(cols, "team_b")
	}
	if p.Venue != nil {
		cols = append(cols, "venue")
	}
	if p.Status != nil {
		cols = append(cols, "status")
	}
	if p.StartTime != nil || p.ClearStartTime {
		cols = append(cols, "start_time")
	}
	if p.MatchType != nil {
		cols = append(cols, "match_type")
	}
	if p.Score != nil {
		cols = append(cols, "score")
	}
	if p.Result != nil {
		cols = append(cols, "result")
	}
	return cols
}
