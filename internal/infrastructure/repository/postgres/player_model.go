package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
)

type playerTableModel struct {
	ID             string         `db:"id"`
	ExternalID     sql.NullString `db:"external_id"`
	Name           string         `db:"name"`
	Team           string         `db:"team"`
	Role           string         `db:"role"`
	Matches        int            `db:"matches"`
	Runs           int            `db:"runs"`
	Hundreds       int            `db:"hundreds"`
	Fifties        int            `db:"fifties"`
	BattingAverage float64        `db:"batting_average"`
	Wickets        int            `db:"wickets"`
	StrikeRate     float64        `db:"strike_rate"`
	Economy        float64        `db:"economy"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

var playerColumns = []string{
	"id",
	"external_id",
	"name",
	"team",
	"role",
	"matches",
	"runs",
	"hundreds",
	"fifties",
	"batting_average",
	"wickets",
	"strike_rate",
	"economy",
	"created_at",
	"updated_at",
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:         m.ID,
		ExternalID: m.ExternalID.String,
		Name:       m.Name,
		Team:       m.Team,
		Role:       player.Role(m.Role),
		Stats: player.Stats{
			Matches:        m.Matches,
			Runs:           m.Runs,
			Hundreds:       m.Hundreds,
			Fifties:        m.Fifties,
			BattingAverage: m.BattingAverage,
			Wickets:        m.Wickets,
			StrikeRate:     m.StrikeRate,
			Economy:        m.Economy,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func playerRowValues(item player.Player) []any {
	return []any{
		item.ID,
		nullableString(item.ExternalID),
		item.Name,
		item.Team,
		string(item.Role),
		item.Matches,
		item.Runs,
		item.Hundreds,
		item.Fifties,
		item.BattingAverage,
		item.Wickets,
		item.StrikeRate,
		item.Economy,
		item.CreatedAt,
		item.UpdatedAt,
	}
}

// playerPatchValues lists the columns and values a patch writes.
func playerPatchValues(p player.Patch) []columnValue {
	out := make([]columnValue, 0, 12)
	if ext := nullableString(p.ExternalID); ext.Valid {
		out = append(out, columnValue{"external_id", ext})
	}
	if p.Name != nil {
		out = append(out, columnValue{"name", *p.Name})
	}
	if p.Team != nil {
		out = append(out, columnValue{"team", *p.Team})
	}
	if p.Role != nil {
		out = append(out, columnValue{"role", string(*p.Role)})
	}
	if p.Matches != nil {
		out = append(out, columnValue{"matches", *p.Matches})
	}
	if p.Runs != nil {
		out = append(out, columnValue{"runs", *p.Runs})
	}
	if p.Hundreds != nil {
		out = append(out, columnValue{"hundreds", *p.Hundreds})
	}
	if p.Fifties != nil {
		out = append(out, columnValue{"fifties", *p.Fifties})
	}
	if p.BattingAverage != nil {
		out = append(out, columnValue{"batting_average", *p.BattingAverage})
	}
	if p.Wickets != nil {
		out = append(out, columnValue{"wickets", *p.Wickets})
	}
	if p.StrikeRate != nil {
		out = append(out, columnValue{"strike_rate", *p.StrikeRate})
	}
	if p.Economy != nil {
		out = append(out, columnValue{"economy", *p.Economy})
	}
	return out
}
