package httpapi

import (
	"encoding/json"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

type matchDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Venue     string          `json:"venue"`
	Status    string          `json:"status"`
	Teams     []string        `json:"teams"`
	TeamA     string          `json:"teamA"`
	TeamB     string          `json:"teamB"`
	StartTime *time.Time      `json:"startTime"`
	Score     json.RawMessage `json:"score"`
	MatchType string          `json:"matchType"`
	Result    string          `json:"result"`
}

type matchListDTO struct {
	Items []matchDTO `json:"items"`
	Stale bool       `json:"stale"`
}

type playerDTO struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"externalId,omitempty"`
	Name           string    `json:"name"`
	Team           string    `json:"team"`
	Role           string    `json:"role"`
	Matches        int       `json:"matches"`
	Runs           int       `json:"runs"`
	Hundreds       int       `json:"hundreds"`
	Fifties        int       `json:"fifties"`
	BattingAverage float64   `json:"battingAverage"`
	Wickets        int       `json:"wickets"`
	StrikeRate     float64   `json:"strikeRate"`
	Economy        float64   `json:"economy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type playerImportDTO struct {
	Count      int                 `json:"count"`
	Players    []playerDTO         `json:"players"`
	SkippedIDs []string            `json:"skippedIds"`
	Report     usecase.BatchReport `json:"report"`
}

type fillStatsDTO struct {
	Candidates int                 `json:"candidates"`
	Updated    int                 `json:"updated"`
	Report     usecase.BatchReport `json:"report"`
}

type seedFixtureRequest struct {
	ID          string          `json:"id" validate:"required,max=128"`
	Name        string          `json:"name" validate:"max=256"`
	Teams       []string        `json:"teams" validate:"max=50,dive,max=128"`
	Venue       string          `json:"venue" validate:"max=256"`
	Status      string          `json:"status" validate:"max=256"`
	DateTimeGMT string          `json:"dateTimeGMT"`
	Date        string          `json:"date"`
	MatchType   string          `json:"matchType" validate:"max=32"`
	Score       json.RawMessage `json:"score"`
	Result      string          `json:"result" validate:"max=512"`
}

type seedMatchesRequest struct {
	Fixtures []seedFixtureRequest `json:"fixtures" validate:"max=500,dive"`
}

type importPlayersRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,max=128"`
}

type playerRequest struct {
	ExternalID     *string  `json:"externalId" validate:"omitempty,max=128"`
	Name           *string  `json:"name" validate:"omitempty,max=128"`
	Team           *string  `json:"team" validate:"omitempty,max=128"`
	Role           *string  `json:"role" validate:"omitempty,max=32"`
	Matches        *int     `json:"matches" validate:"omitempty,gte=0"`
	Runs           *int     `json:"runs" validate:"omitempty,gte=0"`
	Hundreds       *int     `json:"hundreds" validate:"omitempty,gte=0"`
	Fifties        *int     `json:"fifties" validate:"omitempty,gte=0"`
	BattingAverage *float64 `json:"battingAverage" validate:"omitempty,gte=0"`
	Wickets        *int     `json:"wickets" validate:"omitempty,gte=0"`
	StrikeRate     *float64 `json:"strikeRate" validate:"omitempty,gte=0"`
	Economy        *float64 `json:"economy" validate:"omitempty,gte=0"`
}

func matchToDTO(m match.Match) matchDTO {
	teams := m.Teams
	if teams == nil {
		teams = []string{}
	}
	score := m.Score
	if len(score) == 0 {
		score = json.RawMessage(`[]`)
	}
	return matchDTO{
		ID:        m.PublicID(),
		Name:      m.Name,
		Venue:     m.Venue,
		Status:    m.Status,
		Teams:     teams,
		TeamA:     m.TeamA,
		TeamB:     m.TeamB,
		StartTime: m.StartTime,
		Score:     score,
		MatchType: m.MatchType,
		Result:    m.Result,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:             p.ID,
		ExternalID:     p.ExternalID,
		Name:           p.Name,
		Team:           p.Team,
		Role:           string(p.Role),
		Matches:        p.Matches,
		Runs:           p.Runs,
		Hundreds:       p.Hundreds,
		Fifties:        p.Fifties,
		BattingAverage: p.BattingAverage,
		Wickets:        p.Wickets,
		StrikeRate:     p.StrikeRate,
		Economy:        p.Economy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func (r seedFixtureRequest) toExternal() usecase.ExternalMatch {
	return usecase.ExternalMatch{
		ID:          r.ID,
		Name:        r.Name,
		Teams:       r.Teams,
		Venue:       r.Venue,
		Status:      r.Status,
		DateTimeGMT: r.DateTimeGMT,
		Date:        r.Date,
		MatchType:   r.MatchType,
		Score:       r.Score,
		Result:      r.Result,
	}
}

func (r playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		ExternalID:     r.ExternalID,
		Name:           r.Name,
		Team:           r.Team,
		Role:           r.Role,
		Matches:        r.Matches,
		Runs:           r.Runs,
		Hundreds:       r.Hundreds,
		Fifties:        r.Fifties,
		BattingAverage: r.BattingAverage,
		Wickets:        r.Wickets,
		StrikeRate:     r.StrikeRate,
		Economy:        r.Economy,
	}
}
