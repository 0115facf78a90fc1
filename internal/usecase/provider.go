package usecase

import (
	"context"
	"encoding/json"

	"github.com/riskibarqy/cricktrackr/internal/domain/statvalue"
)

// CricketDataProvider is the read-only upstream cricket data source.
type CricketDataProvider interface {
	FetchCurrentMatches(ctx context.Context) ([]ExternalMatch, error)
	FetchPlayerInfo(ctx context.Context, playerID string) (ExternalPlayer, error)
	FetchPlayers(ctx context.Context, offset int) ([]ExternalPlayerSummary, error)
}

// ExternalMatch is one provider match after typed decoding. Empty strings mean
// the provider omitted the field.
type ExternalMatch struct {
	ID          string
	Name        string
	Teams       []string
	Venue       string
	Status      string
	DateTimeGMT string
	Date        string
	MatchType   string
	Score       json.RawMessage
	Result      string
}

type ExternalPlayer struct {
	ID      string
	Name    string
	Country string
	Role    string
	Stats   []statvalue.Entry
}

type ExternalPlayerSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
