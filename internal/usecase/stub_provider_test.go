package usecase

import (
	"context"
	"fmt"
	"sync"
)

type stubProvider struct {
	mu sync.Mutex

	matches    []ExternalMatch
	matchesErr error

	players   map[string]ExternalPlayer
	playerErr map[string]error

	summaries    []ExternalPlayerSummary
	summariesErr error

	playerCalls []string
}

func (p *stubProvider) FetchCurrentMatches(context.Context) ([]ExternalMatch, error) {
	if p.matchesErr != nil {
		return nil, p.matchesErr
	}
	return p.matches, nil
}

func (p *stubProvider) FetchPlayerInfo(_ context.Context, playerID string) (ExternalPlayer, error) {
	p.mu.Lock()
	p.playerCalls = append(p.playerCalls, playerID)
	p.mu.Unlock()

	if err := p.playerErr[playerID]; err != nil {
		return ExternalPlayer{}, err
	}
	item, ok := p.players[playerID]
	if !ok {
		return ExternalPlayer{}, fmt.Errorf("%w: player %s not found upstream", ErrProviderUnavailable, playerID)
	}
	return item, nil
}

func (p *stubProvider) FetchPlayers(context.Context, int) ([]ExternalPlayerSummary, error) {
	if p.summariesErr != nil {
		return nil, p.summariesErr
	}
	return p.summaries, nil
}
