package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
)

type MatchRepository struct {
	mu           sync.RWMutex
	byExternalID map[string]match.Match
	ids          idgen.Generator
	now          func() time.Time
}

func NewMatchRepository(ids idgen.Generator, now func() time.Time) *MatchRepository {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	if now == nil {
		now = time.Now
	}
	return &MatchRepository{
		byExternalID: make(map[string]match.Match),
		ids:          ids,
		now:          now,
	}
}

func (r *MatchRepository) Upsert(_ context.Context, patch match.Patch) (match.Match, error) {
	if err := patch.Validate(); err != nil {
		return match.Match{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	key := patch.ExternalID
	existing, ok := r.byExternalID[key]
	if !ok {
		id, err := r.ids.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate match id: %w", err)
		}
		created := patch.New(id, now)
		r.byExternalID[created.ExternalID] = created
		return cloneMatch(created), nil
	}

	patch.Apply(&existing)
	existing.UpdatedAt = now
	r.byExternalID[key] = existing

	return cloneMatch(existing), nil
}

func (r *MatchRepository) ListSince(_ context.Context, since time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.byExternalID))
	for _, item := range r.byExternalID {
		if !item.InWindow(since) {
			continue
		}
		out = append(out, cloneMatch(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(*out[j].StartTime) {
			return out[i].StartTime.Before(*out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func cloneMatch(m match.Match) match.Match {
	out := m
	out.Teams = append([]string{}, m.Teams...)
	if m.Score != nil {
		out.Score = append([]byte{}, m.Score...)
	}
	if m.StartTime != nil {
		v := *m.StartTime
		out.StartTime = &v
	}
	return out
}
