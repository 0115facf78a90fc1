package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	idgen "github.com/riskibarqy/cricktrackr/internal/platform/id"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	ids     idgen.Generator
	now     func() time.Time
}

func NewPlayerRepository(ids idgen.Generator, now func() time.Time) *PlayerRepository {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	if now == nil {
		now = time.Now
	}
	return &PlayerRepository{ids: ids, now: now}
}

func (r *PlayerRepository) Upsert(_ context.Context, patch player.Patch) (player.Player, error) {
	if err := patch.Validate(); err != nil {
		return player.Player{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if idx := r.lookupLocked(patch); idx >= 0 {
		item := r.players[idx]
		patch.Apply(&item)
		item.UpdatedAt = now
		r.players[idx] = item
		return item, nil
	}

	id, err := r.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	created := patch.New(id, now)
	r.players = append(r.players, created)

	return created, nil
}

// lookupLocked prefers an external id match over a name match; among name
// matches the earliest stored record wins.
func (r *PlayerRepository) lookupLocked(patch player.Patch) int {
	nameIdx := -1
	for i, item := range r.players {
		byExternalID, byName := player.MatchesKey(item, patch)
		if byExternalID {
			return i
		}
		if byName && nameIdx < 0 {
			nameIdx = i
		}
	}
	return nameIdx
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return player.Player{}, false, nil
	}
	return r.players[idx], true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.externalIDTakenLocked(item.ExternalID, "") {
		return player.Player{}, fmt.Errorf("%w: %s", player.ErrDuplicateExternalID, item.ExternalID)
	}

	if strings.TrimSpace(item.ID) == "" {
		id, err := r.ids.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		item.ID = id
	}
	now := r.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.players = append(r.players, item)

	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, id string, patch player.Patch) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return player.Player{}, false, nil
	}
	if r.externalIDTakenLocked(patch.ExternalID, id) {
		return player.Player{}, false, fmt.Errorf("%w: %s", player.ErrDuplicateExternalID, patch.ExternalID)
	}

	item := r.players[idx]
	patch.Apply(&item)
	item.UpdatedAt = r.now().UTC()
	r.players[idx] = item

	return item, true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return false, nil
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)

	return true, nil
}

func (r *PlayerRepository) indexLocked(id string) int {
	for i, item := range r.players {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (r *PlayerRepository) externalIDTakenLocked(externalID, exceptID string) bool {
	ext := strings.TrimSpace(externalID)
	if ext == "" {
		return false
	}
	for _, existing := range r.players {
		if existing.ExternalID == ext && existing.ID != exceptID {
			return true
		}
	}
	return false
}
