package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/platform/metrics"
)

const (
	livePlayersLimit        = 50
	defaultFillStatsWorkers = 4
	maxFillStatsWorkers     = 32
)

// PlayerInput carries caller-supplied player fields. Nil fields are not set.
type PlayerInput struct {
	ExternalID     *string
	Name           *string
	Team           *string
	Role           *string
	Matches        *int
	Runs           *int
	Hundreds       *int
	Fifties        *int
	BattingAverage *float64
	Wickets        *int
	StrikeRate     *float64
	Economy        *float64
}

type FillStatsResult struct {
	Candidates int
	Updated    int
	Report     BatchReport
}

type PlayerService struct {
	playerRepo  player.Repository
	syncer      *SyncService
	provider    CricketDataProvider
	fillWorkers int
	logger      *logging.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewPlayerService(
	playerRepo player.Repository,
	syncer *SyncService,
	provider CricketDataProvider,
	fillWorkers int,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	seed := uint64(time.Now().UnixNano())
	return &PlayerService{
		playerRepo:  playerRepo,
		syncer:      syncer,
		provider:    provider,
		fillWorkers: fillWorkers,
		logger:      logger,
		rng:         rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// WithRandSource replaces the generator used by FillRandomStats.
func (s *PlayerService) WithRandSource(src rand.Source) *PlayerService {
	if src != nil {
		s.rng = rand.New(src)
	}
	return s
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %w", ErrStoreUnavailable, err)
	}
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: get player: %w", ErrStoreUnavailable, err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	if isBlank(input.Name) || isBlank(input.Team) {
		return player.Player{}, fmt.Errorf("%w: name and team are required", ErrInvalidInput)
	}

	patch, err := input.toPatch()
	if err != nil {
		return player.Player{}, err
	}
	item := patch.New("", time.Time{})
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, mapPlayerWriteError("create player", err)
	}
	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if (input.Name != nil && isBlank(input.Name)) || (input.Team != nil && isBlank(input.Team)) {
		return player.Player{}, fmt.Errorf("%w: name and team cannot be blank", ErrInvalidInput)
	}

	patch, err := input.toPatch()
	if err != nil {
		return player.Player{}, err
	}

	updated, exists, err := s.playerRepo.Update(ctx, id, patch)
	if err != nil {
		return player.Player{}, mapPlayerWriteError("update player", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, id)
	}
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete player: %w", ErrStoreUnavailable, err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	return nil
}

func (s *PlayerService) ImportPlayersByIDs(ctx context.Context, ids []string) (PlayerImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ImportPlayersByIDs")
	defer span.End()

	return s.syncer.SyncPlayersByIDs(ctx, ids)
}

// ListLivePlayers returns the first page of the provider player directory,
// trimmed to 50 entries. There is no stored snapshot of it to fall back on.
func (s *PlayerService) ListLivePlayers(ctx context.Context) ([]ExternalPlayerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListLivePlayers")
	defer span.End()

	items, err := s.provider.FetchPlayers(ctx, 0)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch live players failed", "error", err)
		if errors.Is(err, ErrProviderUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fetch live players: %w", ErrProviderUnavailable, err)
	}

	if len(items) > livePlayersLimit {
		items = items[:livePlayersLimit]
	}
	return items, nil
}

// FillRandomStats gives every player whose runs, wickets and matches are all
// at most 1 a set of role-shaped random career numbers.
func (s *PlayerService) FillRandomStats(ctx context.Context) (FillStatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.FillRandomStats")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return FillStatsResult{}, fmt.Errorf("%w: list players: %w", ErrStoreUnavailable, err)
	}

	candidates := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.HasSparseStats() {
			candidates = append(candidates, item)
		}
	}

	result := FillStatsResult{Candidates: len(candidates), Report: newBatchReport(len(candidates))}
	if len(candidates) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(normalizeFillStatsWorkerCount(s.fillWorkers, len(candidates)))
	if err != nil {
		return FillStatsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type fillOutcome struct {
		key string
		err error
	}
	outcomes := make([]fillOutcome, len(candidates))
	var updated atomic.Int32
	var workers sync.WaitGroup
	for i, item := range candidates {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			stats := s.deriveStats(item.Role)
			err := runItem(func() error {
				_, _, updateErr := s.playerRepo.Update(ctx, item.ID, player.StatsPatch(stats))
				return updateErr
			})
			outcomes[i] = fillOutcome{key: item.ID, err: err}
			if err == nil {
				updated.Add(1)
			}
		}); err != nil {
			workers.Done()
			return FillStatsResult{}, fmt.Errorf("submit fill stats task: %w", err)
		}
	}
	workers.Wait()

	for _, outcome := range outcomes {
		status := ItemStatusSuccess
		if outcome.err != nil {
			status = ItemStatusFailed
		}
		result.Report.add(metrics.KindFillStats, outcome.key, status, outcome.err)
	}
	result.Updated = int(updated.Load())

	s.logger.InfoContext(ctx, "filled random player stats", "candidates", result.Candidates, "updated", result.Updated)
	return result, nil
}

// deriveStats rolls plausible career numbers for a role.
func (s *PlayerService) deriveStats(role player.Role) player.Stats {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	text := strings.ToLower(string(role))
	isBowler := strings.Contains(text, "bowl")
	isAllRounder := strings.Contains(text, "all")

	var out player.Stats
	out.Matches = s.randInt(5, 60)
	if isBowler {
		out.Runs = s.randInt(100, 800)
		out.Hundreds = s.randInt(0, 1)
		out.Fifties = s.randInt(0, 4)
		out.StrikeRate = float64(s.randInt(70, 110))
	} else {
		out.Runs = s.randInt(400, 4000)
		out.Hundreds = s.randInt(0, out.Runs/800)
		out.Fifties = s.randInt(out.Hundreds, out.Hundreds+s.randInt(2, 10))
		out.StrikeRate = float64(s.randInt(90, 150))
	}
	out.BattingAverage = roundTenth(float64(out.Runs)/float64(max(out.Matches, 1)) + float64(s.randInt(5, 20)))

	if isBowler || isAllRounder {
		out.Wickets = s.randInt(5, 140)
		out.Economy = roundTenth(float64(s.randInt(42, 95)) / 10)
	} else {
		out.Wickets = s.randInt(0, 15)
		out.Economy = roundTenth(float64(s.randInt(50, 90)) / 10)
	}
	return out
}

// randInt returns a value in [lo, hi]. Callers hold rngMu.
func (s *PlayerService) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func normalizeFillStatsWorkerCount(requested, taskCount int) int {
	workers := requested
	if workers <= 0 {
		workers = defaultFillStatsWorkers
	}
	if workers > maxFillStatsWorkers {
		workers = maxFillStatsWorkers
	}
	if taskCount > 0 && workers > taskCount {
		workers = taskCount
	}
	if workers <= 0 {
		workers = 1
	}
	return workers
}

func (in PlayerInput) toPatch() (player.Patch, error) {
	patch := player.Patch{
		Matches:        in.Matches,
		Runs:           in.Runs,
		Hundreds:       in.Hundreds,
		Fifties:        in.Fifties,
		BattingAverage: in.BattingAverage,
		Wickets:        in.Wickets,
		StrikeRate:     in.StrikeRate,
		Economy:        in.Economy,
	}
	if in.ExternalID != nil {
		patch.ExternalID = strings.TrimSpace(*in.ExternalID)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		patch.Name = &name
	}
	if in.Team != nil {
		team := strings.TrimSpace(*in.Team)
		patch.Team = &team
	}
	if in.Role != nil && strings.TrimSpace(*in.Role) != "" {
		role, ok := player.ParseRole(*in.Role)
		if !ok {
			return player.Patch{}, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, *in.Role)
		}
		patch.Role = &role
	}
	return patch, nil
}

func mapPlayerWriteError(op string, err error) error {
	if errors.Is(err, player.ErrDuplicateExternalID) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

func isBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}
