package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/platform/metrics"
)

const (
	DefaultMatchWindowDays = 5
	// MaxWindowDays bounds the recency window to about ten years.
	MaxWindowDays = 3650
)

type MatchService struct {
	syncer            *SyncService
	matchRepo         match.Repository
	defaultWindowDays int
	logger            *logging.Logger
}

func NewMatchService(syncer *SyncService, matchRepo match.Repository, defaultWindowDays int, logger *logging.Logger) *MatchService {
	if defaultWindowDays <= 0 {
		defaultWindowDays = DefaultMatchWindowDays
	}
	if defaultWindowDays > MaxWindowDays {
		defaultWindowDays = MaxWindowDays
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		syncer:            syncer,
		matchRepo:         matchRepo,
		defaultWindowDays: defaultWindowDays,
		logger:            logger,
	}
}

// GetCachedOrFreshMatches syncs current matches from the provider and returns
// the matches starting within the last windowDays days. Zero selects the
// configured default window.
func (s *MatchService) GetCachedOrFreshMatches(ctx context.Context, windowDays int) (MatchSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetCachedOrFreshMatches")
	defer span.End()

	if windowDays < 0 {
		return MatchSyncResult{}, fmt.Errorf("%w: days must be >= 0", ErrInvalidInput)
	}
	if windowDays > MaxWindowDays {
		return MatchSyncResult{}, fmt.Errorf("%w: days must be <= %d", ErrInvalidInput, MaxWindowDays)
	}
	if windowDays == 0 {
		windowDays = s.defaultWindowDays
	}

	return s.syncer.SyncAndFetchMatches(ctx, time.Duration(windowDays)*24*time.Hour)
}

// SeedFixtures upserts manual fixtures through the same reconciliation path as
// the provider sync. An empty list seeds DefaultFixtures.
func (s *MatchService) SeedFixtures(ctx context.Context, fixtures []ExternalMatch) (BatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SeedFixtures")
	defer span.End()

	if len(fixtures) == 0 {
		fixtures = DefaultFixtures()
	}

	report := newBatchReport(len(fixtures))
	for _, item := range fixtures {
		key := strings.TrimSpace(item.ID)
		if strings.TrimSpace(item.Status) == "" {
			item.Status = match.DefaultStatus
		}

		patch, err := NormalizeMatch(item)
		if err != nil {
			report.add(metrics.KindMatch, key, ItemStatusSkipped, err)
			continue
		}

		err = runItem(func() error {
			_, upsertErr := s.matchRepo.Upsert(ctx, patch)
			return upsertErr
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "seed fixture failed", "external_id", key, "error", err)
			report.add(metrics.KindMatch, key, ItemStatusFailed, err)
			continue
		}
		report.add(metrics.KindMatch, key, ItemStatusSuccess, nil)
	}

	annotateBatch(span, report)
	s.logger.InfoContext(ctx, "seeded fixtures",
		"requested", len(fixtures),
		"success", report.SuccessCount,
		"skipped", report.SkippedCount,
		"failed", report.FailedCount,
	)
	return report, nil
}
