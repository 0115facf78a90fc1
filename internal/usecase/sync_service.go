package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricktrackr/internal/domain/match"
	"github.com/riskibarqy/cricktrackr/internal/domain/player"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/platform/metrics"
)

// MatchSyncResult is what one match cycle serves to the caller. Stale is set
// when the provider failed and Matches come from the stored snapshot.
type MatchSyncResult struct {
	Matches []match.Match
	Stale   bool
	Report  BatchReport
}

type PlayerImportResult struct {
	Count      int
	Players    []player.Player
	SkippedIDs []string
	Report     BatchReport
}

// SyncService runs fetch, normalize, upsert and windowed-query cycles.
//
// Overlapping cycles are not coalesced: concurrent callers each hit the
// provider and each upsert. Upserts are keyed and idempotent, so the only
// cost is redundant work.
type SyncService struct {
	provider   CricketDataProvider
	matchRepo  match.Repository
	playerRepo player.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewSyncService(
	provider CricketDataProvider,
	matchRepo match.Repository,
	playerRepo player.Repository,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncService{
		provider:   provider,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for the recency window.
func (s *SyncService) WithClock(now func() time.Time) *SyncService {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *SyncService) SyncAndFetchMatches(ctx context.Context, window time.Duration) (MatchSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAndFetchMatches",
		attribute.Int64("sync.window_hours", int64(window/time.Hour)))
	defer span.End()

	if window <= 0 {
		return MatchSyncResult{}, fmt.Errorf("%w: window must be positive", ErrInvalidInput)
	}

	raw, err := s.provider.FetchCurrentMatches(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "provider match fetch failed, serving stored snapshot", "error", err)
		metrics.SyncCyclesTotal.WithLabelValues(metrics.KindMatch, metrics.SourceFallback).Inc()

		items, listErr := s.listRecent(ctx, window)
		if listErr != nil {
			return MatchSyncResult{}, listErr
		}
		span.SetAttributes(attribute.Bool("sync.stale", true))
		return MatchSyncResult{Matches: items, Stale: true, Report: newBatchReport(0)}, nil
	}

	report := s.reconcileMatches(ctx, raw)
	annotateBatch(span, report)
	metrics.SyncCyclesTotal.WithLabelValues(metrics.KindMatch, metrics.SourceProvider).Inc()
	if report.SkippedCount > 0 || report.FailedCount > 0 {
		s.logger.WarnContext(ctx, "match sync completed with partial failures",
			"received", len(raw),
			"success", report.SuccessCount,
			"skipped", report.SkippedCount,
			"failed", report.FailedCount,
		)
	}

	items, err := s.listRecent(ctx, window)
	if err != nil {
		return MatchSyncResult{}, err
	}
	return MatchSyncResult{Matches: items, Report: report}, nil
}

// reconcileMatches normalizes and upserts items one at a time, in arrival order.
func (s *SyncService) reconcileMatches(ctx context.Context, raw []ExternalMatch) BatchReport {
	report := newBatchReport(len(raw))
	for _, item := range raw {
		key := strings.TrimSpace(item.ID)

		patch, err := NormalizeMatch(item)
		if err != nil {
			s.logger.WarnContext(ctx, "skip malformed match", "external_id", key, "error", err)
			metrics.MalformedItemsTotal.WithLabelValues(metrics.KindMatch).Inc()
			report.add(metrics.KindMatch, key, ItemStatusSkipped, err)
			continue
		}

		err = runItem(func() error {
			_, upsertErr := s.matchRepo.Upsert(ctx, patch)
			return upsertErr
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "upsert match failed", "external_id", key, "error", err)
			report.add(metrics.KindMatch, key, ItemStatusFailed, err)
			continue
		}
		report.add(metrics.KindMatch, key, ItemStatusSuccess, nil)
	}
	return report
}

func (s *SyncService) listRecent(ctx context.Context, window time.Duration) ([]match.Match, error) {
	since := s.now().UTC().Add(-window)
	items, err := s.matchRepo.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("%w: list matches since %s: %w", ErrStoreUnavailable, since.Format(time.RFC3339), err)
	}
	return items, nil
}

// SyncPlayersByIDs imports provider players one id at a time. A failure for
// one id is recorded and the import moves on to the next.
func (s *SyncService) SyncPlayersByIDs(ctx context.Context, ids []string) (PlayerImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncPlayersByIDs", attribute.Int("import.requested", len(ids)))
	defer span.End()

	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return PlayerImportResult{}, fmt.Errorf("%w: ids array required", ErrInvalidInput)
	}

	result := PlayerImportResult{
		Players:    make([]player.Player, 0, len(cleaned)),
		SkippedIDs: make([]string, 0),
		Report:     newBatchReport(len(cleaned)),
	}
	for _, id := range cleaned {
		stored, status, err := s.importPlayer(ctx, id)
		result.Report.add(metrics.KindPlayer, id, status, err)
		if status != ItemStatusSuccess {
			result.SkippedIDs = append(result.SkippedIDs, id)
			continue
		}
		result.Players = append(result.Players, stored)
	}
	result.Count = len(result.Players)
	annotateBatch(span, result.Report)

	metrics.SyncCyclesTotal.WithLabelValues(metrics.KindPlayer, metrics.SourceProvider).Inc()
	return result, nil
}

func (s *SyncService) importPlayer(ctx context.Context, id string) (player.Player, ItemStatus, error) {
	raw, err := s.provider.FetchPlayerInfo(ctx, id)
	if errors.Is(err, ErrMalformedItem) {
		s.logger.WarnContext(ctx, "skip malformed player payload", "player_id", id, "error", err)
		return player.Player{}, ItemStatusSkipped, err
	}
	if err != nil {
		s.logger.WarnContext(ctx, "fetch player info failed", "player_id", id, "error", err)
		return player.Player{}, ItemStatusFailed, err
	}
	if strings.TrimSpace(raw.ID) == "" {
		raw.ID = id
	}

	patch, err := NormalizePlayer(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "skip malformed player", "player_id", id, "error", err)
		metrics.MalformedItemsTotal.WithLabelValues(metrics.KindPlayer).Inc()
		return player.Player{}, ItemStatusSkipped, err
	}

	var stored player.Player
	err = runItem(func() error {
		var upsertErr error
		stored, upsertErr = s.playerRepo.Upsert(ctx, patch)
		return upsertErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "upsert player failed", "player_id", id, "error", err)
		return player.Player{}, ItemStatusFailed, err
	}

	return stored, ItemStatusSuccess, nil
}
