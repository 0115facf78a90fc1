package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	days := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: days must be an integer", usecase.ErrInvalidInput))
			return
		}
		days = parsed
	}

	result, err := h.matchService.GetCachedOrFreshMatches(ctx, days)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "days", days, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(w, http.StatusOK, matchListDTO{Items: items, Stale: result.Stale})
}

func (h *Handler) SeedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SeedMatches")
	defer span.End()

	var req seedMatchesRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures := make([]usecase.ExternalMatch, 0, len(req.Fixtures))
	for _, item := range req.Fixtures {
		fixtures = append(fixtures, item.toExternal())
	}

	report, err := h.matchService.SeedFixtures(ctx, fixtures)
	if err != nil {
		h.logger.WarnContext(ctx, "seed matches failed", "fixtures", len(fixtures), "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, report)
}
