package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	items, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) ListLivePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLivePlayers")
	defer span.End()

	items, err := h.playerService.ListLivePlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ImportPlayers")
	defer span.End()

	var req importPlayersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: ids array required", usecase.ErrInvalidInput)
		}
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.ImportPlayersByIDs(ctx, req.IDs)
	if err != nil {
		h.logger.WarnContext(ctx, "import players failed", "ids", len(req.IDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	skipped := result.SkippedIDs
	if skipped == nil {
		skipped = []string{}
	}
	writeSuccess(w, http.StatusOK, playerImportDTO{
		Count:      result.Count,
		Players:    playersToDTO(result.Players),
		SkippedIDs: skipped,
		Report:     result.Report,
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(chi.URLParam(r, "playerID"))
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(chi.URLParam(r, "playerID"))
	var req playerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.UpdatePlayer(ctx, playerID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(chi.URLParam(r, "playerID"))
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "Player deleted"})
}

func (h *Handler) FillPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "FillPlayerStats")
	defer span.End()

	result, err := h.playerService.FillRandomStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "fill player stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(w, http.StatusOK, fillStatsDTO{
		Candidates: result.Candidates,
		Updated:    result.Updated,
		Report:     result.Report,
	})
}
