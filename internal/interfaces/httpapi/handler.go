package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	matchService  *usecase.MatchService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(matchService *usecase.MatchService, playerService *usecase.PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:  matchService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "CrickTrackr+ API running"})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, fmt.Errorf("%w: route %s %s", usecase.ErrNotFound, r.Method, r.URL.Path))
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeStatusError(w, http.StatusMethodNotAllowed, "methodNotAllowed", "METHOD_NOT_ALLOWED",
		fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON decodes a bounded request body. An empty body is reported as
// io.EOF so callers can treat it as optional.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
