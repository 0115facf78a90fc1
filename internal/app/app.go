package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/cricktrackr/external/cricapi"
	"github.com/riskibarqy/cricktrackr/internal/config"
	"github.com/riskibarqy/cricktrackr/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
	"github.com/riskibarqy/cricktrackr/internal/platform/resilience"
	"github.com/riskibarqy/cricktrackr/internal/usecase"
)

// App owns the HTTP server and the resources it must release on shutdown.
type App struct {
	Server *http.Server
	store  *store
}

func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.store.Close()
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	provider := cricapi.NewClient(cricapi.ClientConfig{
		BaseURL:       cfg.CricAPIBaseURL,
		APIKey:        cfg.CricAPIKey,
		Timeout:       cfg.CricAPITimeout,
		MaxRetries:    cfg.CricAPIMaxRetries,
		RatePerSecond: cfg.CricAPIRatePerSecond,
		Logger:        logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CricAPICircuitEnabled,
			FailureThreshold: cfg.CricAPICircuitFailures,
			OpenTimeout:      cfg.CricAPICircuitOpenFor,
			HalfOpenMaxReq:   cfg.CricAPICircuitHalfOpen,
		},
	})
	if cfg.CricAPIKey == "" {
		logger.Warn("CRICAPI_KEY is empty; matches are served from the store only")
	}

	syncer := usecase.NewSyncService(provider, st.matches, st.players, logger)
	matchSvc := usecase.NewMatchService(syncer, st.matches, cfg.MatchWindowDays, logger)
	playerSvc := usecase.NewPlayerService(st.players, syncer, provider, cfg.FillStatsWorkers, logger)

	handler := httpapi.NewHandler(matchSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToolsEnabled:  cfg.AdminToolsEnabled,
		MetricsEnabled:     cfg.MetricsEnabled,
	})

	return &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
		},
		store: st,
	}, nil
}
