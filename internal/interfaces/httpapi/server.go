package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
)

type RouterOptions struct {
	Logger             *logging.Logger
	CORSAllowedOrigins []string
	AdminToolsEnabled  bool
	MetricsEnabled     bool
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogging(logger))
	r.Use(CORS(opts.CORSAllowedOrigins))
	r.Use(recoverPanic(logger))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	registerSystemRoutes(r, handler, opts.MetricsEnabled)
	r.Route("/api", func(r chi.Router) {
		registerMatchRoutes(r, handler, opts.AdminToolsEnabled)
		registerPlayerRoutes(r, handler, opts.AdminToolsEnabled)
	})

	return RequestTracing(r)
}

func registerSystemRoutes(r chi.Router, handler *Handler, metricsEnabled bool) {
	r.Get("/", handler.Root)
	r.Get("/healthz", handler.Healthz)
	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
}
