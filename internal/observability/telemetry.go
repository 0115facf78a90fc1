// Package observability starts the optional tracing, profiling and debug
// endpoints and stops them again on shutdown.
package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/riskibarqy/cricktrackr/internal/config"
	"github.com/riskibarqy/cricktrackr/internal/platform/logging"
)

// Telemetry holds whatever Setup started. The zero value is a valid no-op.
type Telemetry struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprofServer     *http.Server
}

// Setup starts tracing, continuous profiling and the pprof listener as
// configured. On error everything already started is stopped.
func Setup(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	shutdownTracing, err := initTracing(cfg, logger)
	if err != nil {
		return nil, err
	}
	t.shutdownTracing = shutdownTracing

	stopProfiler, err := startProfiler(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background())
		return nil, err
	}
	t.stopProfiler = stopProfiler

	t.pprofServer = startPprofServer(cfg, logger)
	return t, nil
}

// Shutdown stops components in reverse start order and joins their errors.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	if t.pprofServer != nil {
		if err := t.pprofServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.stopProfiler != nil {
		if err := t.stopProfiler(); err != nil {
			errs = append(errs, err)
		}
	}
	if t.shutdownTracing != nil {
		if err := t.shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
