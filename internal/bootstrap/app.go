package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/internal/infra/config"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *http.Server
	lookupSvc lookup.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, lookupSvc lookup.Service) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, lookupSvc: lookupSvc}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains in-flight
// requests.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	stats := a.lookupSvc.Stats()
	a.logger.Info("lookup tables ready",
		"cancer_series", stats.CancerSeries,
		"postcodes", stats.Postcodes,
		"skin_tones", stats.SkinTones,
	)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "address", ln.Addr().String())
		if err := a.server.Serve(ln); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
