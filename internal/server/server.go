package server

import (
	"context"
	"log/slog"
	"net/http"

	"sports-gateway/internal/app/highlights"
	"sports-gateway/internal/app/schedule"
	teamsapp "sports-gateway/internal/app/teams"
	"sports-gateway/internal/config"
	"sports-gateway/internal/gateway"
	httpserver "sports-gateway/internal/http"
	"sports-gateway/internal/http/handlers"
	"sports-gateway/internal/logging"
	"sports-gateway/internal/metrics"
	"sports-gateway/internal/poller"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/providers/fixture"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	gateway       *gateway.Gateway
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closeCache    func()
}

// New constructs a server with the configured provider, cache backend and poller.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	cc := buildCache(context.Background(), cfg.Cache, logger)
	logging.Info(logger, "cache ready", slog.String("backend", cc.backend))

	gw := buildGateway(cfg, provider, cc, logger, recorder)
	plr := poller.New(refreshFunc(gw), nil, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, gw, provider, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		gateway:       gw,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		closeCache:    cc.close,
	}
}

// NewGateway builds a standalone gateway for one-off fetches. The returned func releases the
// cache backend.
func NewGateway(cfg config.Config, logger *slog.Logger) (*gateway.Gateway, func()) {
	provider := newProviderFactory(logger, nil).build(cfg)
	cc := buildCache(context.Background(), cfg.Cache, logger)
	return buildGateway(cfg, provider, cc, logger, nil), cc.close
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildGateway(cfg config.Config, provider providers.DataProvider, cc cacheComponents, logger *slog.Logger, recorder *metrics.Recorder) *gateway.Gateway {
	return gateway.New(provider, gateway.Options{
		Config: gateway.Config{
			MaxDays:            cfg.Gateway.MaxDays,
			EmptyStreakLimit:   cfg.Gateway.EmptyStreakLimit,
			DayDelay:           cfg.Gateway.DayDelay,
			PostRateLimitDelay: cfg.Gateway.PostRateLimitDelay,
			RateLimitBackoff:   cfg.Gateway.RateLimitBackoff,
			Cooldown:           cfg.Gateway.Cooldown,
			MaxCooldownWait:    cfg.Gateway.MaxCooldownWait,
			Timezone:           cfg.Timezone,
		},
		Cache:    cc.cache,
		Fallback: fixture.New(cfg.Timezone),
		Logger:   logger,
		Metrics:  recorder,
	})
}

func buildHTTPServer(cfg config.Config, gw *gateway.Gateway, teamProvider providers.TeamProvider, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(
		schedule.NewService(gw),
		highlights.NewService(gw),
		teamsapp.NewService(teamProvider, logger),
		logger,
		statusFn,
	)
	opts := httpserver.RouterOptions{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
		Metrics:     recorder,
	}
	// Admin refresh is only mounted when a token is configured.
	if cfg.AdminToken != "" {
		opts.Admin = handlers.NewAdminHandler(gw, refreshFunc(gw), cfg.AdminToken, logger)
	}

	return newNetHTTPServer(cfg.Port, httpserver.NewRouter(handler, opts))
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.closeCache != nil {
		s.closeCache()
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Gateway exposes the gateway for one-off fetches.
func (s *Server) Gateway() *gateway.Gateway {
	return s.gateway
}
