package server

import (
	"context"
	"log/slog"
	"net/http"

	"mlb-scores-service/internal/app/scores"
	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/diff"
	httpserver "mlb-scores-service/internal/http"
	"mlb-scores-service/internal/http/handlers"
	"mlb-scores-service/internal/http/middleware"
	"mlb-scores-service/internal/ingest"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/notify"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/providers/statsapi"
	"mlb-scores-service/internal/scheduler"
	"mlb-scores-service/internal/snapshots"
	"mlb-scores-service/internal/store"
	"mlb-scores-service/internal/subscriptions"
)

var metricsSetup = metrics.Setup

// Server owns the polling scheduler, the scores service, and the HTTP
// control plane, and coordinates their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	games         *store.GameStore
	scoresService *scores.Service
	subs          subscriptions.Store
	scheduler     *scheduler.Scheduler
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the default provider wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	client := statsapi.NewClient(statsapi.Config{
		BaseURL:         cfg.StatsAPI.BaseURL,
		ScheduleBaseURL: cfg.StatsAPI.ScheduleBaseURL,
		HTTPClient:      &http.Client{Timeout: cfg.StatsAPI.HTTPTimeout},
	})
	return newServerWithProvider(cfg, logger, client)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	games := store.NewGameStore()
	ingester := ingest.New(provider, provider, games, buildArchive(cfg), logger)
	differ := diff.New(provider, games, logger)

	gw := buildGateway(cfg, logger)
	subs := buildSubscriptions(context.Background(), cfg, logger)
	dispatcher := notify.NewDispatcher(gw, subs, notify.NewDedupeSet(nil), logger, recorder)

	svc := scores.NewService(ingester, differ, games, dispatcher, cfg.Timezone, logger)
	intervals := scheduler.NewIntervals(cfg.Poll.MinInterval, cfg.Poll.MaxInterval, cfg.Poll.BackoffStep)
	sched := scheduler.New(svc, intervals, logger, recorder)

	httpSrv := buildHTTPServer(cfg, subs, svc, sched, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		games:         games,
		scoresService: svc,
		subs:          subs,
		scheduler:     sched,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, sched *scheduler.Scheduler, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		scheduler:  sched,
		httpServer: httpSrv,
	}
}

func buildArchive(cfg config.Config) ingest.ArchiveWriter {
	if !cfg.Archive.Enabled {
		return nil
	}
	return snapshots.NewArchive(cfg.Archive.Path, cfg.Archive.RetentionDays)
}

func buildHTTPServer(cfg config.Config, subs subscriptions.Store, svc *scores.Service, sched *scheduler.Scheduler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(subs, svc, sched.Status, logger)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		// The scheduler run context is process-scoped so an admin restart
		// outlives the HTTP request that triggered it.
		admin = handlers.NewAdminHandler(sched, context.Background(), cfg.AdminToken, logger)
	}

	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(":"+cfg.Port, wrapped)
}

// Run starts the scheduler and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.scheduler.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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

	if err := s.scheduler.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop scheduler", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Redis-backed subscription stores hold a client connection.
	if closer, ok := s.subs.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logging.Warn(s.logger, "subscriptions close failed", "error", err)
		}
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
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
