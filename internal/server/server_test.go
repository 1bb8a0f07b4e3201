package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/scheduler"
	"mlb-scores-service/internal/teststubs"
	"mlb-scores-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Timezone: "America/New_York",
		Poll: config.PollConfig{
			MinInterval: 10 * time.Second,
			MaxInterval: 5 * time.Minute,
			BackoffStep: 10 * time.Second,
		},
		Gateway:       config.GatewayConfig{Kind: "log"},
		Subscriptions: config.SubscriptionsConfig{Backend: "memory"},
	}
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	return newServerWithMetrics(cfg, logger, &teststubs.StubProvider{}, metrics.NewRecorder())
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig())
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /status, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if body["running"] != false {
		t.Fatalf("expected scheduler not running before Run, got %v", body)
	}

	// Subscription round trip through the real router.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(`{"channel":"alpha"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 subscribe, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/subscriptions/alpha", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 unsubscribe, got %d", rec.Code)
	}
}

func TestAdminRouteRequiresConfiguredToken(t *testing.T) {
	srv := newTestServer(t, testConfig())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/scheduler?action=start", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected admin route unmounted without token, got %d", rec.Code)
	}

	cfg := testConfig()
	cfg.AdminToken = "secret"
	srv = newTestServer(t, cfg)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/scheduler?action=start", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/scheduler?action=status", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", rec.Code)
	}
}

func TestBuildGatewaySelection(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	cfg := testConfig()
	if got := buildGateway(cfg, logger).Name(); got != "log" {
		t.Fatalf("expected log gateway, got %s", got)
	}

	cfg.Gateway.Kind = "webhook"
	if got := buildGateway(cfg, logger).Name(); got != "webhook" {
		t.Fatalf("expected webhook gateway, got %s", got)
	}

	cfg.Gateway.Kind = "slack"
	if got := buildGateway(cfg, logger).Name(); got != "log" {
		t.Fatalf("expected slack without token to fall back to log, got %s", got)
	}
	cfg.Gateway.SlackToken = "xoxb-test"
	if got := buildGateway(cfg, logger).Name(); got != "slack" {
		t.Fatalf("expected slack gateway, got %s", got)
	}

	cfg.Gateway.Kind = "carrier-pigeon"
	if got := buildGateway(cfg, logger).Name(); got != "log" {
		t.Fatalf("expected unknown kind to fall back to log, got %s", got)
	}
}

func TestBuildSubscriptionsMemoryAndSeed(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig()
	cfg.Subscriptions.Seed = []string{"alpha", "beta"}

	store := buildSubscriptions(context.Background(), cfg, logger)
	channels, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected seeded channels, got %v", channels)
	}

	cfg.Subscriptions.Backend = "etcd"
	if buildSubscriptions(context.Background(), cfg, logger) == nil {
		t.Fatalf("expected fallback store for unknown backend")
	}
}

func TestBuildSubscriptionsRedisFallback(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig()
	cfg.Subscriptions.Backend = "redis"
	cfg.Subscriptions.RedisAddr = "127.0.0.1:1" // nothing listens here
	cfg.Subscriptions.Seed = []string{"alpha"}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store := buildSubscriptions(ctx, cfg, logger)
	channels, err := store.List(context.Background())
	if err != nil || len(channels) != 1 {
		t.Fatalf("expected memory fallback with seed, got %v err %v", channels, err)
	}
}

func TestBuildMetricsWithInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	got, srv, shutdown := buildMetrics(testConfig(), nil, rec)
	if got != rec || srv != nil || shutdown != nil {
		t.Fatalf("expected injected recorder passthrough")
	}
}

func TestBuildMetricsSetupFailureFallsBack(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("otel broken")
	}
	defer func() { metricsSetup = original }()

	logger, buf := testutil.NewBufferLogger()
	rec, srv, shutdown := buildMetrics(testConfig(), logger, nil)
	if rec == nil || srv != nil || shutdown != nil {
		t.Fatalf("expected plain recorder fallback")
	}
	if !strings.Contains(buf.String(), "metrics setup failed") {
		t.Fatalf("expected warning logged, got %q", buf.String())
	}
}

type fakeHTTPServer struct {
	shutdowns int
}

func (f *fakeHTTPServer) ListenAndServe() error          { return http.ErrServerClosed }
func (f *fakeHTTPServer) Shutdown(context.Context) error { f.shutdowns++; return nil }
func (f *fakeHTTPServer) Addr() string                   { return ":0" }
func (f *fakeHTTPServer) Handler() http.Handler          { return nil }

func TestGracefulShutdownStopsComponents(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	fake := &fakeHTTPServer{}
	sched := scheduler.New(nil, scheduler.NewIntervals(0, 0, 0), logger, nil)
	srv := newServerWithDeps(testConfig(), logger, sched, fake)

	srv.gracefulShutdown()
	if fake.shutdowns != 1 {
		t.Fatalf("expected http server shutdown once, got %d", fake.shutdowns)
	}
}
