package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"mlb-scores-service/internal/http/requestutil"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/scheduler"
)

// SchedulerControl is the operator surface over the polling loop.
type SchedulerControl interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Cancel()
	Restart(ctx context.Context) error
	Status() scheduler.Status
}

// AdminHandler exposes owner-level scheduler control, guarded by a token.
// runCtx is the process-lifetime context used to (re)start the loop so it
// outlives the HTTP request.
type AdminHandler struct {
	control SchedulerControl
	runCtx  context.Context
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(control SchedulerControl, runCtx context.Context, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		control: control,
		runCtx:  runCtx,
		token:   token,
		logger:  logger,
	}
}

// Scheduler executes a timer control action: start, stop, cancel, or restart.
func (h *AdminHandler) Scheduler(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	action := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("action")))
	switch action {
	case "start":
		h.control.Start(h.runCtx)
	case "stop":
		if err := h.control.Stop(r.Context()); err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
			return
		}
	case "cancel":
		h.control.Cancel()
	case "restart":
		if err := h.control.Restart(h.runCtx); err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
			return
		}
	default:
		writeError(w, r, http.StatusBadRequest, "action must be one of start|stop|cancel|restart", logger)
		return
	}

	logging.Info(logger, "scheduler control applied", slog.String("action", action))
	status := h.control.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"action":     action,
		"running":    status.Running,
		"intervalMs": status.Interval.Milliseconds(),
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ") == h.token
	}
	return r.Header.Get("X-Admin-Token") == h.token
}
