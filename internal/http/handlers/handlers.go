package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/scheduler"
	"mlb-scores-service/internal/subscriptions"
)

// StatusSource reports what the service is currently tracking.
type StatusSource interface {
	Date() string
	TrackedGames() int
}

// Handler wires HTTP routes to the subscription store and scheduler status.
type Handler struct {
	subs     subscriptions.Store
	source   StatusSource
	statusFn func() scheduler.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(subs subscriptions.Store, source StatusSource, statusFn func() scheduler.Status, logger *slog.Logger) *Handler {
	return &Handler{
		subs:     subs,
		source:   source,
		statusFn: statusFn,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on recent scheduler health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Status reports the tracked date, game count, and scheduler state.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	body := map[string]any{}
	if h.source != nil {
		body["date"] = h.source.Date()
		body["trackedGames"] = h.source.TrackedGames()
	}
	if h.statusFn != nil {
		status := h.statusFn()
		body["running"] = status.Running
		body["intervalMs"] = status.Interval.Milliseconds()
		body["consecutiveFailures"] = status.ConsecutiveFailures
		if status.LastError != "" {
			body["lastError"] = status.LastError
		}
	}
	writeJSON(w, http.StatusOK, body, h.logger)
}

// Subscriptions handles GET (list) and POST (subscribe) on /subscriptions.
func (h *Handler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listSubscriptions(w, r)
	case http.MethodPost:
		h.subscribe(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// SubscriptionByChannel handles DELETE /subscriptions/{channel}.
func (h *Handler) SubscriptionByChannel(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete, h.logger) {
		return
	}
	channel := strings.TrimPrefix(r.URL.Path, "/subscriptions/")
	if channel == "" {
		writeError(w, r, http.StatusBadRequest, "channel required", h.logger)
		return
	}
	h.unsubscribe(w, r, channel)
}

func (h *Handler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	channels, err := h.subs.List(r.Context())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "subscription list failed", err)
		writeError(w, r, http.StatusInternalServerError, "subscription store unavailable", h.logger)
		return
	}
	if channels == nil {
		channels = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"channels": channels}, h.logger)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Channel string `json:"channel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Channel) == "" {
		writeError(w, r, http.StatusBadRequest, "channel required", h.logger)
		return
	}
	channel := strings.TrimSpace(body.Channel)

	added, err := h.subs.Add(r.Context(), channel)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "subscribe failed", err,
			slog.String(logging.FieldChannel, channel))
		writeError(w, r, http.StatusInternalServerError, "subscription store unavailable", h.logger)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "already subscribed",
			"channel": channel,
		}, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "channel subscribed",
		slog.String(logging.FieldChannel, channel))
	writeJSON(w, http.StatusCreated, map[string]string{
		"status":  "subscribed",
		"channel": channel,
	}, h.logger)
}

func (h *Handler) unsubscribe(w http.ResponseWriter, r *http.Request, channel string) {
	removed, err := h.subs.Remove(r.Context(), channel)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "unsubscribe failed", err,
			slog.String(logging.FieldChannel, channel))
		writeError(w, r, http.StatusInternalServerError, "subscription store unavailable", h.logger)
		return
	}
	status := "unsubscribed"
	if !removed {
		status = "not subscribed"
	}
	logging.Info(loggerFromContext(r, h.logger), "channel unsubscribed",
		slog.String(logging.FieldChannel, channel))
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"channel": channel,
	}, h.logger)
}
