// Package http assembles the service's control-plane routes.
package http

import (
	nethttp "net/http"

	"mlb-scores-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin handler is mounted
// only when non-nil (i.e., when a token is configured).
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/status", handler.Status)
	mux.HandleFunc("/subscriptions", handler.Subscriptions)
	mux.HandleFunc("/subscriptions/", handler.SubscriptionByChannel)
	if admin != nil {
		mux.HandleFunc("/admin/scheduler", admin.Scheduler)
	}
	return mux
}
