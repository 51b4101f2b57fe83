package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware после сигнала остановки новые запросы получают 503,
// уже начатые дорабатывают на ongoingCtx.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			}

			select {
			case <-ongoingCtx.Done():
				http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
				return
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
