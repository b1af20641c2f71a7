package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	statsapp "github.com/buildestate/backend/application/stats"
	"github.com/buildestate/backend/model"
)

// statsWriteTimeout bounds the async telemetry insert.
const statsWriteTimeout = 5 * time.Second

// StatsMiddleware appends one api_stats row per request, off the request
// path. Preflight and HEAD requests are not counted.
func StatsMiddleware(app statsapp.StatsApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if app == nil || r.Method == http.MethodOptions || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			entry := &model.StatsEntity{
				Endpoint:     r.URL.Path,
				Method:       r.Method,
				ResponseTime: time.Since(start).Milliseconds(),
				StatusCode:   wrapped.statusCode,
				Timestamp:    start.UTC(),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), statsWriteTimeout)
				defer cancel()
				_ = app.Record(ctx, entry)
			}()
		})
	}
}
