package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/wonny/techscreener/internal/api/handlers"
	"github.com/wonny/techscreener/internal/render"
	"github.com/wonny/techscreener/internal/scheduler"
	"github.com/wonny/techscreener/pkg/logger"
)

// RequestIDHeader carries the per-request ID in both directions
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the ID assigned to the request, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// JobReporter exposes background job statistics on /health
type JobReporter interface {
	GetJobStats() map[string]scheduler.JobStats
}

// Handlers groups every HTTP handler the router wires.
// Jobs is nil when no background refresh is scheduled.
type Handlers struct {
	Screen     *handlers.ScreenHandler
	Preference *handlers.PreferenceHandler
	Export     *handlers.ExportHandler
	Hub        *Hub
	Jobs       JobReporter
}

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(h Handlers, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler(h.Jobs)).Methods("GET")

	// Page, stylesheet and fragments
	r.HandleFunc("/", h.Screen.Index).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServerFS(render.StaticFS()))).Methods("GET")
	r.HandleFunc("/fragments/{name}", h.Screen.Fragment).Methods("GET")

	// Filters
	r.HandleFunc("/filters", h.Screen.ApplyFilters).Methods("POST")
	r.HandleFunc("/filters/reset", h.Screen.ResetFilters).Methods("POST")
	r.HandleFunc("/filters/preset", h.Screen.ApplyPreset).Methods("POST")

	// Modals (POST only, opening one changes session state)
	r.HandleFunc("/stocks/{ticker}", h.Screen.OpenDetail).Methods("POST")
	r.HandleFunc("/watchlist", h.Screen.OpenWatchlist).Methods("POST")
	r.HandleFunc("/watchlist/{ticker}/view", h.Screen.ViewFromWatchlist).Methods("POST")
	r.HandleFunc("/modals/{name}/close", h.Screen.CloseModal).Methods("POST")

	// Preferences
	r.HandleFunc("/watchlist/{ticker}/toggle", h.Preference.ToggleWatchlist).Methods("POST")
	r.HandleFunc("/theme/toggle", h.Preference.ToggleTheme).Methods("POST")

	// Export
	r.HandleFunc("/export.csv", h.Export.CSV).Methods("GET")

	// Change feed
	r.Handle("/ws", h.Hub).Methods("GET")

	// JSON view models
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/view/table", h.Screen.TableView).Methods("GET")
	api.HandleFunc("/view/watchlist", h.Screen.WatchlistView).Methods("GET")

	// Apply middleware
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status, plus job stats when
// a scheduler is running
func healthCheckHandler(jobs JobReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{
			"status":  "ok",
			"service": "techscreener",
		}
		if jobs != nil {
			body["jobs"] = jobs.GetJobStats()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}
}

// requestIDMiddleware keeps an incoming X-Request-ID or assigns a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer (websocket hijack)
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// websocket upgrades need the raw writer for Hijack
			if r.URL.Path == "/ws" {
				next.ServeHTTP(w, r)
			} else {
				next.ServeHTTP(rec, r)
			}

			// Log request
			log.WithFields(map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"duration":   time.Since(start),
				"request_id": RequestID(r.Context()),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error":      err,
						"path":       r.URL.Path,
						"request_id": RequestID(r.Context()),
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
