// Package httpapi exposes the core packing and planning operations over
// HTTP: a chi router with one handler-per-resource registration func
// per route group (r.Route("/resource", ResourceHandler)).
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/piwi3910/cargostow/internal/logging"
)

type requestIDKey struct{}

// requestID stamps every request with a short eight-character id, used
// as a correlation id in logs rather than chi's own RequestID
// middleware.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()[:8]
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(requestIDKey{}).(string)
		logging.Info("http request", "request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// NewRouter builds the chi router exposing every core operation: pack,
// search, rearrange, waste identification and return plans, undocking,
// day simulation, and CSV import/export.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/pack", PackHandler)
		r.Route("/search", SearchHandler)
		r.Route("/rearrange", RearrangeHandler)
		r.Route("/waste", WasteHandler)
		r.Route("/simulate", SimulateHandler)
		r.Route("/import", ImportHandler)
		r.Route("/export", ExportHandler)
	})

	return r
}

// respondJSON writes v as an indented JSON response with the given
// status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// respondError writes a {"error": message} JSON body with the given
// status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
