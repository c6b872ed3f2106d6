// Package rest exposes the questionnaire engine as a JSON API for an
// external UI. Sessions live in memory only; the transport adds no
// behavior beyond validation, serialization, and triggering the one-shot
// result dispatch on the first completed read.
package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imoreno/wellscreen/internal/catalog"
	"github.com/imoreno/wellscreen/internal/logger"
	"github.com/imoreno/wellscreen/internal/scoring"
	"github.com/imoreno/wellscreen/internal/sink"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog    *catalog.Catalog
	Profile    *scoring.Profile
	Registry   *Registry
	Dispatcher *sink.Dispatcher
	Log        *logger.ConsoleLogger
	UserAgent  string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	if c.Log == nil {
		c.Log = logger.NewConsoleLogger(nil, "info")
	}
	h := newHandler(c)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog", h.GetCatalog).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions", h.CreateSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answer", h.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/advance", h.Advance).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/retreat", h.Retreat).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/reset", h.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/result", h.GetResult).Methods("GET", "OPTIONS")

	return r
}

// corsMiddleware allows browser UIs on other origins to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
