// Package httpserver exposes the engine and the record store to the
// presentation layer. Every derived view is recomputed from current records
// on each request; nothing here caches.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"interview-insights-go/internal/analyzer"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/store"
)

type Router struct {
	store store.Store
	batch *analyzer.Batch
	log   *logger.Logger
}

func NewRouter(st store.Store, batch *analyzer.Batch, allowedOrigins []string) http.Handler {
	r := &Router{store: st, batch: batch, log: logger.New()}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/interviews", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleCreateInterview))
		rt.Get("/", r.wrap(r.handleListInterviews))
		rt.Get("/{id}", r.wrap(r.handleGetInterview))
		rt.Delete("/{id}", r.wrap(r.handleDeleteInterview))
		rt.Put("/{id}/analysis", r.wrap(r.handleEditAnalysis))
		rt.Post("/{id}/analyze", r.wrap(r.handleAnalyzeOne))
	})
	mux.Post("/analyze", r.wrap(r.handleAnalyzeBatch))

	mux.Get("/dashboard/metrics", r.wrap(r.handleDashboardMetrics))
	mux.Get("/analysis/merged", r.wrap(r.handleMergedAnalysis))

	mux.Route("/profiles", func(rt chi.Router) {
		rt.Get("/roles", r.wrap(r.handleRoleProfiles))
		rt.Get("/workflows", r.wrap(r.handleWorkflowProfiles))
		rt.Get("/tools", r.wrap(r.handleToolProfiles))
		rt.Get("/training-gaps", r.wrap(r.handleTrainingGapProfiles))
	})

	mux.Route("/summaries", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleGenerateSummary))
		rt.Get("/", r.wrap(r.handleListSummaries))
		rt.Get("/{id}", r.wrap(r.handleGetSummary))
		rt.Put("/{id}", r.wrap(r.handleEditSummary))
		rt.Delete("/{id}", r.wrap(r.handleDeleteSummary))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// errBadRequest wraps client mistakes so wrap can answer 400 instead
// of 500.
type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }

func badRequest(err error) error { return errBadRequest{err: err} }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		reqLog := r.log.WithRequest(req)
		if err := h(w, req); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			var bad errBadRequest
			if errors.As(err, &bad) {
				http.Error(w, bad.Error(), http.StatusBadRequest)
				return
			}
			reqLog.WithField("error", err.Error()).Error("handler failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
