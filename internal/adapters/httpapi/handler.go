package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/application/game"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
)

// SnapshotSource yields the most recently published snapshot, or nil before the first frame
type SnapshotSource interface {
	Latest() *game.Snapshot
}

// RunLister lists finished service runs
type RunLister interface {
	ListRecent(ctx context.Context, limit int) ([]persistence.RunSummary, error)
}

// Handler serves read-only views of a running service. It only ever reads
// published snapshots, never live service state.
type Handler struct {
	source SnapshotSource
	runs   RunLister
	logger logging.ServiceLogger
}

// NewHandler creates a handler. runs may be nil when persistence is disabled.
func NewHandler(source SnapshotSource, runs RunLister, logger logging.ServiceLogger) *Handler {
	return &Handler{source: source, runs: runs, logger: logging.OrNoOp(logger)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Route("/status", func(r chi.Router) {
		r.Get("/", h.Status)
		r.Get("/orders", h.Orders)
		r.Get("/customers", h.Customers)
	})
	if h.runs != nil {
		r.Get("/runs", h.Runs)
	}
}

// NewRouter builds the full router. A nil registry leaves the metrics path unmounted.
func NewRouter(h *Handler, registry *prometheus.Registry, metricsPath string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	if registry != nil {
		r.Handle(metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.latest(w)
	if !ok {
		return
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.latest(w)
	if !ok {
		return
	}
	respond(w, http.StatusOK, snap.Orders)
}

func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.latest(w)
	if !ok {
		return
	}
	state := r.URL.Query().Get("state")
	if state == "" {
		respond(w, http.StatusOK, snap.Customers)
		return
	}
	filtered := make([]game.CustomerView, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		if c.State == state {
			filtered = append(filtered, c)
		}
	}
	respond(w, http.StatusOK, filtered)
}

func (h *Handler) Runs(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	runs, err := h.runs.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Log(logging.LevelError, "Failed to list runs", map[string]interface{}{
			"request_id": middleware.GetReqID(r.Context()),
			"error":      err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Could not list runs")
		return
	}
	respond(w, http.StatusOK, runs)
}

func (h *Handler) latest(w http.ResponseWriter) (*game.Snapshot, bool) {
	snap := h.source.Latest()
	if snap == nil {
		respondError(w, http.StatusServiceUnavailable, "Service has not started")
		return nil, false
	}
	return snap, true
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"error": message})
}
