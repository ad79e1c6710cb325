package overlay

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/leaderboard"
	"github.com/ugaemi/chatbase-hero/internal/metrics"
	"github.com/ugaemi/chatbase-hero/internal/render"
	"github.com/ugaemi/chatbase-hero/internal/ws"
)

// Source is the read-only view of a running session served by the overlay.
type Source interface {
	Frame() *game.Frame
	Leaderboard() []leaderboard.Entry
}

// RouterConfig contains the dependencies of the overlay router.
type RouterConfig struct {
	// Source is the running session (required)
	Source Source

	// Hub enables the /ws endpoint when set.
	Hub *ws.Hub

	// CORSOrigins defaults to localhost origins when nil.
	CORSOrigins []string

	// SnapshotRate limits /snapshot.png renders per second. Zero uses DefaultSnapshotRate.
	SnapshotRate rate.Limit

	DisableLogging bool
}

// DefaultSnapshotRate caps PNG rendering, the most expensive route.
const DefaultSnapshotRate rate.Limit = 15

// NewRouter constructs the overlay router. It starts no goroutines and opens
// no listeners, so it can be mounted on httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{
			"http://localhost:*",
			"http://127.0.0.1:*",
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	snapshotRate := cfg.SnapshotRate
	if snapshotRate == 0 {
		snapshotRate = DefaultSnapshotRate
	}
	h := &handlers{
		source:  cfg.Source,
		limiter: rate.NewLimiter(snapshotRate, int(snapshotRate)+1),
	}

	r.Get("/health", handleHealth)
	r.Get("/frame", h.handleFrame)
	r.Get("/leaderboard", h.handleLeaderboard)
	r.Get("/snapshot.png", h.handleSnapshot)
	r.Handle("/metrics", metrics.Handler())

	if cfg.Hub != nil {
		hub := cfg.Hub
		r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.Serve(hub, w, r)
		})
	}

	return r
}

type handlers struct {
	source  Source
	limiter *rate.Limiter
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *handlers) handleFrame(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.source.Frame())
}

func (h *handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"entries": h.source.Leaderboard(),
	})
}

func (h *handlers) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		writeError(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, h.source.Frame()); err != nil {
		slog.Error("snapshot render failed", "error", err)
		writeError(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
