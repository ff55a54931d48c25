// Package api exposes the team-management backend over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/service"
)

// Handler bundles the services the route handlers depend on
type Handler struct {
	roster   *service.RosterService
	matches  *service.MatchService
	stats    *service.StatsService
	fees     *service.FeesService
	calendar *service.CalendarService
}

// NewHandler creates the handler set for the router
func NewHandler(
	roster *service.RosterService,
	matches *service.MatchService,
	stats *service.StatsService,
	fees *service.FeesService,
	calendar *service.CalendarService,
) *Handler {
	return &Handler{
		roster:   roster,
		matches:  matches,
		stats:    stats,
		fees:     fees,
		calendar: calendar,
	}
}

// NewRouter creates and configures the chi router with all middleware and
// routes
func NewRouter(h *Handler, corsAllowOrigins []string, logger *logrus.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(instrument)
	r.Use(chimiddleware.Compress(5))

	c := corslib.New(corslib.Options{
		AllowedOrigins:   corsAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.listPlayers)
			r.Post("/", h.createPlayer)
			r.Get("/{playerID}", h.getPlayer)
			r.Put("/{playerID}", h.updatePlayer)
			r.Delete("/{playerID}", h.deletePlayer)
			r.Get("/{playerID}/stats", h.playerStats)
			r.Post("/{playerID}/fees", h.recordFeePayment)
			r.Get("/{playerID}/fees/balance", h.feeBalance)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.listMatches)
			r.Post("/", h.createMatch)
			r.Get("/{matchID}", h.getMatch)
			r.Put("/{matchID}", h.updateMatch)
			r.Delete("/{matchID}", h.deleteMatch)
			r.Get("/{matchID}/events", h.listEvents)
			r.Post("/{matchID}/events", h.recordEvent)
			r.Get("/{matchID}/callups", h.listCallUps)
			r.Put("/{matchID}/callups", h.setCallUp)
			r.Get("/{matchID}/summary", h.matchSummary)
		})

		r.Get("/formations/{formationID}/assignments", h.getAssignments)
		r.Get("/stats/season", h.seasonStats)
		r.Get("/fees/balances", h.seasonFeeBalances)
		r.Post("/fixtures/import", h.importFixtures)
	})

	return r
}

func (h *Handler) importFixtures(w http.ResponseWriter, r *http.Request) {
	result, err := h.calendar.ImportFixtures(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "feed_error", "fixtures feed unavailable")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
