package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkfolio-promos/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the proposal and campaign usecases execute business logic, the
// session store backs the auth middleware, and every route returns the
// product's JSON envelope.
type Handler struct {
	proposals port.ProposalUseCase
	campaigns port.CampaignUseCase
	sessions  port.SessionStore
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Every route
// sits behind the session middleware; a missing or invalid session is
// rejected with 401 before any handler runs.
func NewHandler(proposals port.ProposalUseCase, campaigns port.CampaignUseCase, sessions port.SessionStore, logger *slog.Logger) *Handler {
	h := &Handler{proposals: proposals, campaigns: campaigns, sessions: sessions, logger: logger}
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Route("/business/promotional-links", func(r chi.Router) {
			r.Post("/propose", h.handlePropose)
			r.Get("/proposals", h.handleListProposals)
			r.Patch("/{id}/status", h.handleProposalStatus)
			r.Get("/{linkID}/analytics", h.handleLinkAnalytics)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/business", h.handleBusinessOverview)
			r.Post("/create", h.handleCreateCampaign)
			r.Patch("/{id}/status", h.handleCampaignStatus)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
