package httpadapter

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

// proposalPayload is the wire shape of a proposal. Prices travel both as
// the stored cents and the dollar amount the dashboard renders.
type proposalPayload struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"businessId"`
	CreatorID       string    `json:"creatorId"`
	WorkspaceID     string    `json:"workspaceId"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	PriceCents      int64     `json:"priceCents"`
	PriceInDollars  float64   `json:"priceInDollars"`
	Status          string    `json:"status"`
	WorkspaceLinkID *string   `json:"workspaceLinkId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toProposalPayload(p *domain.Proposal) proposalPayload {
	return proposalPayload{
		ID:              p.ID,
		BusinessID:      p.BusinessID,
		CreatorID:       p.CreatorID,
		WorkspaceID:     p.WorkspaceID,
		Title:           p.Title,
		URL:             p.URL,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		PriceCents:      p.PriceCents,
		PriceInDollars:  float64(p.PriceCents) / 100,
		Status:          string(p.Status),
		WorkspaceLinkID: p.WorkspaceLinkID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type proposeRequest struct {
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	PriceInDollars float64   `json:"priceInDollars"`
	CreatorID      string    `json:"creatorId"`
	BusinessID     string    `json:"businessId"`
	WorkspaceID    string    `json:"workspaceId"`
}

// handlePropose opens a proposal. The dollar price is converted to
// integer cents at the boundary; everything past this point is cents.
func (h *Handler) handlePropose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	p, err := h.proposals.CreateProposal(r.Context(), port.CreateProposalInput{
		BusinessID:  req.BusinessID,
		CreatorID:   req.CreatorID,
		WorkspaceID: req.WorkspaceID,
		Title:       req.Title,
		URL:         req.URL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PriceCents:  int64(math.Round(req.PriceInDollars * 100)),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, toProposalPayload(p))
}

type proposalStatusRequest struct {
	Status string `json:"status"`
}

// handleProposalStatus applies the creator's decision. Only accepted and
// rejected are reachable over HTTP; expiry belongs to the background
// collaborator.
func (h *Handler) handleProposalStatus(w http.ResponseWriter, r *http.Request) {
	var req proposalStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}
	status := domain.ProposalStatus(req.Status)
	if status != domain.ProposalAccepted && status != domain.ProposalRejected {
		h.respondError(w, port.NewValidationError("status", "must be accepted or rejected"))
		return
	}

	p, err := h.proposals.TransitionStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, toProposalPayload(p))
}

// handleListProposals lists a business's proposals, newest first. The
// businessId query parameter falls back to the session's business.
func (h *Handler) handleListProposals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	businessID := q.Get("businessId")
	if businessID == "" {
		businessID = sessionFrom(r.Context()).BusinessID
	}

	proposals, err := h.proposals.ListProposals(r.Context(), port.ProposalFilter{
		BusinessID:  businessID,
		WorkspaceID: q.Get("workspaceId"),
		Status:      domain.ProposalStatus(q.Get("status")),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	payload := make([]proposalPayload, 0, len(proposals))
	for i := range proposals {
		payload = append(payload, toProposalPayload(&proposals[i]))
	}
	h.respond(w, http.StatusOK, payload)
}
