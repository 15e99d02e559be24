package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

type campaignPayload struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"businessId"`
	CreatorID   string          `json:"creatorId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Status      string          `json:"status"`
	Metrics     json.RawMessage `json:"metrics"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toCampaignPayload(c *domain.Campaign) campaignPayload {
	return campaignPayload{
		ID:          c.ID,
		BusinessID:  c.BusinessID,
		CreatorID:   c.CreatorID,
		Title:       c.Title,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      string(c.Status),
		Metrics:     c.Metrics,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCampaignPayloads(cs []domain.Campaign) []campaignPayload {
	out := make([]campaignPayload, 0, len(cs))
	for i := range cs {
		out = append(out, toCampaignPayload(&cs[i]))
	}
	return out
}

type overviewPayload struct {
	Stats              port.OverviewStats `json:"stats"`
	ActiveCampaigns    []campaignPayload  `json:"activeCampaigns"`
	DraftCampaigns     []campaignPayload  `json:"draftCampaigns"`
	CompletedCampaigns []campaignPayload  `json:"completedCampaigns"`
	Proposals          []proposalPayload  `json:"proposals"`
}

// handleBusinessOverview returns the dashboard aggregate for the
// session's business.
func (h *Handler) handleBusinessOverview(w http.ResponseWriter, r *http.Request) {
	businessID := sessionFrom(r.Context()).BusinessID
	if businessID == "" {
		h.respondError(w, port.NewValidationError("businessId", "session is not a business account"))
		return
	}

	ov, err := h.campaigns.GetBusinessOverview(r.Context(), businessID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	proposals := make([]proposalPayload, 0, len(ov.Proposals))
	for i := range ov.Proposals {
		proposals = append(proposals, toProposalPayload(&ov.Proposals[i]))
	}
	h.respond(w, http.StatusOK, overviewPayload{
		Stats:              ov.Stats,
		ActiveCampaigns:    toCampaignPayloads(ov.ActiveCampaigns),
		DraftCampaigns:     toCampaignPayloads(ov.DraftCampaigns),
		CompletedCampaigns: toCampaignPayloads(ov.CompletedCampaigns),
		Proposals:          proposals,
	})
}

type createCampaignRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatorID   string     `json:"creatorId"`
	Status      string     `json:"status"`
}

// handleCreateCampaign creates a campaign owned by the session's business.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	c, err := h.campaigns.CreateCampaign(r.Context(), sessionFrom(r.Context()).BusinessID, port.CreateCampaignInput{
		CreatorID:   req.CreatorID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.CampaignStatus(req.Status),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignPayload(c))
}

type campaignStatusRequest struct {
	Status string `json:"status"`
}

// handleCampaignStatus updates a campaign's status, ownership-checked
// against the session's business.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var req campaignStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	c, err := h.campaigns.UpdateCampaignStatus(r.Context(),
		sessionFrom(r.Context()).BusinessID, chi.URLParam(r, "id"),
		domain.CampaignStatus(req.Status))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, toCampaignPayload(c))
}
