package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"linkfolio-promos/internal/core/domain"
)

type metricsPayload struct {
	WorkspaceLinkID string    `json:"workspaceLinkId"`
	BusinessID      string    `json:"businessId"`
	Clicks          int64     `json:"clicks"`
	Conversions     int64     `json:"conversions"`
	RevenueCents    int64     `json:"revenueCents"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toMetricsPayload(m *domain.LinkMetrics) metricsPayload {
	return metricsPayload{
		WorkspaceLinkID: m.WorkspaceLinkID,
		BusinessID:      m.BusinessID,
		Clicks:          m.Clicks,
		Conversions:     m.Conversions,
		RevenueCents:    m.RevenueCents,
		UpdatedAt:       m.UpdatedAt,
	}
}

// handleLinkAnalytics reads the metrics row of a promotional link. The
// counters are written by the analytics collaborator; this is a plain
// read.
func (h *Handler) handleLinkAnalytics(w http.ResponseWriter, r *http.Request) {
	m, err := h.proposals.LinkAnalytics(r.Context(), chi.URLParam(r, "linkID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respond(w, http.StatusOK, toMetricsPayload(m))
}
