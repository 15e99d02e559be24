package domain

import "time"

// LinkTypePromotional marks workspace links materialized from accepted
// proposals. Other link types belong to the workspace product and never
// pass through this service.
const LinkTypePromotional = "promotional"

// WorkspaceLink is a live link on a creator's workspace page. The
// acceptance transaction creates exactly one per accepted proposal;
// ownership passes to the workspace afterwards.
type WorkspaceLink struct {
	ID          string
	WorkspaceID string
	Type        string
	Title       string
	URL         string
	Position    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LinkMetrics is the per-link counter row, 1:1 with a promotional
// WorkspaceLink. All counters start at zero; only the analytics
// collaborator mutates them afterwards.
type LinkMetrics struct {
	WorkspaceLinkID string
	BusinessID      string
	Clicks          int64
	Conversions     int64
	RevenueCents    int64
	UpdatedAt       time.Time
}
