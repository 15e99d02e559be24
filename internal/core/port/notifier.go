package port

import (
	"context"
	"time"

	"linkfolio-promos/internal/core/domain"
)

// DecisionEvent describes a proposal reaching a creator decision. It is
// published after the transition commits so the notification collaborator
// can fan out email or push.
type DecisionEvent struct {
	ProposalID string                `json:"proposalId"`
	BusinessID string                `json:"businessId"`
	CreatorID  string                `json:"creatorId"`
	Status     domain.ProposalStatus `json:"status"`
	PriceCents int64                 `json:"priceCents"`
	OccurredAt time.Time             `json:"occurredAt"`
}

// DecisionNotifier publishes decision events. Publishing is best-effort:
// callers log failures and never fail the transition over them.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, ev DecisionEvent) error
}

// NopNotifier drops events. Used when no broker is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyDecision(context.Context, DecisionEvent) error { return nil }
