package port

import (
	"context"
	"time"

	"linkfolio-promos/internal/core/domain"
)

// CreateProposalInput carries everything needed to open a proposal.
// PriceCents must already be converted from the transport's dollar amount.
type CreateProposalInput struct {
	BusinessID  string
	CreatorID   string
	WorkspaceID string
	Title       string
	URL         string
	StartDate   time.Time
	EndDate     time.Time
	PriceCents  int64
}

// ProposalUseCase is the primary port for the proposal lifecycle and the
// budget ledger derived from it.
type ProposalUseCase interface {
	// CreateProposal validates input and persists a pending proposal.
	CreateProposal(ctx context.Context, in CreateProposalInput) (*domain.Proposal, error)
	// GetProposal returns a proposal by id or ErrNotFound.
	GetProposal(ctx context.Context, id string) (*domain.Proposal, error)
	// ListProposals returns proposals matching the filter, newest first.
	ListProposals(ctx context.Context, f ProposalFilter) ([]domain.Proposal, error)

	// TransitionStatus moves a pending proposal to accepted, rejected or
	// expired. Accepting materializes the live link and metrics row
	// atomically; a proposal that is no longer pending yields
	// ErrAlreadyProcessed, never a second link.
	TransitionStatus(ctx context.Context, id string, newStatus domain.ProposalStatus) (*domain.Proposal, error)

	// ComputeBudget derives the business's current budget figures from its
	// proposals.
	ComputeBudget(ctx context.Context, businessID string) (*domain.Budget, error)
	// LinkAnalytics reads the metrics row of a promotional link.
	LinkAnalytics(ctx context.Context, workspaceLinkID string) (*domain.LinkMetrics, error)
}
