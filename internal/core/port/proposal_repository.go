package port

import (
	"context"

	"linkfolio-promos/internal/core/domain"
)

// ProposalFilter narrows a proposal listing. Exactly one of BusinessID or
// WorkspaceID must be set; Status is optional.
type ProposalFilter struct {
	BusinessID  string
	WorkspaceID string
	Status      domain.ProposalStatus
}

// ProposalRepository is the persistence port for proposals and the rows
// the acceptance transaction creates alongside them. Implementations must
// make AcceptPending and MarkIfPending conditional writes: the status
// changes only if the stored status is still pending, so at most one
// concurrent caller succeeds per proposal.
type ProposalRepository interface {
	// Create persists a new pending proposal.
	Create(ctx context.Context, p *domain.Proposal) error
	// GetByID returns the proposal or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	// List returns proposals matching the filter, newest first.
	List(ctx context.Context, f ProposalFilter) ([]domain.Proposal, error)

	// AcceptPending atomically accepts a pending proposal: it flips the
	// status, creates the promotional WorkspaceLink appended after the
	// workspace's existing links, creates the zeroed metrics row and
	// back-links the proposal, all in one transaction. It returns
	// ErrAlreadyProcessed when the proposal is not pending and ErrNotFound
	// when it does not exist.
	AcceptPending(ctx context.Context, id string) (*domain.Proposal, error)
	// MarkIfPending conditionally moves a pending proposal to the given
	// terminal status with no side effects. Same error contract as
	// AcceptPending.
	MarkIfPending(ctx context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error)

	// GetLinkMetrics returns the metrics row for a promotional link, or
	// nil when absent.
	GetLinkMetrics(ctx context.Context, workspaceLinkID string) (*domain.LinkMetrics, error)
}

// BusinessRepository resolves businesses; the business product owns the
// rest of the record.
type BusinessRepository interface {
	// GetByID returns the business or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}
