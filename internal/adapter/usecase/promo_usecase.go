package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

// PromoService implements port.ProposalUseCase. It validates input,
// delegates the conditional writes to the repository and publishes
// decision events after a transition commits.
type PromoService struct {
	proposals  port.ProposalRepository
	businesses port.BusinessRepository
	notifier   port.DecisionNotifier
	logger     *slog.Logger
}

// NewPromoService creates a new service. Pass port.NopNotifier{} when no
// broker is configured.
func NewPromoService(proposals port.ProposalRepository, businesses port.BusinessRepository, notifier port.DecisionNotifier, logger *slog.Logger) *PromoService {
	return &PromoService{proposals: proposals, businesses: businesses, notifier: notifier, logger: logger}
}

// CreateProposal validates the input and persists a new pending proposal.
func (s *PromoService) CreateProposal(ctx context.Context, in port.CreateProposalInput) (*domain.Proposal, error) {
	switch {
	case in.BusinessID == "":
		return nil, port.NewValidationError("businessId", "required")
	case in.CreatorID == "":
		return nil, port.NewValidationError("creatorId", "required")
	case in.WorkspaceID == "":
		return nil, port.NewValidationError("workspaceId", "required")
	case strings.TrimSpace(in.Title) == "":
		return nil, port.NewValidationError("title", "required")
	case strings.TrimSpace(in.URL) == "":
		return nil, port.NewValidationError("url", "required")
	case in.PriceCents < 0:
		return nil, port.NewValidationError("price", "must not be negative")
	case in.EndDate.Before(in.StartDate):
		return nil, port.NewValidationError("endDate", "must not precede startDate")
	}

	business, err := s.businesses.GetByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, port.ErrNotFound
	}

	now := time.Now().UTC()
	p := &domain.Proposal{
		ID:          uuid.NewString(),
		BusinessID:  in.BusinessID,
		CreatorID:   in.CreatorID,
		WorkspaceID: in.WorkspaceID,
		Title:       strings.TrimSpace(in.Title),
		URL:         strings.TrimSpace(in.URL),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		PriceCents:  in.PriceCents,
		Status:      domain.ProposalPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.proposals.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProposal returns a proposal by id.
func (s *PromoService) GetProposal(ctx context.Context, id string) (*domain.Proposal, error) {
	p, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, port.ErrNotFound
	}
	return p, nil
}

// ListProposals returns proposals matching the filter, newest first.
func (s *PromoService) ListProposals(ctx context.Context, f port.ProposalFilter) ([]domain.Proposal, error) {
	if f.BusinessID == "" && f.WorkspaceID == "" {
		return nil, port.NewValidationError("filter", "businessId or workspaceId required")
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, port.NewValidationError("status", "unknown status")
	}
	return s.proposals.List(ctx, f)
}

// TransitionStatus moves a pending proposal to a terminal status. An
// accept runs the full materialization transaction; reject and expire are
// pure conditional updates. The decision event is published only after
// the write committed, and a publish failure never fails the call.
func (s *PromoService) TransitionStatus(ctx context.Context, id string, newStatus domain.ProposalStatus) (*domain.Proposal, error) {
	if !domain.CanTransition(domain.ProposalPending, newStatus) {
		return nil, port.NewValidationError("status", "must be accepted, rejected or expired")
	}

	var (
		p   *domain.Proposal
		err error
	)
	if newStatus == domain.ProposalAccepted {
		p, err = s.proposals.AcceptPending(ctx, id)
	} else {
		p, err = s.proposals.MarkIfPending(ctx, id, newStatus)
	}
	if err != nil {
		return nil, err
	}

	if newStatus != domain.ProposalExpired {
		ev := port.DecisionEvent{
			ProposalID: p.ID,
			BusinessID: p.BusinessID,
			CreatorID:  p.CreatorID,
			Status:     p.Status,
			PriceCents: p.PriceCents,
			OccurredAt: p.UpdatedAt,
		}
		if nerr := s.notifier.NotifyDecision(ctx, ev); nerr != nil {
			s.logger.Error("decision event publish failed",
				slog.String("proposal_id", p.ID), slog.Any("error", nerr))
		}
	}
	return p, nil
}

// ComputeBudget derives the business's budget figures from its proposals.
func (s *PromoService) ComputeBudget(ctx context.Context, businessID string) (*domain.Budget, error) {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, port.ErrNotFound
	}
	proposals, err := s.proposals.List(ctx, port.ProposalFilter{BusinessID: businessID})
	if err != nil {
		return nil, err
	}
	b := domain.ComputeBudget(business.BudgetCents, proposals)
	return &b, nil
}

// LinkAnalytics reads the metrics row of a promotional link.
func (s *PromoService) LinkAnalytics(ctx context.Context, workspaceLinkID string) (*domain.LinkMetrics, error) {
	m, err := s.proposals.GetLinkMetrics(ctx, workspaceLinkID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, port.ErrNotFound
	}
	return m, nil
}
