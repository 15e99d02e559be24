package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

// CampaignService implements port.CampaignUseCase. The overview composes
// campaign reads with the budget ledger in a single response.
type CampaignService struct {
	campaigns  port.CampaignRepository
	proposals  port.ProposalRepository
	businesses port.BusinessRepository

	now func() time.Time
}

// NewCampaignService creates a new service.
func NewCampaignService(campaigns port.CampaignRepository, proposals port.ProposalRepository, businesses port.BusinessRepository) *CampaignService {
	return &CampaignService{
		campaigns:  campaigns,
		proposals:  proposals,
		businesses: businesses,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetBusinessOverview partitions the business's campaigns by status,
// derives budget and completion stats and attaches the proposals still
// pending or rejected. Accepted proposals are omitted here; they surface
// through campaigns and live links.
func (s *CampaignService) GetBusinessOverview(ctx context.Context, businessID string) (*port.Overview, error) {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, port.ErrNotFound
	}

	campaigns, err := s.campaigns.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	proposals, err := s.proposals.List(ctx, port.ProposalFilter{BusinessID: businessID})
	if err != nil {
		return nil, err
	}

	ov := &port.Overview{
		ActiveCampaigns:    []domain.Campaign{},
		DraftCampaigns:     []domain.Campaign{},
		CompletedCampaigns: []domain.Campaign{},
		Proposals:          []domain.Proposal{},
	}
	for _, c := range campaigns {
		switch c.Status {
		case domain.CampaignActive:
			ov.ActiveCampaigns = append(ov.ActiveCampaigns, c)
		case domain.CampaignCompleted:
			ov.CompletedCampaigns = append(ov.CompletedCampaigns, c)
		default:
			ov.DraftCampaigns = append(ov.DraftCampaigns, c)
		}
	}
	for _, p := range proposals {
		if p.Status == domain.ProposalPending || p.Status == domain.ProposalRejected {
			ov.Proposals = append(ov.Proposals, p)
		}
	}

	ov.Stats = port.OverviewStats{
		Budget:           domain.ComputeBudget(business.BudgetCents, proposals),
		ActiveCampaigns:  len(ov.ActiveCampaigns),
		AvgCompletionPct: domain.AvgCompletion(ov.ActiveCampaigns, s.now()),
	}
	return ov, nil
}

// CreateCampaign validates the input and persists a new campaign for the
// business.
func (s *CampaignService) CreateCampaign(ctx context.Context, businessID string, in port.CreateCampaignInput) (*domain.Campaign, error) {
	status := in.Status
	if status == "" {
		status = domain.CampaignDraft
	}
	switch {
	case businessID == "":
		return nil, port.NewValidationError("businessId", "required")
	case in.CreatorID == "":
		return nil, port.NewValidationError("creatorId", "required")
	case strings.TrimSpace(in.Title) == "":
		return nil, port.NewValidationError("title", "required")
	case !status.Valid():
		return nil, port.NewValidationError("status", "unknown status")
	case in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate):
		return nil, port.NewValidationError("endDate", "must not precede startDate")
	}

	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, port.ErrNotFound
	}

	now := s.now()
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		CreatorID:   in.CreatorID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Metrics:     json.RawMessage(`{}`),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaignStatus changes a campaign's status. A campaign owned by a
// different business reads as not-found so its existence is not leaked.
func (s *CampaignService) UpdateCampaignStatus(ctx context.Context, businessID, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, port.NewValidationError("status", "unknown status")
	}
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.BusinessID != businessID {
		return nil, port.ErrNotFound
	}
	updated, err := s.campaigns.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, port.ErrNotFound
	}
	return updated, nil
}
