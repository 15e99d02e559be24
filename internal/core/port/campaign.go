package port

import (
	"context"
	"time"

	"linkfolio-promos/internal/core/domain"
)

// CampaignRepository is the persistence port for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns the campaign or nil when absent.
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// ListByBusiness returns the business's campaigns, newest first.
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Campaign, error)
	// UpdateStatus sets the campaign status and returns the updated row,
	// or nil when the campaign does not exist.
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error)
}

// CreateCampaignInput carries the validated fields for a new campaign.
// Status defaults to draft when empty.
type CreateCampaignInput struct {
	CreatorID   string
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      domain.CampaignStatus
}

// OverviewStats is the headline block of the business overview.
type OverviewStats struct {
	Budget           domain.Budget `json:"budget"`
	ActiveCampaigns  int           `json:"activeCampaigns"`
	AvgCompletionPct int           `json:"avgCompletionPct"`
}

// Overview is the business-facing dashboard aggregate: campaigns
// partitioned by status, budget figures and the proposals still awaiting
// or denied a decision. Accepted proposals surface through campaigns and
// live links instead.
type Overview struct {
	Stats              OverviewStats
	ActiveCampaigns    []domain.Campaign
	DraftCampaigns     []domain.Campaign
	CompletedCampaigns []domain.Campaign
	Proposals          []domain.Proposal
}

// CampaignUseCase composes campaign CRUD with the budget ledger.
type CampaignUseCase interface {
	GetBusinessOverview(ctx context.Context, businessID string) (*Overview, error)
	CreateCampaign(ctx context.Context, businessID string, in CreateCampaignInput) (*domain.Campaign, error)
	// UpdateCampaignStatus changes a campaign's status after an ownership
	// check; a foreign campaign reads as ErrNotFound so existence is not
	// leaked.
	UpdateCampaignStatus(ctx context.Context, businessID, id string, status domain.CampaignStatus) (*domain.Campaign, error)
}
