package domain

import (
	"encoding/json"
	"time"
)

// CampaignStatus is the lifecycle state of a promotional campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignActive, CampaignCompleted:
		return true
	}
	return false
}

// Campaign groups a business's promotional work with a creator over a date
// range. Metrics is an opaque aggregate blob maintained by the analytics
// collaborator; this service stores and returns it untouched.
type Campaign struct {
	ID          string
	BusinessID  string
	CreatorID   string
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      CampaignStatus
	Metrics     json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
