package domain

import (
	"math"
	"time"
)

// Budget is the derived view of a business's promotional spend. Spent and
// Pending are sums over accepted and pending proposals respectively.
// Available floors at zero when the business has overcommitted; otherwise
// Spent + Pending + Available == Total.
type Budget struct {
	TotalCents     int64 `json:"totalCents"`
	SpentCents     int64 `json:"spentCents"`
	PendingCents   int64 `json:"pendingCents"`
	AvailableCents int64 `json:"availableCents"`
}

// ComputeBudget derives the budget figures from the business's budget
// ceiling and its current proposals. It is a pure function over raw rows;
// no ledger state is cached anywhere, so the figures cannot drift.
func ComputeBudget(totalCents int64, proposals []Proposal) Budget {
	b := Budget{TotalCents: totalCents}
	for _, p := range proposals {
		switch p.Status {
		case ProposalAccepted:
			b.SpentCents += p.PriceCents
		case ProposalPending:
			b.PendingCents += p.PriceCents
		}
	}
	b.AvailableCents = totalCents - b.SpentCents - b.PendingCents
	if b.AvailableCents < 0 {
		b.AvailableCents = 0
	}
	return b
}

// CampaignProgress returns how far through its date range a campaign is,
// as a percentage clamped to [0,100]. Campaigns without both dates, or
// with a zero-length range, report 0.
func CampaignProgress(c Campaign, now time.Time) int {
	if c.StartDate == nil || c.EndDate == nil {
		return 0
	}
	total := c.EndDate.Sub(*c.StartDate)
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(now.Sub(*c.StartDate)) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// AvgCompletion is the mean completion percentage over the given active
// campaigns, or 0 when there are none.
func AvgCompletion(campaigns []Campaign, now time.Time) int {
	if len(campaigns) == 0 {
		return 0
	}
	sum := 0
	for _, c := range campaigns {
		sum += CampaignProgress(c, now)
	}
	return int(math.Round(float64(sum) / float64(len(campaigns))))
}
