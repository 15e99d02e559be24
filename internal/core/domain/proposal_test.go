package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []ProposalStatus{ProposalPending, ProposalAccepted, ProposalRejected, ProposalExpired}

	for _, from := range statuses {
		for _, to := range statuses {
			want := from == ProposalPending && to != ProposalPending
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	// unknown statuses never transition
	assert.False(t, CanTransition(ProposalPending, "archived"))
	assert.False(t, CanTransition("archived", ProposalAccepted))
}

func TestProposalStatusValid(t *testing.T) {
	assert.True(t, ProposalPending.Valid())
	assert.True(t, ProposalExpired.Valid())
	assert.False(t, ProposalStatus("archived").Valid())

	assert.False(t, ProposalPending.Terminal())
	assert.True(t, ProposalAccepted.Terminal())
	assert.True(t, ProposalRejected.Terminal())
	assert.False(t, ProposalStatus("archived").Terminal())
}

func TestCampaignStatusValid(t *testing.T) {
	assert.True(t, CampaignDraft.Valid())
	assert.True(t, CampaignActive.Valid())
	assert.True(t, CampaignCompleted.Valid())
	assert.False(t, CampaignStatus("paused").Valid())
}
