package domain

import "time"

// ProposalStatus is the lifecycle state of a promotional proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExpired  ProposalStatus = "expired"
)

// Valid reports whether s is a known proposal status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalPending, ProposalAccepted, ProposalRejected, ProposalExpired:
		return true
	}
	return false
}

// Terminal reports whether a proposal in this status can no longer change.
// Everything except pending is terminal.
func (s ProposalStatus) Terminal() bool {
	return s.Valid() && s != ProposalPending
}

// CanTransition reports whether a proposal may move from one status to
// another. Only pending proposals move: a creator decides (accepted or
// rejected) or the expiry job times the proposal out (expired).
func CanTransition(from, to ProposalStatus) bool {
	if from != ProposalPending {
		return false
	}
	switch to {
	case ProposalAccepted, ProposalRejected, ProposalExpired:
		return true
	}
	return false
}

// Proposal is a business's offer to pay a creator to host a promotional
// link on their workspace for a date range. Prices are integer cents.
// WorkspaceLinkID is set exactly when the proposal has been accepted and
// points at the live link created by the acceptance transaction.
type Proposal struct {
	ID              string
	BusinessID      string
	CreatorID       string
	WorkspaceID     string
	Title           string
	URL             string
	StartDate       time.Time
	EndDate         time.Time
	PriceCents      int64
	Status          ProposalStatus
	WorkspaceLinkID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
