package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

// fakeProposalRepo is an in-memory port.ProposalRepository. The mutex
// gives it the same at-most-one-winner semantics the conditional update
// provides in Postgres, which is what the concurrency tests lean on.
type fakeProposalRepo struct {
	mu        sync.Mutex
	proposals map[string]*domain.Proposal
	links     map[string]domain.WorkspaceLink
	metrics   map[string]domain.LinkMetrics
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{
		proposals: make(map[string]*domain.Proposal),
		links:     make(map[string]domain.WorkspaceLink),
		metrics:   make(map[string]domain.LinkMetrics),
	}
}

func (f *fakeProposalRepo) Create(_ context.Context, p *domain.Proposal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.proposals[p.ID] = &cp
	return nil
}

func (f *fakeProposalRepo) GetByID(_ context.Context, id string) (*domain.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProposalRepo) List(_ context.Context, filter port.ProposalFilter) ([]domain.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Proposal
	for _, p := range f.proposals {
		if filter.BusinessID != "" && p.BusinessID != filter.BusinessID {
			continue
		}
		if filter.WorkspaceID != "" && p.WorkspaceID != filter.WorkspaceID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProposalRepo) AcceptPending(_ context.Context, id string) (*domain.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	if p.Status != domain.ProposalPending {
		return nil, port.ErrAlreadyProcessed
	}
	now := time.Now().UTC()
	linkID := uuid.NewString()
	position := 0
	for _, l := range f.links {
		if l.WorkspaceID == p.WorkspaceID && l.Position >= position {
			position = l.Position + 1
		}
	}
	f.links[linkID] = domain.WorkspaceLink{
		ID:          linkID,
		WorkspaceID: p.WorkspaceID,
		Type:        domain.LinkTypePromotional,
		Title:       p.Title,
		URL:         p.URL,
		Position:    position,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.metrics[linkID] = domain.LinkMetrics{
		WorkspaceLinkID: linkID,
		BusinessID:      p.BusinessID,
		UpdatedAt:       now,
	}
	p.Status = domain.ProposalAccepted
	p.WorkspaceLinkID = &linkID
	p.UpdatedAt = now
	cp := *p
	return &cp, nil
}

func (f *fakeProposalRepo) MarkIfPending(_ context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.proposals[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	if p.Status != domain.ProposalPending {
		return nil, port.ErrAlreadyProcessed
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

func (f *fakeProposalRepo) GetLinkMetrics(_ context.Context, workspaceLinkID string) (*domain.LinkMetrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.metrics[workspaceLinkID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeProposalRepo) linkCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.links)
}

type fakeBusinessRepo struct {
	businesses map[string]domain.Business
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, id string) (*domain.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
}

func (f *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.campaigns[c.ID] = &cp
	return nil
}

func (f *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaignRepo) ListByBusiness(_ context.Context, businessID string) ([]domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Campaign
	for _, c := range f.campaigns {
		if c.BusinessID == businessID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCampaignRepo) UpdateStatus(_ context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.campaigns[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, nil
}

// recordingNotifier collects published decision events.
type recordingNotifier struct {
	mu     sync.Mutex
	events []port.DecisionEvent
}

func (n *recordingNotifier) NotifyDecision(_ context.Context, ev port.DecisionEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return nil
}

func (n *recordingNotifier) recorded() []port.DecisionEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]port.DecisionEvent(nil), n.events...)
}
