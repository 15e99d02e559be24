package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

const testBusinessID = "biz-1"

func newPromoFixture() (*PromoService, *fakeProposalRepo, *recordingNotifier) {
	repo := newFakeProposalRepo()
	businesses := &fakeBusinessRepo{businesses: map[string]domain.Business{
		testBusinessID: {ID: testBusinessID, Name: "Glow Coffee Co.", BudgetCents: 100000},
	}}
	notifier := &recordingNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPromoService(repo, businesses, notifier, logger), repo, notifier
}

func validInput() port.CreateProposalInput {
	now := time.Now().UTC()
	return port.CreateProposalInput{
		BusinessID:  testBusinessID,
		CreatorID:   "creator-1",
		WorkspaceID: "ws-1",
		Title:       "Spring roast",
		URL:         "https://glow.coffee/spring",
		StartDate:   now,
		EndDate:     now.AddDate(0, 1, 0),
		PriceCents:  20000,
	}
}

func TestCreateProposal(t *testing.T) {
	svc, repo, _ := newPromoFixture()

	p, err := svc.CreateProposal(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProposalPending, p.Status)
	assert.Nil(t, p.WorkspaceLinkID)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(20000), stored.PriceCents)
}

func TestCreateProposalValidation(t *testing.T) {
	svc, _, _ := newPromoFixture()

	mutate := map[string]func(*port.CreateProposalInput){
		"missing business":  func(in *port.CreateProposalInput) { in.BusinessID = "" },
		"missing creator":   func(in *port.CreateProposalInput) { in.CreatorID = "" },
		"missing workspace": func(in *port.CreateProposalInput) { in.WorkspaceID = "" },
		"blank title":       func(in *port.CreateProposalInput) { in.Title = "   " },
		"blank url":         func(in *port.CreateProposalInput) { in.URL = "" },
		"negative price":    func(in *port.CreateProposalInput) { in.PriceCents = -1 },
		"end before start":  func(in *port.CreateProposalInput) { in.EndDate = in.StartDate.AddDate(0, 0, -1) },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			fn(&in)
			_, err := svc.CreateProposal(context.Background(), in)
			var vErr *port.ValidationError
			assert.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
		})
	}

	t.Run("unknown business", func(t *testing.T) {
		in := validInput()
		in.BusinessID = "nope"
		_, err := svc.CreateProposal(context.Background(), in)
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestAcceptMaterializesLink(t *testing.T) {
	svc, repo, notifier := newPromoFixture()

	p, err := svc.CreateProposal(context.Background(), validInput())
	require.NoError(t, err)

	accepted, err := svc.TransitionStatus(context.Background(), p.ID, domain.ProposalAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalAccepted, accepted.Status)
	require.NotNil(t, accepted.WorkspaceLinkID)
	assert.Equal(t, 1, repo.linkCount())

	// metrics shell exists with all counters zeroed
	m, err := svc.LinkAnalytics(context.Background(), *accepted.WorkspaceLinkID)
	require.NoError(t, err)
	assert.Equal(t, testBusinessID, m.BusinessID)
	assert.Zero(t, m.Clicks)
	assert.Zero(t, m.Conversions)
	assert.Zero(t, m.RevenueCents)

	events := notifier.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, domain.ProposalAccepted, events[0].Status)
	assert.Equal(t, p.ID, events[0].ProposalID)
}

func TestRejectHasNoSideEffects(t *testing.T) {
	svc, repo, notifier := newPromoFixture()

	p, err := svc.CreateProposal(context.Background(), validInput())
	require.NoError(t, err)

	rejected, err := svc.TransitionStatus(context.Background(), p.ID, domain.ProposalRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalRejected, rejected.Status)
	assert.Nil(t, rejected.WorkspaceLinkID)
	assert.Zero(t, repo.linkCount())

	events := notifier.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, domain.ProposalRejected, events[0].Status)
}

func TestTransitionStatusInvalidTarget(t *testing.T) {
	svc, _, _ := newPromoFixture()

	for _, status := range []domain.ProposalStatus{domain.ProposalPending, "archived", ""} {
		_, err := svc.TransitionStatus(context.Background(), "any", status)
		var vErr *port.ValidationError
		assert.True(t, errors.As(err, &vErr), "status %q", status)
	}
}

func TestTransitionStatusUnknownProposal(t *testing.T) {
	svc, _, _ := newPromoFixture()

	_, err := svc.TransitionStatus(context.Background(), "missing", domain.ProposalAccepted)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

// TestConcurrentAccept ensures only one of many concurrent accepts wins
// and exactly one link is created; the losers get ErrAlreadyProcessed.
func TestConcurrentAccept(t *testing.T) {
	svc, repo, _ := newPromoFixture()

	p, err := svc.CreateProposal(context.Background(), validInput())
	require.NoError(t, err)

	const callers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.TransitionStatus(context.Background(), p.ID, domain.ProposalAccepted)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, port.ErrAlreadyProcessed):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, callers-1, conflicts)
	assert.Equal(t, 1, repo.linkCount())
}

// TestAcceptThenReject verifies retrying a decided proposal conflicts
// instead of creating a second link.
func TestAcceptThenReject(t *testing.T) {
	svc, repo, _ := newPromoFixture()

	p, err := svc.CreateProposal(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.ProposalAccepted)
	require.NoError(t, err)

	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.ProposalRejected)
	assert.ErrorIs(t, err, port.ErrAlreadyProcessed)
	_, err = svc.TransitionStatus(context.Background(), p.ID, domain.ProposalAccepted)
	assert.ErrorIs(t, err, port.ErrAlreadyProcessed)
	assert.Equal(t, 1, repo.linkCount())
}

func TestComputeBudgetLedger(t *testing.T) {
	svc, _, _ := newPromoFixture()
	ctx := context.Background()

	// scenario: budget 100000, propose 20000 -> pending reserves it
	first, err := svc.CreateProposal(ctx, validInput())
	require.NoError(t, err)

	b, err := svc.ComputeBudget(ctx, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Budget{TotalCents: 100000, PendingCents: 20000, AvailableCents: 80000}, b)

	// accepting moves the reservation into spend
	_, err = svc.TransitionStatus(ctx, first.ID, domain.ProposalAccepted)
	require.NoError(t, err)

	b, err = svc.ComputeBudget(ctx, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Budget{TotalCents: 100000, SpentCents: 20000, AvailableCents: 80000}, b)

	// rejecting a second proposal releases its reservation
	in := validInput()
	in.PriceCents = 5000
	second, err := svc.CreateProposal(ctx, in)
	require.NoError(t, err)

	b, err = svc.ComputeBudget(ctx, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), b.PendingCents)

	_, err = svc.TransitionStatus(ctx, second.ID, domain.ProposalRejected)
	require.NoError(t, err)

	b, err = svc.ComputeBudget(ctx, testBusinessID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Budget{TotalCents: 100000, SpentCents: 20000, AvailableCents: 80000}, b)
	assert.Equal(t, b.TotalCents, b.SpentCents+b.PendingCents+b.AvailableCents)
}

func TestListProposalsRequiresScope(t *testing.T) {
	svc, _, _ := newPromoFixture()

	_, err := svc.ListProposals(context.Background(), port.ProposalFilter{})
	var vErr *port.ValidationError
	assert.True(t, errors.As(err, &vErr))

	_, err = svc.ListProposals(context.Background(), port.ProposalFilter{
		BusinessID: testBusinessID,
		Status:     "archived",
	})
	assert.True(t, errors.As(err, &vErr))
}

func TestLinkAnalyticsUnknownLink(t *testing.T) {
	svc, _, _ := newPromoFixture()

	_, err := svc.LinkAnalytics(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrNotFound)
}
