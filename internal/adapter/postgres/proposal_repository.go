package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"linkfolio-promos/internal/core/domain"
	"linkfolio-promos/internal/core/port"
)

const proposalColumns = `id, business_id, creator_id, workspace_id, title, url,
       start_date, end_date, price_cents, status, workspace_link_id, created_at, updated_at`

// ProposalRepository implements port.ProposalRepository using pgxpool for
// PostgreSQL.
type ProposalRepository struct {
	pool *pgxpool.Pool
}

// NewProposalRepository returns a new repository instance.
func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var p domain.Proposal
	err := row.Scan(
		&p.ID,
		&p.BusinessID,
		&p.CreatorID,
		&p.WorkspaceID,
		&p.Title,
		&p.URL,
		&p.StartDate,
		&p.EndDate,
		&p.PriceCents,
		&p.Status,
		&p.WorkspaceLinkID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persists a new pending proposal.
func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO proposals
    (id, business_id, creator_id, workspace_id, title, url, start_date, end_date,
     price_cents, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, p.BusinessID, p.CreatorID, p.WorkspaceID, p.Title, p.URL,
		p.StartDate, p.EndDate, p.PriceCents, p.Status, p.CreatedAt, p.UpdatedAt)
	return err
}

// GetByID returns a proposal by id, or nil when absent.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	p, err := scanProposal(r.pool.QueryRow(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns proposals matching the filter ordered by creation time,
// newest first.
func (r *ProposalRepository) List(ctx context.Context, f port.ProposalFilter) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE 1=1`
	args := []interface{}{}
	if f.BusinessID != "" {
		args = append(args, f.BusinessID)
		query += fmt.Sprintf(" AND business_id = $%d", len(args))
	}
	if f.WorkspaceID != "" {
		args = append(args, f.WorkspaceID)
		query += fmt.Sprintf(" AND workspace_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Proposal, error) {
		p, err := scanProposal(row)
		if err != nil {
			return domain.Proposal{}, err
		}
		return *p, nil
	})
}

// AcceptPending accepts a pending proposal and materializes its live link.
// The claim is a conditional update on status, so of any number of
// concurrent accepts exactly one proceeds; the link, its zeroed metrics
// row and the proposal back-link all commit together or not at all.
//
// The transaction runs at the default read-committed level on purpose: a
// losing accept blocks on the winner's row lock, re-evaluates the status
// predicate after the winner commits and comes back with zero rows, which
// conflictOrMissing then classifies. Stricter levels would turn that loss
// into a serialization failure instead.
func (r *ProposalRepository) AcceptPending(ctx context.Context, id string) (p *domain.Proposal, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else if err = tx.Commit(ctx); err != nil {
			p = nil
		}
	}()

	// claim the proposal; zero rows means it is gone or no longer pending
	p, err = scanProposal(tx.QueryRow(ctx, `UPDATE proposals
SET status = $2, updated_at = now()
WHERE id = $1 AND status = $3
RETURNING `+proposalColumns, id, domain.ProposalAccepted, domain.ProposalPending))
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.conflictOrMissing(ctx, tx, id)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	// append the new link after the workspace's existing links
	var position int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM workspace_links WHERE workspace_id = $1`,
		p.WorkspaceID).Scan(&position)
	if err != nil {
		return nil, err
	}

	linkID := uuid.NewString()
	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO workspace_links
    (id, workspace_id, type, title, url, position, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,true,$7,$7)`,
		linkID, p.WorkspaceID, domain.LinkTypePromotional, p.Title, p.URL, position, now)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `INSERT INTO promotional_link_metrics
    (workspace_link_id, business_id, clicks, conversions, revenue_cents, updated_at)
VALUES ($1,$2,0,0,0,$3)`, linkID, p.BusinessID, now)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE proposals SET workspace_link_id = $2 WHERE id = $1`, id, linkID)
	if err != nil {
		return nil, err
	}

	p.WorkspaceLinkID = &linkID
	return p, nil
}

// MarkIfPending conditionally moves a pending proposal to the given
// status with no side effects.
func (r *ProposalRepository) MarkIfPending(ctx context.Context, id string, status domain.ProposalStatus) (*domain.Proposal, error) {
	p, err := scanProposal(r.pool.QueryRow(ctx, `UPDATE proposals
SET status = $2, updated_at = now()
WHERE id = $1 AND status = $3
RETURNING `+proposalColumns, id, status, domain.ProposalPending))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.conflictOrMissing(ctx, r.pool, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conflictOrMissing distinguishes a lost conditional update from a
// missing proposal.
func (r *ProposalRepository) conflictOrMissing(ctx context.Context, q querier, id string) error {
	var status domain.ProposalStatus
	err := q.QueryRow(ctx, `SELECT status FROM proposals WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	if err != nil {
		return err
	}
	return port.ErrAlreadyProcessed
}

// GetLinkMetrics returns the metrics row for a promotional link, or nil
// when absent.
func (r *ProposalRepository) GetLinkMetrics(ctx context.Context, workspaceLinkID string) (*domain.LinkMetrics, error) {
	var m domain.LinkMetrics
	err := r.pool.QueryRow(ctx, `SELECT workspace_link_id, business_id, clicks, conversions, revenue_cents, updated_at
FROM promotional_link_metrics WHERE workspace_link_id = $1`, workspaceLinkID).
		Scan(&m.WorkspaceLinkID, &m.BusinessID, &m.Clicks, &m.Conversions, &m.RevenueCents, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
