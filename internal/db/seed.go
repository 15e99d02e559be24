package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed ids so seeded data is stable across runs and easy to curl.
const (
	seedBusinessID  = "5f2b6c1e-0000-4000-8000-000000000001"
	seedUserID      = "5f2b6c1e-0000-4000-8000-000000000002"
	seedCreatorID   = "5f2b6c1e-0000-4000-8000-000000000003"
	seedWorkspaceID = "5f2b6c1e-0000-4000-8000-000000000004"
	seedLinkID      = "5f2b6c1e-0000-4000-8000-000000000005"

	// SeedBusinessToken authenticates as the demo business.
	SeedBusinessToken = "5f2b6c1e-0000-4000-8000-00000000000a"
	// SeedCreatorToken authenticates as the demo creator.
	SeedCreatorToken = "5f2b6c1e-0000-4000-8000-00000000000b"
)

// Seed inserts demo data: a business with a $1000 budget, a creator with
// a workspace, two sessions, three campaigns and three proposals (one of
// them accepted, complete with its live link and zeroed metrics row).
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()

	_, err := pool.Exec(ctx, `INSERT INTO businesses (id, name, budget_cents, created_at)
VALUES ($1, 'Glow Coffee Co.', 100000, $2) ON CONFLICT DO NOTHING`, seedBusinessID, now)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO creators (id, user_id, created_at)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, seedCreatorID, seedUserID, now)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO workspaces (id, creator_id, slug, created_at)
VALUES ($1, $2, 'jamie-links', $3) ON CONFLICT DO NOTHING`, seedWorkspaceID, seedCreatorID, now)
	if err != nil {
		return err
	}

	sessions := []struct {
		token      string
		businessID *string
	}{
		{SeedBusinessToken, ptr(seedBusinessID)},
		{SeedCreatorToken, nil},
	}
	for _, s := range sessions {
		_, err = pool.Exec(ctx, `INSERT INTO sessions (token, user_id, business_id, expires_at)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`, s.token, seedUserID, s.businessID, now.AddDate(0, 1, 0))
		if err != nil {
			return err
		}
	}

	campaigns := []struct {
		id, title, status  string
		startDate, endDate time.Time
	}{
		{"5f2b6c1e-0000-4000-8000-000000000010", "Spring roast launch", "active", now.AddDate(0, 0, -10), now.AddDate(0, 0, 10)},
		{"5f2b6c1e-0000-4000-8000-000000000011", "Summer cold brew", "draft", now.AddDate(0, 1, 0), now.AddDate(0, 2, 0)},
		{"5f2b6c1e-0000-4000-8000-000000000012", "Holiday gift boxes", "completed", now.AddDate(0, -3, 0), now.AddDate(0, -2, 0)},
	}
	for _, c := range campaigns {
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
    (id, business_id, creator_id, title, description, start_date, end_date, status, metrics, created_at, updated_at)
VALUES ($1, $2, $3, $4, '', $5, $6, $7, '{}', $8, $8) ON CONFLICT DO NOTHING`,
			c.id, seedBusinessID, seedCreatorID, c.title, c.startDate, c.endDate, c.status, now)
		if err != nil {
			return err
		}
	}

	// accepted proposal comes with its live link and zeroed metrics
	_, err = pool.Exec(ctx, `INSERT INTO workspace_links
    (id, workspace_id, type, title, url, position, is_active, created_at, updated_at)
VALUES ($1, $2, 'promotional', 'Glow spring roast', 'https://glow.coffee/spring', 0, true, $3, $3)
ON CONFLICT DO NOTHING`, seedLinkID, seedWorkspaceID, now)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO promotional_link_metrics
    (workspace_link_id, business_id, clicks, conversions, revenue_cents, updated_at)
VALUES ($1, $2, 0, 0, 0, $3) ON CONFLICT DO NOTHING`, seedLinkID, seedBusinessID, now)
	if err != nil {
		return err
	}

	proposals := []struct {
		id, title, url, status string
		priceCents             int64
		linkID                 *string
	}{
		{"5f2b6c1e-0000-4000-8000-000000000020", "Glow spring roast", "https://glow.coffee/spring", "accepted", 30000, ptr(seedLinkID)},
		{"5f2b6c1e-0000-4000-8000-000000000021", "Glow cold brew teaser", "https://glow.coffee/coldbrew", "pending", 20000, nil},
		{"5f2b6c1e-0000-4000-8000-000000000022", "Glow merch drop", "https://glow.coffee/merch", "rejected", 5000, nil},
	}
	for _, p := range proposals {
		_, err = pool.Exec(ctx, `INSERT INTO proposals
    (id, business_id, creator_id, workspace_id, title, url, start_date, end_date,
     price_cents, status, workspace_link_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12) ON CONFLICT DO NOTHING`,
			p.id, seedBusinessID, seedCreatorID, seedWorkspaceID, p.title, p.url,
			now.AddDate(0, 0, -10), now.AddDate(0, 0, 20), p.priceCents, p.status, p.linkID, now)
		if err != nil {
			return err
		}
	}
	return nil
}

func ptr(s string) *string { return &s }
