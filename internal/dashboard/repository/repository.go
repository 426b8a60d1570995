package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MonthlySales is the aggregated revenue of one calendar month.
type MonthlySales struct {
	Month      time.Time
	TotalCents int64
}

// Repository defines the read queries behind the dashboard.
type Repository interface {
	RevenueSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	ActiveProjectCount(ctx context.Context, userID uuid.UUID) (int, error)
	LowStockCount(ctx context.Context, userID uuid.UUID, threshold int) (int, error)
	MonthlySalesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlySales, error)
}

// Repo implements the dashboard repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dashboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// RevenueSince sums approved project totals created since the given time.
// Drafts do not count as revenue; only projects whose stock was committed.
func (r *Repo) RevenueSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(total_cost_cents), 0)
		FROM projects
		WHERE user_id = $1 AND status = 'IN_PROGRESS' AND created_at >= $2`

	var total int64
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("revenue since: %w", err)
	}
	return total, nil
}

// ActiveProjectCount counts projects currently being worked on.
func (r *Repo) ActiveProjectCount(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM projects
		WHERE user_id = $1 AND status = 'IN_PROGRESS'`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("active project count: %w", err)
	}
	return count, nil
}

// LowStockCount counts materials whose stock fell under the threshold.
func (r *Repo) LowStockCount(ctx context.Context, userID uuid.UUID, threshold int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM materials
		WHERE user_id = $1 AND stock < $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, threshold).Scan(&count); err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return count, nil
}

// MonthlySalesSince aggregates non-draft project totals per calendar month.
// Months with no sales are absent; the service fills the gaps. Truncation
// happens in UTC so the buckets line up with the service's UTC month keys
// regardless of the database's timezone setting.
func (r *Repo) MonthlySalesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlySales, error) {
	query := `
		SELECT date_trunc('month', created_at AT TIME ZONE 'UTC') AS month, SUM(total_cost_cents)
		FROM projects
		WHERE user_id = $1 AND status <> 'DRAFT' AND created_at >= $2
		GROUP BY month
		ORDER BY month ASC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()

	out := make([]MonthlySales, 0)
	for rows.Next() {
		var entry MonthlySales
		if err := rows.Scan(&entry.Month, &entry.TotalCents); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate monthly sales: %w", rows.Err())
	}

	return out, nil
}
