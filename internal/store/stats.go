// File: internal/store/stats.go
package store

import (
	"context"
	"fmt"

	"motofix-admin/internal/database"
)

// DashboardStats aggregates independent COUNT/SUM queries. The queries are
// not wrapped in a transaction, so the numbers are snapshot-inconsistent
// relative to concurrent writes.
type DashboardStats struct {
	TotalRequests       int     `json:"total_requests"`
	CompletedJobs       int     `json:"completed_jobs"`
	PendingJobs         int     `json:"pending_jobs"`
	TotalMechanics      int     `json:"total_mechanics"`
	VerifiedMechanics   int     `json:"verified_mechanics"`
	RevenueCollectedUGX float64 `json:"revenue_collected_ugx"`
	PaidToMechanicsUGX  float64 `json:"paid_to_mechanics_ugx"`
	ProfitUGX           float64 `json:"profit_ugx"`
	TotalTransactions   int     `json:"total_transactions"`
}

func countQuery(ctx context.Context, db database.DB, sql string, dest *int) error {
	return db.QueryRow(ctx, sql).Scan(dest)
}

func GatherStats(ctx context.Context, db database.DB) (*DashboardStats, error) {
	s := &DashboardStats{}

	counts := []struct {
		sql  string
		dest *int
	}{
		{`SELECT COUNT(*) FROM service_requests`, &s.TotalRequests},
		{`SELECT COUNT(*) FROM service_requests WHERE status = 'completed'`, &s.CompletedJobs},
		{`SELECT COUNT(*) FROM service_requests WHERE status IN ('pending', 'accepted')`, &s.PendingJobs},
		{`SELECT COUNT(*) FROM mechanics`, &s.TotalMechanics},
		{`SELECT COUNT(*) FROM mechanics WHERE is_verified = true`, &s.VerifiedMechanics},
		{`SELECT COUNT(*) FROM payments`, &s.TotalTransactions},
	}
	for _, q := range counts {
		if err := countQuery(ctx, db, q.sql, q.dest); err != nil {
			return nil, fmt.Errorf("GatherStats: %w", err)
		}
	}

	if err := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE type = 'collection' AND status = 'success'`,
	).Scan(&s.RevenueCollectedUGX); err != nil {
		return nil, fmt.Errorf("GatherStats: %w", err)
	}
	if err := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE type = 'payout' AND status = 'success'`,
	).Scan(&s.PaidToMechanicsUGX); err != nil {
		return nil, fmt.Errorf("GatherStats: %w", err)
	}
	s.ProfitUGX = s.RevenueCollectedUGX - s.PaidToMechanicsUGX

	return s, nil
}

// RevenuePoint is one calendar day's successful collection total.
type RevenuePoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// RevenueChart returns up to limit most-recent daily revenue points,
// newest first. The handler reverses them for charting.
func RevenueChart(ctx context.Context, db database.DB, limit int) ([]RevenuePoint, error) {
	rows, err := db.Query(ctx,
		`SELECT to_char(created_at::date, 'YYYY-MM-DD') AS date,
		        COALESCE(SUM(amount), 0) AS amount
		 FROM payments
		 WHERE type = 'collection' AND status = 'success'
		 GROUP BY date
		 ORDER BY date DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("RevenueChart: %w", err)
	}
	defer rows.Close()

	points := []RevenuePoint{}
	for rows.Next() {
		p := RevenuePoint{}
		if err := rows.Scan(&p.Date, &p.Amount); err != nil {
			return nil, fmt.Errorf("RevenueChart: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("RevenueChart: %w", err)
	}
	return points, nil
}
