// File: internal/store/service_request.go
package store

import (
	"context"
	"fmt"

	"motofix-admin/internal/database"
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"
)

const serviceRequestColumns = "id, customer_phone, location, description, status, created_at"

func ListServiceRequests(ctx context.Context, db database.DB, f *query.Filters, limit int) ([]model.ServiceRequest, error) {
	clause, args := f.Where()
	sql := fmt.Sprintf(
		`SELECT %s FROM service_requests%s ORDER BY created_at DESC LIMIT $%d`,
		serviceRequestColumns, clause, f.NextIndex(),
	)
	args = append(args, limit)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListServiceRequests: %w", err)
	}
	defer rows.Close()

	requests := []model.ServiceRequest{}
	for rows.Next() {
		r := model.ServiceRequest{}
		if err := rows.Scan(
			&r.ID,
			&r.CustomerPhone,
			&r.Location,
			&r.Description,
			&r.Status,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListServiceRequests: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListServiceRequests: %w", err)
	}
	return requests, nil
}
