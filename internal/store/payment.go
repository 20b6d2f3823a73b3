// File: internal/store/payment.go
package store

import (
	"context"
	"fmt"

	"motofix-admin/internal/database"
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"
)

const paymentColumns = "id, transaction_id, phone, amount, type, status, reason, provider, metadata, created_at, updated_at"

func CountPayments(ctx context.Context, db database.DB, f *query.Filters) (int, error) {
	clause, args := f.Where()
	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM payments"+clause, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountPayments: %w", err)
	}
	return total, nil
}

func ListPayments(ctx context.Context, db database.DB, f *query.Filters, p query.Page) ([]model.Payment, error) {
	clause, args := f.Where()
	sql := fmt.Sprintf(
		`SELECT %s FROM payments%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		paymentColumns, clause, f.NextIndex(), f.NextIndex()+1,
	)
	args = append(args, p.Limit, p.Offset)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPayments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		pay := model.Payment{}
		if err := rows.Scan(
			&pay.ID,
			&pay.TransactionID,
			&pay.Phone,
			&pay.Amount,
			&pay.Type,
			&pay.Status,
			&pay.Reason,
			&pay.Provider,
			&pay.Metadata,
			&pay.CreatedAt,
			&pay.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListPayments: %w", err)
		}
		payments = append(payments, pay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPayments: %w", err)
	}
	return payments, nil
}
