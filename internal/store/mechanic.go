// File: internal/store/mechanic.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"motofix-admin/internal/database"
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const mechanicColumns = "id, phone, name, location, is_verified, rating, jobs_completed, created_at"

func scanMechanic(row pgx.Row) (*model.Mechanic, error) {
	m := &model.Mechanic{}
	err := row.Scan(
		&m.ID,
		&m.Phone,
		&m.Name,
		&m.Location,
		&m.IsVerified,
		&m.Rating,
		&m.JobsCompleted,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func CountMechanics(ctx context.Context, db database.DB, f *query.Filters) (int, error) {
	clause, args := f.Where()
	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM mechanics"+clause, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountMechanics: %w", err)
	}
	return total, nil
}

func ListMechanics(ctx context.Context, db database.DB, f *query.Filters, p query.Page) ([]model.Mechanic, error) {
	clause, args := f.Where()
	sql := fmt.Sprintf(
		`SELECT %s FROM mechanics%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		mechanicColumns, clause, f.NextIndex(), f.NextIndex()+1,
	)
	args = append(args, p.Limit, p.Offset)

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListMechanics: %w", err)
	}
	defer rows.Close()

	mechanics := []model.Mechanic{}
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, fmt.Errorf("ListMechanics: %w", err)
		}
		mechanics = append(mechanics, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListMechanics: %w", err)
	}
	return mechanics, nil
}

func CreateMechanic(ctx context.Context, db database.DB, m *model.Mechanic) (*model.Mechanic, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO mechanics (phone, name, location, is_verified, rating, jobs_completed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		m.Phone,
		m.Name,
		m.Location,
		m.IsVerified,
		m.Rating,
		m.JobsCompleted,
	)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("CreateMechanic: %w", err)
	}
	return m, nil
}

// MechanicPatch lists the mutable mechanic fields, each optional. Only these
// known columns ever reach the SET clause; client field names never do.
type MechanicPatch struct {
	Phone         *string
	Name          *string
	Location      *string
	IsVerified    *bool
	Rating        *float64
	JobsCompleted *int
}

func (p MechanicPatch) IsEmpty() bool {
	return p.Phone == nil && p.Name == nil && p.Location == nil &&
		p.IsVerified == nil && p.Rating == nil && p.JobsCompleted == nil
}

func UpdateMechanic(ctx context.Context, db database.DB, id int, patch MechanicPatch) (*model.Mechanic, error) {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.IsVerified != nil {
		set("is_verified", *patch.IsVerified)
	}
	if patch.Rating != nil {
		set("rating", *patch.Rating)
	}
	if patch.JobsCompleted != nil {
		set("jobs_completed", *patch.JobsCompleted)
	}
	if len(sets) == 0 {
		return nil, ErrEmptyUpdate
	}

	args = append(args, id)
	sql := fmt.Sprintf(
		`UPDATE mechanics SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), mechanicColumns,
	)

	m, err := scanMechanic(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("UpdateMechanic: %w", err)
	}
	return m, nil
}

func DeleteMechanic(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM mechanics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteMechanic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
