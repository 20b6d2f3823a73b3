// File: internal/store/mechanic_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"motofix-admin/internal/database"
	"motofix-admin/internal/model"
	"motofix-admin/internal/query"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

type fakeRow struct {
	scanErr error
	scanFn  func(dest ...any) error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.scanFn != nil {
		return r.scanFn(dest...)
	}
	return nil
}

func mechanicScanFn(m model.Mechanic) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = m.ID
		*dest[1].(*string) = m.Phone
		*dest[2].(*string) = m.Name
		*dest[3].(**string) = m.Location
		*dest[4].(*bool) = m.IsVerified
		*dest[5].(*float64) = m.Rating
		*dest[6].(*int) = m.JobsCompleted
		*dest[7].(*time.Time) = m.CreatedAt
		return nil
	}
}

type fakeMechanicRows struct {
	mechanics []model.Mechanic
	idx       int
	readErr   error
}

func (r *fakeMechanicRows) Close()                                       {}
func (r *fakeMechanicRows) Err() error                                   { return r.readErr }
func (r *fakeMechanicRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeMechanicRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeMechanicRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeMechanicRows) RawValues() [][]byte                          { return nil }
func (r *fakeMechanicRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeMechanicRows) Next() bool {
	if r.readErr != nil {
		return false
	}
	r.idx++
	return r.idx <= len(r.mechanics)
}

func (r *fakeMechanicRows) Scan(dest ...any) error {
	return mechanicScanFn(r.mechanics[r.idx-1])(dest...)
}

func strPtr(s string) *string { return &s }

func sampleMechanic() model.Mechanic {
	return model.Mechanic{
		ID:            7,
		Phone:         "+256758969973",
		Name:          "John Okello",
		Location:      strPtr("Kampala Central"),
		IsVerified:    true,
		Rating:        4.8,
		JobsCompleted: 156,
		CreatedAt:     time.Now().UTC(),
	}
}

/* ---------- 完整測試 ---------- */

func TestCountMechanics(t *testing.T) {
	f := &query.Filters{}
	f.Equals("is_verified", true)

	var gotSQL string
	var gotArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			gotSQL = sql
			gotArgs = args
			return &fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 95
				return nil
			}}
		},
	}
	total, err := CountMechanics(context.Background(), db, f)
	require.NoError(t, err)
	require.Equal(t, 95, total)
	require.Equal(t, "SELECT COUNT(*) FROM mechanics WHERE is_verified = $1", gotSQL)
	require.Equal(t, []any{true}, gotArgs)
}

func TestListMechanics(t *testing.T) {
	t.Run("success appends limit and offset after filter args", func(t *testing.T) {
		f := &query.Filters{}
		f.Fuzzy("john", "name", "phone", "location")

		sample := sampleMechanic()
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				gotArgs = args
				return &fakeMechanicRows{mechanics: []model.Mechanic{sample}}, nil
			},
		}
		list, err := ListMechanics(context.Background(), db, f, query.NewPage(2, 50))
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, sample.Phone, list[0].Phone)
		require.Contains(t, gotSQL, "ORDER BY created_at DESC LIMIT $2 OFFSET $3")
		require.Equal(t, []any{"%john%", 50, 50}, gotArgs)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListMechanics(context.Background(), db, &query.Filters{}, query.NewPage(1, 10))
		require.Error(t, err)
	})

	t.Run("empty result is an empty slice, not nil", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeMechanicRows{}, nil
			},
		}
		list, err := ListMechanics(context.Background(), db, &query.Filters{}, query.NewPage(1, 10))
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})
}

func TestCreateMechanic(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "+256758969973", args[0])
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 1
					*dest[1].(*time.Time) = now
					return nil
				}}
			},
		}
		m, err := CreateMechanic(context.Background(), db, &model.Mechanic{
			Phone: "+256758969973",
			Name:  "John Okello",
		})
		require.NoError(t, err)
		require.Equal(t, 1, m.ID)
		require.Equal(t, now, m.CreatedAt)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}}
			},
		}
		_, err := CreateMechanic(context.Background(), db, &model.Mechanic{Phone: "+256758969973"})
		require.ErrorIs(t, err, ErrDuplicatePhone)
	})
}

func TestUpdateMechanic(t *testing.T) {
	t.Run("empty patch never reaches the database", func(t *testing.T) {
		_, err := UpdateMechanic(context.Background(), &database.FakeDB{}, 1, MechanicPatch{})
		require.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("only known supplied fields reach the SET clause", func(t *testing.T) {
		sample := sampleMechanic()
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				gotArgs = args
				return &fakeRow{scanFn: mechanicScanFn(sample)}
			},
		}
		rating := 4.9
		verified := true
		m, err := UpdateMechanic(context.Background(), db, 7, MechanicPatch{
			IsVerified: &verified,
			Rating:     &rating,
		})
		require.NoError(t, err)
		require.Equal(t, sample.ID, m.ID)
		require.Contains(t, gotSQL, "SET is_verified = $1, rating = $2 WHERE id = $3")
		require.Equal(t, []any{true, 4.9, 7}, gotArgs)
	})

	t.Run("no row matched", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		name := "x"
		_, err := UpdateMechanic(context.Background(), db, 999, MechanicPatch{Name: &name})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteMechanic(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{7}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteMechanic(context.Background(), db, 7))
	})

	t.Run("no row matched", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteMechanic(context.Background(), db, 999), ErrNotFound)
	})
}
