package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/mzhelnin/adboard-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passes through", err: nil, want: nil},
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("query: %w", sql.ErrNoRows), want: store.ErrNotFound},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			want: store.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "advertisements_owner_id_fkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "title"},
			want: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapErrorUnclassified(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")
	assert.Equal(t, err, MapError(err), "unclassified errors pass through unchanged")
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result sql.Result
		want   error
	}{
		{name: "rows touched", result: fakeResult{rows: 1}},
		{name: "zero rows reports the target error", result: fakeResult{rows: 0}, want: store.ErrUserNotFound},
		{name: "nil result", result: nil, want: errors.New("nil result")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckRowsAffected(tc.result, store.ErrUserNotFound)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if errors.Is(tc.want, store.ErrUserNotFound) {
				assert.ErrorIs(t, err, store.ErrUserNotFound)
			}
		})
	}
}

func TestCheckRowsAffectedPropagatesResultError(t *testing.T) {
	t.Parallel()

	resultErr := errors.New("driver does not report rows")
	err := CheckRowsAffected(fakeResult{err: resultErr}, store.ErrUserNotFound)
	assert.ErrorIs(t, err, resultErr)
}
