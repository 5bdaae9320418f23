package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
)

func Test_mapErr(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: errs.ErrNotFound},
		{
			name: "open loan index",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: abiertoUniqueIndexName}),
			want: errs.ErrResourceUnavailable,
		},
		{
			name: "laboratorio index",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: laboratorioUniqueIndexName},
			want: errs.ErrConflict,
		},
		{
			name: "other unique",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "transferencias_codigo_qr_key"},
			want: errs.ErrConflict,
		},
		{
			name: "not a unique violation",
			err:  &pgconn.PgError{Code: pgerrcode.SerializationFailure},
		},
		{name: "passthrough", err: other, want: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.err, "recurso k-1")
			switch {
			case tt.err == nil:
				require.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
