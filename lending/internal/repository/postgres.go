package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	recursosTableName          = `recursos`
	prestamosTableName         = `prestamos`
	prestamoRecursosTableName  = `prestamo_recursos`
	transferenciasTableName    = `transferencias`
	laboratorioUniqueIndexName = `recursos_tipo_laboratorio_uidx`
	abiertoUniqueIndexName     = `prestamo_recursos_abierto_uidx`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *repository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (r *repository) exec(ctx context.Context, q querier, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		r.log.Error("exec", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return err
	}
	return nil
}

// mapErr translates driver errors into error kinds, what names the entity for not-found.
func mapErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(errs.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case abiertoUniqueIndexName:
			return errors.Wrap(errs.ErrResourceUnavailable, "recurso already held by an open prestamo")
		case laboratorioUniqueIndexName:
			return errors.Wrap(errs.ErrConflict, "laboratorio already has a resource of this tipo")
		}
		return errors.Wrap(errs.ErrConflict, pgErr.Detail)
	}
	return err
}

func strs[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
