package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

var recursoColumns = []string{"id", "codigo", "tipo", "nombre", "laboratorio", "aula", "contenido", "estado", "creado_en"}

const nextCodigoQuery = `
insert into recurso_secuencias (tipo, ultimo) values ($1, 1)
on conflict (tipo) do update set ultimo = recurso_secuencias.ultimo + 1
returning ultimo`

func (r *repository) CreateRecurso(ctx context.Context, rec model.Recurso) (model.Recurso, error) {
	var out model.Recurso
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var n int
		if err := tx.QueryRow(ctx, nextCodigoQuery, string(rec.Tipo)).Scan(&n); err != nil {
			return err
		}
		query, args, err := qb.Insert(recursosTableName).
			Columns(recursoColumns...).
			Values(rec.ID, rec.Tipo.Codigo(n), string(rec.Tipo), rec.Nombre, rec.Laboratorio, rec.Aula,
				nonNil(rec.Contenido), string(model.RecursoPendiente), rec.CreadoEn).
			Suffix("returning " + strings.Join(recursoColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Recurso])
		return err
	})
	if err != nil {
		r.log.Warn("CreateRecurso", zap.String("tipo", string(rec.Tipo)), zap.Error(err))
		return model.Recurso{}, mapErr(err, "recurso")
	}
	return out, nil
}

func (r *repository) GetRecurso(ctx context.Context, id string) (model.Recurso, error) {
	return r.getRecurso(ctx, r.db, id, false)
}

func (r *repository) getRecurso(ctx context.Context, q querier, id string, forUpdate bool) (model.Recurso, error) {
	b := qb.Select(recursoColumns...).From(recursosTableName).Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Recurso{}, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return model.Recurso{}, err
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Recurso])
	if err != nil {
		return model.Recurso{}, mapErr(err, "recurso "+id)
	}
	return rec, nil
}

func (r *repository) ListRecursos(ctx context.Context, f model.RecursoFilter) ([]model.Recurso, error) {
	b := qb.Select(recursoColumns...).From(recursosTableName).OrderBy("creado_en", "id")
	if f.Tipo != "" {
		b = b.Where(sq.Eq{"tipo": string(f.Tipo)})
	}
	if f.Estado != "" {
		b = b.Where(sq.Eq{"estado": string(f.Estado)})
	}
	return r.selectRecursos(ctx, b)
}

func (r *repository) FindRecursosByCodigo(ctx context.Context, codigos []string) ([]model.Recurso, error) {
	if len(codigos) == 0 {
		return []model.Recurso{}, nil
	}
	b := qb.Select(recursoColumns...).From(recursosTableName).
		Where(sq.Eq{"codigo": codigos}).
		OrderBy("creado_en", "id")
	return r.selectRecursos(ctx, b)
}

func (r *repository) selectRecursos(ctx context.Context, b sq.SelectBuilder) ([]model.Recurso, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Recurso])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) UpdateRecurso(ctx context.Context, rec model.Recurso) (model.Recurso, error) {
	var out model.Recurso
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		cur, err := r.getRecurso(ctx, tx, rec.ID, true)
		if err != nil {
			return err
		}
		if cur.Locked() {
			return errors.Wrapf(errs.ErrResourceLocked, "recurso %s is %s", cur.Codigo, cur.Estado)
		}
		query, args, err := qb.Update(recursosTableName).
			SetMap(map[string]any{
				"nombre":         rec.Nombre,
				"laboratorio":    rec.Laboratorio,
				"aula":           rec.Aula,
				"contenido":      nonNil(rec.Contenido),
				"actualizado_en": sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": rec.ID}).
			Suffix("returning " + strings.Join(recursoColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Recurso])
		return err
	})
	if err != nil {
		return model.Recurso{}, mapErr(err, "recurso "+rec.ID)
	}
	return out, nil
}

func (r *repository) DeleteRecurso(ctx context.Context, id string) error {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		cur, err := r.getRecurso(ctx, tx, id, true)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil
			}
			return err
		}
		if cur.Locked() {
			return errors.Wrapf(errs.ErrResourceLocked, "recurso %s is %s", cur.Codigo, cur.Estado)
		}
		return r.exec(ctx, tx, qb.Delete(recursosTableName).Where(sq.Eq{"id": id}))
	})
	return mapErr(err, "recurso "+id)
}

func (r *repository) setRecursoEstado(ctx context.Context, q querier, ids []string, estado model.EstadoRecurso) error {
	if len(ids) == 0 {
		return nil
	}
	return r.exec(ctx, q, qb.Update(recursosTableName).
		Set("estado", string(estado)).
		Set("actualizado_en", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}))
}
