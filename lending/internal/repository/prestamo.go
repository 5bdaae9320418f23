package repository

import (
	"context"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

type prestamoRow struct {
	ID                      string     `db:"id"`
	Docente                 string     `db:"docente"`
	Recurso                 string     `db:"recurso"`
	RecursosAdicionales     []string   `db:"recursos_adicionales"`
	MotivoTipo              string     `db:"motivo_tipo"`
	MotivoDescripcion       string     `db:"motivo_descripcion"`
	Observaciones           string     `db:"observaciones"`
	Estado                  string     `db:"estado"`
	FechaPrestamo           time.Time  `db:"fecha_prestamo"`
	HoraConfirmacion        *time.Time `db:"hora_confirmacion"`
	HoraDevolucion          *time.Time `db:"hora_devolucion"`
	FirmaDocente            string     `db:"firma_docente"`
	MotivoRechazo           string     `db:"motivo_rechazo"`
	MotivoCancelacion       string     `db:"motivo_cancelacion"`
	ObservacionesDevolucion string     `db:"observaciones_devolucion"`
	FinalizadoPor           string     `db:"finalizado_por"`
	TransferenciaOrigen     string     `db:"transferencia_origen"`
	CreadoPor               string     `db:"creado_por"`
}

var prestamoColumns = []string{
	"id", "docente", "recurso", "recursos_adicionales", "motivo_tipo", "motivo_descripcion",
	"observaciones", "estado", "fecha_prestamo", "hora_confirmacion", "hora_devolucion",
	"firma_docente", "motivo_rechazo", "motivo_cancelacion", "observaciones_devolucion",
	"finalizado_por", "transferencia_origen", "creado_por",
}

func (row prestamoRow) toModel() model.Prestamo {
	return model.Prestamo{
		ID:                      row.ID,
		Docente:                 row.Docente,
		Recurso:                 row.Recurso,
		RecursosAdicionales:     row.RecursosAdicionales,
		Motivo:                  model.Motivo{Tipo: model.MotivoTipo(row.MotivoTipo), Descripcion: row.MotivoDescripcion},
		Observaciones:           row.Observaciones,
		Estado:                  model.EstadoPrestamo(row.Estado),
		FechaPrestamo:           row.FechaPrestamo,
		HoraConfirmacion:        row.HoraConfirmacion,
		HoraDevolucion:          row.HoraDevolucion,
		FirmaDocente:            row.FirmaDocente,
		MotivoRechazo:           row.MotivoRechazo,
		MotivoCancelacion:       row.MotivoCancelacion,
		ObservacionesDevolucion: row.ObservacionesDevolucion,
		FinalizadoPor:           row.FinalizadoPor,
		TransferenciaOrigen:     row.TransferenciaOrigen,
		CreadoPor:               row.CreadoPor,
	}
}

type lockedRecurso struct {
	ID     string `db:"id"`
	Codigo string `db:"codigo"`
	Estado string `db:"estado"`
}

// lockRecursos takes row locks on ids in a stable order and checks they are all free.
func (r *repository) lockRecursos(ctx context.Context, tx pgx.Tx, ids []string) error {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	rows, err := tx.Query(ctx, `select id, codigo, estado from recursos where id = any($1) order by id for update`, sorted)
	if err != nil {
		return err
	}
	locked, err := pgx.CollectRows(rows, pgx.RowToStructByName[lockedRecurso])
	if err != nil {
		return err
	}
	found := make(map[string]lockedRecurso, len(locked))
	for _, l := range locked {
		found[l.ID] = l
	}
	for _, id := range ids {
		l, ok := found[id]
		if !ok {
			return errors.Wrapf(errs.ErrNotFound, "recurso %s", id)
		}
		if model.EstadoRecurso(l.Estado) != model.RecursoPendiente {
			return errors.Wrapf(errs.ErrResourceUnavailable, "recurso %s is %s", l.Codigo, l.Estado)
		}
	}
	return nil
}

func (r *repository) insertPrestamo(ctx context.Context, tx pgx.Tx, p model.Prestamo) error {
	q := `insert into prestamos (id, docente, recurso, recursos_adicionales, motivo_tipo, motivo_descripcion,
		observaciones, estado, fecha_prestamo, transferencia_origen, creado_por)
	values (@id, @docente, @recurso, @recursos_adicionales, @motivo_tipo, @motivo_descripcion,
		@observaciones, @estado, @fecha_prestamo, @transferencia_origen, @creado_por)`
	args := pgx.NamedArgs{
		"id":                   p.ID,
		"docente":              p.Docente,
		"recurso":              p.Recurso,
		"recursos_adicionales": nonNil(p.RecursosAdicionales),
		"motivo_tipo":          string(p.Motivo.Tipo),
		"motivo_descripcion":   p.Motivo.Descripcion,
		"observaciones":        p.Observaciones,
		"estado":               string(p.Estado),
		"fecha_prestamo":       p.FechaPrestamo,
		"transferencia_origen": p.TransferenciaOrigen,
		"creado_por":           p.CreadoPor,
	}
	if _, err := tx.Exec(ctx, q, args); err != nil {
		return err
	}

	b := qb.Insert(prestamoRecursosTableName).Columns("prestamo_id", "recurso_id", "principal", "abierto")
	for i, id := range p.Recursos() {
		b = b.Values(p.ID, id, i == 0, true)
	}
	if err := r.exec(ctx, tx, b); err != nil {
		return err
	}
	return r.setRecursoEstado(ctx, tx, p.Recursos(), p.Estado.RecursoEstado())
}

func (r *repository) CreatePrestamo(ctx context.Context, p model.Prestamo) (model.Prestamo, error) {
	var out model.Prestamo
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.lockRecursos(ctx, tx, p.Recursos()); err != nil {
			return err
		}
		if err := r.insertPrestamo(ctx, tx, p); err != nil {
			return err
		}
		var err error
		out, err = r.getPrestamo(ctx, tx, p.ID, false)
		return err
	})
	if err != nil {
		r.log.Warn("CreatePrestamo", zap.String("recurso", p.Recurso), zap.Error(err))
		return model.Prestamo{}, mapErr(err, "prestamo")
	}
	return out, nil
}

func (r *repository) GetPrestamo(ctx context.Context, id string) (model.Prestamo, error) {
	return r.getPrestamo(ctx, r.db, id, false)
}

func (r *repository) getPrestamo(ctx context.Context, q querier, id string, forUpdate bool) (model.Prestamo, error) {
	b := qb.Select(prestamoColumns...).From(prestamosTableName).Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Prestamo{}, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return model.Prestamo{}, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[prestamoRow])
	if err != nil {
		return model.Prestamo{}, mapErr(err, "prestamo "+id)
	}
	return row.toModel(), nil
}

func (r *repository) ListPrestamos(ctx context.Context, f model.PrestamoFilter) ([]model.Prestamo, error) {
	b := qb.Select(prestamoColumns...).From(prestamosTableName).OrderBy("fecha_prestamo desc", "id")
	if f.Docente != "" {
		b = b.Where(sq.Eq{"docente": f.Docente})
	}
	if len(f.Estados) > 0 {
		b = b.Where(sq.Eq{"estado": strs(f.Estados)})
	}
	if f.Desde != nil {
		b = b.Where(sq.GtOrEq{"fecha_prestamo": *f.Desde})
	}
	if f.Hasta != nil {
		b = b.Where(sq.LtOrEq{"fecha_prestamo": *f.Hasta})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[prestamoRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	out := make([]model.Prestamo, 0, len(items))
	for _, row := range items {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *repository) TransitionPrestamo(ctx context.Context, t model.PrestamoTransition) (model.Prestamo, error) {
	var out model.Prestamo
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		p, err := r.getPrestamo(ctx, tx, t.ID, true)
		if err != nil {
			return err
		}
		if p.Estado != t.From {
			return errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s, expected %s", p.ID, p.Estado, t.From)
		}
		if t.To == model.PrestamoFinalizado {
			open, err := r.hasOpenTransferencia(ctx, tx, p.ID, t.At)
			if err != nil {
				return err
			}
			if open {
				return errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s has an open transferencia", p.ID)
			}
		}
		out = t.Apply(p)
		return r.storeTransition(ctx, tx, out)
	})
	if err != nil {
		return model.Prestamo{}, mapErr(err, "prestamo "+t.ID)
	}
	return out, nil
}

// storeTransition writes the mutable loan columns and moves its resources to the matching estado.
func (r *repository) storeTransition(ctx context.Context, tx pgx.Tx, p model.Prestamo) error {
	err := r.exec(ctx, tx, qb.Update(prestamosTableName).
		SetMap(map[string]any{
			"estado":                   string(p.Estado),
			"hora_confirmacion":        p.HoraConfirmacion,
			"hora_devolucion":          p.HoraDevolucion,
			"firma_docente":            p.FirmaDocente,
			"motivo_rechazo":           p.MotivoRechazo,
			"motivo_cancelacion":       p.MotivoCancelacion,
			"observaciones_devolucion": p.ObservacionesDevolucion,
			"finalizado_por":           p.FinalizadoPor,
		}).
		Where(sq.Eq{"id": p.ID}))
	if err != nil {
		return err
	}
	if p.Estado.Terminal() {
		err = r.exec(ctx, tx, qb.Update(prestamoRecursosTableName).
			Set("abierto", false).
			Where(sq.Eq{"prestamo_id": p.ID}))
		if err != nil {
			return err
		}
	}
	return r.setRecursoEstado(ctx, tx, p.Recursos(), p.Estado.RecursoEstado())
}
