package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

var transferenciaColumns = []string{
	"id", "prestamo_origen", "docente_origen", "docente_destino", "recursos", "recursos_adicionales",
	"codigo_qr", "estado", "firma_origen", "firma_destino", "fecha_solicitud", "fecha_confirmacion_origen",
	"fecha_confirmacion_destino", "observaciones_origen", "observaciones_destino", "motivo_rechazo",
	"motivo_cancelacion", "prestamo_destino", "expira_en", "creado_por",
}

func (r *repository) hasOpenTransferencia(ctx context.Context, q querier, prestamoID string, now time.Time) (bool, error) {
	const query = `
	select exists(
		select 1 from transferencias
		where prestamo_origen = $1 and estado = any($2) and (expira_en is null or expira_en > $3)
	)`
	var open bool
	err := q.QueryRow(ctx, query, prestamoID, strs(model.TransferenciaAbiertas), now).Scan(&open)
	return open, err
}

func (r *repository) CreateTransferencia(ctx context.Context, t model.Transferencia) (model.Transferencia, error) {
	var out model.Transferencia
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		p, err := r.getPrestamo(ctx, tx, t.PrestamoOrigen, true)
		if err != nil {
			return err
		}
		if p.Estado != model.PrestamoActivo {
			return errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s", p.ID, p.Estado)
		}
		open, err := r.hasOpenTransferencia(ctx, tx, p.ID, t.FechaSolicitud)
		if err != nil {
			return err
		}
		if open {
			return errors.Wrapf(errs.ErrConflict, "prestamo %s already has an open transferencia", p.ID)
		}

		query, args, err := qb.Insert(transferenciasTableName).
			Columns("id", "prestamo_origen", "docente_origen", "docente_destino", "recursos",
				"recursos_adicionales", "codigo_qr", "estado", "fecha_solicitud", "expira_en", "creado_por").
			Values(t.ID, t.PrestamoOrigen, t.DocenteOrigen, t.DocenteDestino, nonNil(t.Recursos),
				nonNil(t.RecursosAdicionales), t.CodigoQR, string(t.Estado), t.FechaSolicitud, t.ExpiraEn, t.CreadoPor).
			Suffix("returning " + strings.Join(transferenciaColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transferencia])
		return err
	})
	if err != nil {
		r.log.Warn("CreateTransferencia", zap.String("prestamo", t.PrestamoOrigen), zap.Error(err))
		return model.Transferencia{}, mapErr(err, "prestamo "+t.PrestamoOrigen)
	}
	return out, nil
}

func (r *repository) GetTransferencia(ctx context.Context, id string) (model.Transferencia, error) {
	return r.getTransferencia(ctx, r.db, sq.Eq{"id": id}, false)
}

func (r *repository) GetTransferenciaByQR(ctx context.Context, codigoQR string) (model.Transferencia, error) {
	return r.getTransferencia(ctx, r.db, sq.Eq{"codigo_qr": codigoQR}, false)
}

func (r *repository) getTransferencia(ctx context.Context, q querier, where sq.Eq, forUpdate bool) (model.Transferencia, error) {
	b := qb.Select(transferenciaColumns...).From(transferenciasTableName).Where(where)
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Transferencia{}, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return model.Transferencia{}, err
	}
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Transferencia])
	if err != nil {
		return model.Transferencia{}, mapErr(err, "transferencia")
	}
	return t, nil
}

func (r *repository) ListTransferencias(ctx context.Context, f model.TransferenciaFilter) ([]model.Transferencia, error) {
	b := qb.Select(transferenciaColumns...).From(transferenciasTableName).OrderBy("fecha_solicitud desc", "id")
	if f.Docente != "" {
		b = b.Where(sq.Or{sq.Eq{"docente_origen": f.Docente}, sq.Eq{"docente_destino": f.Docente}})
	}
	if f.DocenteDestino != "" {
		b = b.Where(sq.Eq{"docente_destino": f.DocenteDestino})
	}
	if f.PrestamoOrigen != "" {
		b = b.Where(sq.Eq{"prestamo_origen": f.PrestamoOrigen})
	}
	if len(f.Estados) > 0 {
		b = b.Where(sq.Eq{"estado": strs(f.Estados)})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Transferencia])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

// lockTransferencia loads the transfer for update and checks the transition precondition.
func (r *repository) lockTransferencia(ctx context.Context, tx pgx.Tx, t model.TransferenciaTransition) (model.Transferencia, error) {
	tr, err := r.getTransferencia(ctx, tx, sq.Eq{"id": t.ID}, true)
	if err != nil {
		return model.Transferencia{}, err
	}
	if !t.Allowed(tr.Estado) {
		return model.Transferencia{}, errors.Wrapf(errs.ErrIllegalTransition, "transferencia %s is %s", tr.ID, tr.Estado)
	}
	if tr.Expired(t.At) {
		return model.Transferencia{}, errors.Wrapf(errs.ErrExpired, "transferencia %s", tr.ID)
	}
	return tr, nil
}

func (r *repository) storeTransferencia(ctx context.Context, tx pgx.Tx, tr model.Transferencia) error {
	return r.exec(ctx, tx, qb.Update(transferenciasTableName).
		SetMap(map[string]any{
			"estado":                     string(tr.Estado),
			"firma_origen":               tr.FirmaOrigen,
			"firma_destino":              tr.FirmaDestino,
			"fecha_confirmacion_origen":  tr.FechaConfirmacionOrigen,
			"fecha_confirmacion_destino": tr.FechaConfirmacionDestino,
			"observaciones_origen":       tr.ObservacionesOrigen,
			"observaciones_destino":      tr.ObservacionesDestino,
			"motivo_rechazo":             tr.MotivoRechazo,
			"motivo_cancelacion":         tr.MotivoCancelacion,
			"prestamo_destino":           tr.PrestamoDestino,
		}).
		Where(sq.Eq{"id": tr.ID}))
}

func (r *repository) TransitionTransferencia(ctx context.Context, t model.TransferenciaTransition) (model.Transferencia, error) {
	var out model.Transferencia
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		tr, err := r.lockTransferencia(ctx, tx, t)
		if err != nil {
			return err
		}
		out = t.Apply(tr)
		return r.storeTransferencia(ctx, tx, out)
	})
	if err != nil {
		return model.Transferencia{}, mapErr(err, "transferencia "+t.ID)
	}
	return out, nil
}

func (r *repository) AcceptTransferencia(ctx context.Context, a model.TransferAcceptance) (model.Transferencia, model.Prestamo, error) {
	var (
		outT model.Transferencia
		outP model.Prestamo
	)
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		tr, err := r.lockTransferencia(ctx, tx, a.Transition)
		if err != nil {
			return err
		}
		origen, err := r.getPrestamo(ctx, tx, tr.PrestamoOrigen, true)
		if err != nil {
			return err
		}
		if origen.Estado != model.PrestamoActivo {
			return errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s", origen.ID, origen.Estado)
		}
		for _, id := range a.Nuevo.Recursos() {
			if !origen.Holds(id) {
				return errors.Wrapf(errs.ErrValidation, "recurso %s is not part of prestamo %s", id, origen.ID)
			}
		}

		origen = model.PrestamoTransition{
			ID:            origen.ID,
			From:          model.PrestamoActivo,
			To:            model.PrestamoFinalizado,
			At:            a.Transition.At,
			FinalizadoPor: model.FinalizadoPorTransferencia,
		}.Apply(origen)
		if err := r.storeTransition(ctx, tx, origen); err != nil {
			return err
		}

		if err := r.lockRecursos(ctx, tx, a.Nuevo.Recursos()); err != nil {
			return err
		}
		if err := r.insertPrestamo(ctx, tx, a.Nuevo); err != nil {
			return err
		}

		outT = a.Transition.Apply(tr)
		outT.PrestamoDestino = a.Nuevo.ID
		if err := r.storeTransferencia(ctx, tx, outT); err != nil {
			return err
		}
		outP, err = r.getPrestamo(ctx, tx, a.Nuevo.ID, false)
		return err
	})
	if err != nil {
		r.log.Warn("AcceptTransferencia", zap.String("transferencia", a.Transition.ID), zap.Error(err))
		return model.Transferencia{}, model.Prestamo{}, mapErr(err, "transferencia "+a.Transition.ID)
	}
	return outT, outP, nil
}
