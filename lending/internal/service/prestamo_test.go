package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

func TestCrearPrestamo_LockConflict(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")

	p := e.prestar(t, docA, k1.ID)
	require.Equal(t, model.PrestamoPendiente, p.Estado)
	require.Equal(t, e.clock.Now(), p.FechaPrestamo)
	require.Equal(t, model.RecursoPrestado, e.estado(t, k1.ID))

	_, err := e.svc.CrearPrestamo(ctx, admin, model.CreatePrestamoRequest{
		Docente: docB.ID, Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoClase},
	})
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	require.Equal(t, 1, e.openLoans(t, k1.ID))

	asignados := e.rec.byTipo(model.EventPrestamoAsignado)
	require.Len(t, asignados, 1)
	require.Equal(t, docA.ID, asignados[0].Para)
}

func TestCrearPrestamo_ConcurrentSingleWinner(t *testing.T) {
	e := setup(t)
	k1 := e.kit(t, "LAB1")

	const contenders = 32
	var (
		g                     errgroup.Group
		won, lost, unexpected atomic.Int32
	)
	ctx := context.Background()
	for i := 0; i < contenders; i++ {
		g.Go(func() error {
			_, err := e.svc.CrearPrestamo(ctx, admin, model.CreatePrestamoRequest{
				Docente: docB.ID, Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoConferencia},
			})
			switch {
			case err == nil:
				won.Add(1)
			case errors.Is(err, errs.ErrResourceUnavailable):
				lost.Add(1)
			default:
				unexpected.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.EqualValues(t, 1, won.Load())
	require.EqualValues(t, contenders-1, lost.Load())
	require.Zero(t, unexpected.Load())
	require.Equal(t, 1, e.openLoans(t, k1.ID))
}

func TestCrearPrestamo_Validation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")

	tests := []struct {
		name string
		req  model.CreatePrestamoRequest
		want error
	}{
		{
			name: "otro without descripcion",
			req:  model.CreatePrestamoRequest{Docente: docA.ID, Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoOtro}},
			want: errs.ErrValidation,
		},
		{
			name: "transferencia is reserved",
			req:  model.CreatePrestamoRequest{Docente: docA.ID, Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoTransferencia}},
			want: errs.ErrValidation,
		},
		{
			name: "missing docente",
			req:  model.CreatePrestamoRequest{Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoClase}},
			want: errs.ErrValidation,
		},
		{
			name: "unknown recurso",
			req:  model.CreatePrestamoRequest{Docente: docA.ID, Recurso: "nope", Motivo: model.Motivo{Tipo: model.MotivoClase}},
			want: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CrearPrestamo(ctx, admin, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := e.svc.CrearPrestamo(ctx, docA, model.CreatePrestamoRequest{
		Docente: docA.ID, Recurso: k1.ID, Motivo: model.Motivo{Tipo: model.MotivoClase},
	})
	require.ErrorIs(t, err, errs.ErrPermission)
	require.Equal(t, model.RecursoPendiente, e.estado(t, k1.ID))
}

func TestCrearPrestamo_AdicionalesLockedTogether(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")
	k3 := e.kit(t, "LAB3")

	e.prestar(t, docA, k2.ID)

	// k2 is taken, so nothing of this request may be locked
	_, err := e.svc.CrearPrestamo(ctx, admin, model.CreatePrestamoRequest{
		Docente: docB.ID, Recurso: k1.ID, RecursosAdicionales: []string{k3.ID, k2.ID},
		Motivo: model.Motivo{Tipo: model.MotivoClase},
	})
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	require.Equal(t, model.RecursoPendiente, e.estado(t, k1.ID))
	require.Equal(t, model.RecursoPendiente, e.estado(t, k3.ID))

	p := e.prestar(t, docB, k1.ID, k3.ID, k3.ID, k1.ID)
	require.Equal(t, []string{k3.ID}, p.RecursosAdicionales)
	require.Equal(t, model.RecursoPrestado, e.estado(t, k3.ID))
}

func TestCrearPrestamo_DetectarEnObservaciones(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1") // KIT #1
	k2 := e.kit(t, "LAB2") // KIT #2

	p, err := e.svc.CrearPrestamo(ctx, admin, model.CreatePrestamoRequest{
		Docente:                 docA.ID,
		Recurso:                 k1.ID,
		Motivo:                  model.Motivo{Tipo: model.MotivoOtro, Descripcion: "taller"},
		Observaciones:           "se lleva también el kit #2 y la LLAVE #9",
		DetectarEnObservaciones: true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{k2.ID}, p.RecursosAdicionales)
	require.Equal(t, model.RecursoPrestado, e.estado(t, k2.ID))

	// without the flag the text is ignored
	k3 := e.kit(t, "LAB3")
	p, err = e.svc.CrearPrestamo(ctx, admin, model.CreatePrestamoRequest{
		Docente: docB.ID, Recurso: k3.ID, Motivo: model.Motivo{Tipo: model.MotivoClase},
		Observaciones: "KIT #1",
	})
	require.NoError(t, err)
	require.Empty(t, p.RecursosAdicionales)
}

func TestConfirmarPrestamo_RejectUnlocks(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")
	l1 := e.prestar(t, docA, k1.ID, k2.ID)

	_, err := e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: false})
	require.ErrorIs(t, err, errs.ErrValidation)

	l1, err = e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{
		Confirmar: false, MotivoRechazo: "no longer needed",
	})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoRechazado, l1.Estado)
	require.Equal(t, "no longer needed", l1.MotivoRechazo)
	require.Equal(t, model.RecursoPendiente, e.estado(t, k1.ID))
	require.Equal(t, model.RecursoPendiente, e.estado(t, k2.ID))

	e.prestar(t, docC, k1.ID)

	// terminal loans never move again
	_, err = e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "f"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestConfirmarPrestamo_Accept(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.prestar(t, docA, k1.ID)

	_, err := e.svc.ConfirmarPrestamo(ctx, docB, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "b"})
	require.ErrorIs(t, err, errs.ErrPermission)
	_, err = e.svc.ConfirmarPrestamo(ctx, admin, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "adm"})
	require.ErrorIs(t, err, errs.ErrPermission)
	_, err = e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.svc.ConfirmarPrestamo(ctx, docA, "missing", model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "a"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	e.clock.Advance(10 * time.Minute)
	l1, err = e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "a-firma"})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoActivo, l1.Estado)
	require.Equal(t, "a-firma", l1.FirmaDocente)
	require.Equal(t, e.clock.Now(), *l1.HoraConfirmacion)
	require.Equal(t, model.RecursoActivo, e.estado(t, k1.ID))

	_, err = e.svc.ConfirmarPrestamo(ctx, docA, l1.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "again"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestCancelarPrestamo(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.prestar(t, docA, k1.ID)

	_, err := e.svc.CancelarPrestamo(ctx, admin, l1.ID, model.CancelarPrestamoRequest{})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.svc.CancelarPrestamo(ctx, docA, l1.ID, model.CancelarPrestamoRequest{MotivoCancelacion: "x"})
	require.ErrorIs(t, err, errs.ErrPermission)

	l1, err = e.svc.CancelarPrestamo(ctx, admin, l1.ID, model.CancelarPrestamoRequest{MotivoCancelacion: "error de carga"})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoCancelado, l1.Estado)
	require.Equal(t, model.RecursoPendiente, e.estado(t, k1.ID))

	l2 := e.activar(t, docB, k1.ID)
	_, err = e.svc.CancelarPrestamo(ctx, admin, l2.ID, model.CancelarPrestamoRequest{MotivoCancelacion: "tarde"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	require.Equal(t, model.RecursoActivo, e.estado(t, k1.ID))
}

func TestFinalizarPrestamo(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	p1 := e.proyector(t)

	pend := e.prestar(t, docA, k1.ID)
	_, err := e.svc.FinalizarPrestamo(ctx, docA, pend.ID, model.FinalizarPrestamoRequest{})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	act := e.activar(t, docB, p1.ID)
	_, err = e.svc.FinalizarPrestamo(ctx, docC, act.ID, model.FinalizarPrestamoRequest{})
	require.ErrorIs(t, err, errs.ErrPermission)

	done, err := e.svc.FinalizarPrestamo(ctx, docB, act.ID, model.FinalizarPrestamoRequest{ObservacionesDevolucion: "ok"})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoFinalizado, done.Estado)
	require.Equal(t, model.FinalizadoPorDocente, done.FinalizadoPor)
	require.NotNil(t, done.HoraDevolucion)
	require.Equal(t, model.RecursoPendiente, e.estado(t, p1.ID))

	_, err = e.svc.FinalizarPrestamo(ctx, admin, act.ID, model.FinalizarPrestamoRequest{})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	act2 := e.activar(t, docC, p1.ID)
	done, err = e.svc.FinalizarPrestamo(ctx, admin, act2.ID, model.FinalizarPrestamoRequest{})
	require.NoError(t, err)
	require.Equal(t, model.FinalizadoPorAdmin, done.FinalizadoPor)
}

func TestListPrestamos(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")

	l1 := e.prestar(t, docA, k1.ID)
	e.clock.Advance(time.Hour)
	l2 := e.activar(t, docA, k2.ID)
	_, err := e.svc.CancelarPrestamo(ctx, admin, l1.ID, model.CancelarPrestamoRequest{MotivoCancelacion: "x"})
	require.NoError(t, err)

	open, err := e.svc.ListPrestamosDocente(ctx, docA)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, l2.ID, open[0].ID)

	hist, err := e.svc.HistorialDocente(ctx, docA)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, l1.ID, hist[0].ID)

	desde := e.clock.Now().Add(-30 * time.Minute)
	all, err := e.svc.ListPrestamos(ctx, model.PrestamoFilter{Desde: &desde})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, l2.ID, all[0].ID)

	_, err = e.svc.GetPrestamo(ctx, docB, l2.ID)
	require.ErrorIs(t, err, errs.ErrPermission)
	got, err := e.svc.GetPrestamo(ctx, admin, l2.ID)
	require.NoError(t, err)
	assert.Equal(t, docA.ID, got.Docente)
}
