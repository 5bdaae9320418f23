package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/lending/internal/service"
)

func TestTransferencia_HappyPath(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")
	k3 := e.kit(t, "LAB3")
	l1 := e.activar(t, docA, k1.ID, k2.ID, k3.ID)

	t1, err := e.svc.CrearTransferencia(ctx, docA, model.CreateTransferenciaRequest{
		PrestamoID:       l1.ID,
		DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{
			Principales: []string{k1.ID},
			Adicionales: []string{k2.ID},
		},
	})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaPendienteOrigen, t1.Estado)
	require.Equal(t, docA.ID, t1.DocenteOrigen)
	require.NotEmpty(t, t1.CodigoQR)
	require.Equal(t, "https://lab.example.com/dashboard/transferencia/"+t1.CodigoQR, t1.QRURL)
	require.NotNil(t, t1.ExpiraEn)
	require.Equal(t, e.clock.Now().Add(service.DefaultQRTTL), *t1.ExpiraEn)

	got, err := e.svc.ObtenerPorQR(ctx, t1.CodigoQR)
	require.NoError(t, err)
	require.Equal(t, t1.ID, got.ID)

	// only the origin may confirm, and the destino cannot answer yet
	_, err = e.svc.ConfirmarOrigen(ctx, docB, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "b"})
	require.ErrorIs(t, err, errs.ErrPermission)
	_, err = e.svc.ResponderDestino(ctx, docB, t1.ID, model.ResponderDestinoRequest{Confirmar: true, Firma: "b"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	c, err := e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a", Observaciones: "todo completo"})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaConfirmadoOrigen, c.Estado)
	require.Equal(t, "a", c.FirmaOrigen)
	require.NotNil(t, c.FechaConfirmacionOrigen)

	confirmadas := e.rec.byTipo(model.EventTransferenciaConfirmadaOrigen)
	require.Len(t, confirmadas, 1)
	require.Equal(t, docB.ID, confirmadas[0].Para)
	var payload model.TransferenciaView
	require.NoError(t, jsoniter.Unmarshal(confirmadas[0].Payload, &payload))
	require.Equal(t, t1.ID, payload.ID)

	pendientes, err := e.svc.ListTransferenciasPendientes(ctx, docB)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)

	_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	done, err := e.svc.ResponderDestino(ctx, docB, t1.ID, model.ResponderDestinoRequest{Confirmar: true, Firma: "b"})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaFinalizado, done.Estado)
	require.Equal(t, "b", done.FirmaDestino)
	require.NotEmpty(t, done.PrestamoDestino)

	orig, err := e.svc.GetPrestamo(ctx, admin, l1.ID)
	require.NoError(t, err)
	require.Equal(t, model.PrestamoFinalizado, orig.Estado)
	require.Equal(t, model.FinalizadoPorTransferencia, orig.FinalizadoPor)

	l2, err := e.svc.GetPrestamo(ctx, docB, done.PrestamoDestino)
	require.NoError(t, err)
	require.Equal(t, docB.ID, l2.Docente)
	require.Equal(t, model.PrestamoPendiente, l2.Estado)
	require.Equal(t, model.MotivoTransferencia, l2.Motivo.Tipo)
	require.Equal(t, k1.ID, l2.Recurso)
	require.Equal(t, []string{k2.ID}, l2.RecursosAdicionales)
	require.Equal(t, t1.ID, l2.TransferenciaOrigen)

	require.Equal(t, model.RecursoPrestado, e.estado(t, k1.ID))
	require.Equal(t, model.RecursoPrestado, e.estado(t, k2.ID))
	require.Equal(t, model.RecursoPendiente, e.estado(t, k3.ID))
	for _, id := range []string{k1.ID, k2.ID, k3.ID} {
		require.LessOrEqual(t, e.openLoans(t, id), 1)
	}

	// the QR is single use
	_, err = e.svc.ObtenerPorQR(ctx, t1.CodigoQR)
	require.ErrorIs(t, err, errs.ErrExpired)
	_, err = e.svc.ResponderDestino(ctx, docB, t1.CodigoQR, model.ResponderDestinoRequest{Confirmar: true, Firma: "b"})
	require.ErrorIs(t, err, errs.ErrExpired)
	_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.ErrorIs(t, err, errs.ErrExpired)

	require.Len(t, e.rec.byTipo(model.EventTransferenciaRespondida), 1)
	asignados := e.rec.byTipo(model.EventPrestamoAsignado)
	require.Equal(t, docB.ID, asignados[len(asignados)-1].Para)

	// the destino still confirms receipt through the loan flow
	l2, err = e.svc.ConfirmarPrestamo(ctx, docB, l2.ID, model.ConfirmarPrestamoRequest{Confirmar: true, Firma: "b-recibe"})
	require.NoError(t, err)
	require.Equal(t, model.PrestamoActivo, l2.Estado)
	require.Equal(t, model.RecursoActivo, e.estado(t, k1.ID))
}

func TestTransferencia_DestinoRejects(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.activar(t, docA, k1.ID)

	t1, err := e.svc.CrearTransferencia(ctx, admin, model.CreateTransferenciaRequest{
		PrestamoID: l1.ID, DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	})
	require.NoError(t, err)
	_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.NoError(t, err)

	_, err = e.svc.ResponderDestino(ctx, docB, t1.CodigoQR, model.ResponderDestinoRequest{Confirmar: false})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.svc.ResponderDestino(ctx, docC, t1.CodigoQR, model.ResponderDestinoRequest{Confirmar: false, MotivoRechazo: "x"})
	require.ErrorIs(t, err, errs.ErrPermission)

	r, err := e.svc.ResponderDestino(ctx, docB, t1.CodigoQR, model.ResponderDestinoRequest{Confirmar: false, MotivoRechazo: "no lo necesito"})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaRechazado, r.Estado)
	require.Equal(t, "no lo necesito", r.MotivoRechazo)

	orig, err := e.svc.GetPrestamo(ctx, docA, l1.ID)
	require.NoError(t, err)
	require.Equal(t, model.PrestamoActivo, orig.Estado)
	require.Equal(t, model.RecursoActivo, e.estado(t, k1.ID))

	respondidas := e.rec.byTipo(model.EventTransferenciaRespondida)
	require.Len(t, respondidas, 1)
	require.Equal(t, docA.ID, respondidas[0].Para)

	_, err = e.svc.ResponderDestino(ctx, docB, t1.ID, model.ResponderDestinoRequest{Confirmar: true, Firma: "b"})
	require.ErrorIs(t, err, errs.ErrExpired)

	// the loan is free for a new transfer and can be returned
	_, err = e.svc.FinalizarPrestamo(ctx, docA, l1.ID, model.FinalizarPrestamoRequest{})
	require.NoError(t, err)
	require.Equal(t, model.RecursoPendiente, e.estado(t, k1.ID))
}

func TestTransferencia_Cancel(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.activar(t, docA, k1.ID)
	req := model.CreateTransferenciaRequest{
		PrestamoID: l1.ID, DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	}

	t1, err := e.svc.CrearTransferencia(ctx, docA, req)
	require.NoError(t, err)

	_, err = e.svc.CrearTransferencia(ctx, docA, req)
	require.ErrorIs(t, err, errs.ErrConflict)

	// the loan cannot be returned while a transfer is open
	_, err = e.svc.FinalizarPrestamo(ctx, docA, l1.ID, model.FinalizarPrestamoRequest{})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	_, err = e.svc.CancelarTransferencia(ctx, docA, t1.CodigoQR, model.CancelarTransferenciaRequest{})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = e.svc.CancelarTransferencia(ctx, docB, t1.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "x"})
	require.ErrorIs(t, err, errs.ErrPermission)

	c, err := e.svc.CancelarTransferencia(ctx, docA, t1.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "me equivoqué"})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaCancelado, c.Estado)
	require.True(t, c.Caducada)

	_, err = e.svc.CancelarTransferencia(ctx, docA, t1.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "otra vez"})
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	_, err = e.svc.ObtenerPorQR(ctx, t1.CodigoQR)
	require.ErrorIs(t, err, errs.ErrExpired)
	_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.ErrorIs(t, err, errs.ErrExpired)

	orig, err := e.svc.GetPrestamo(ctx, docA, l1.ID)
	require.NoError(t, err)
	require.Equal(t, model.PrestamoActivo, orig.Estado)
	require.Equal(t, model.RecursoActivo, e.estado(t, k1.ID))

	t2, err := e.svc.CrearTransferencia(ctx, admin, req)
	require.NoError(t, err)
	require.NotEqual(t, t1.CodigoQR, t2.CodigoQR)

	_, err = e.svc.ConfirmarOrigen(ctx, docA, t2.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.NoError(t, err)
	c, err = e.svc.CancelarTransferencia(ctx, admin, t2.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "admin"})
	require.NoError(t, err)
	require.Equal(t, model.TransferenciaCancelado, c.Estado)
}

func TestTransferencia_Expiry(t *testing.T) {
	e := setup(t, service.WithQRTTL(time.Hour))
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.activar(t, docA, k1.ID)
	req := model.CreateTransferenciaRequest{
		PrestamoID: l1.ID, DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	}
	t1, err := e.svc.CrearTransferencia(ctx, docA, req)
	require.NoError(t, err)

	e.clock.Advance(2 * time.Hour)

	_, err = e.svc.ObtenerPorQR(ctx, t1.CodigoQR)
	require.ErrorIs(t, err, errs.ErrExpired)
	_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
	require.ErrorIs(t, err, errs.ErrExpired)
	_, err = e.svc.CancelarTransferencia(ctx, docA, t1.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "x"})
	require.ErrorIs(t, err, errs.ErrExpired)

	// state is not rewritten, but the expired transfer no longer blocks the loan
	list, err := e.svc.ListTransferenciasDocente(ctx, docA, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, model.TransferenciaPendienteOrigen, list[0].Estado)
	require.True(t, list[0].Caducada)

	_, err = e.svc.CrearTransferencia(ctx, docA, req)
	require.NoError(t, err)
}

func TestTransferencia_NoExpiryWhenDisabled(t *testing.T) {
	e := setup(t, service.WithQRTTL(0))
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	l1 := e.activar(t, docA, k1.ID)
	t1, err := e.svc.CrearTransferencia(ctx, docA, model.CreateTransferenciaRequest{
		PrestamoID: l1.ID, DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	})
	require.NoError(t, err)
	require.Nil(t, t1.ExpiraEn)

	e.clock.Advance(24 * 365 * time.Hour)
	_, err = e.svc.ObtenerPorQR(ctx, t1.CodigoQR)
	require.NoError(t, err)
}

func TestCrearTransferencia_Validation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")
	other := e.kit(t, "LAB3")
	active := e.activar(t, docA, k1.ID, k2.ID)
	k4 := e.kit(t, "LAB4")
	pending := e.prestar(t, docC, k4.ID)

	tests := []struct {
		name string
		req  model.CreateTransferenciaRequest
		want error
	}{
		{
			name: "same docente",
			req: model.CreateTransferenciaRequest{PrestamoID: active.ID, DocenteDestinoID: docA.ID,
				RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}}},
			want: errs.ErrValidation,
		},
		{
			name: "principal missing",
			req: model.CreateTransferenciaRequest{PrestamoID: active.ID, DocenteDestinoID: docB.ID,
				RecursosSeleccionados: model.RecursosSeleccionados{Adicionales: []string{k2.ID}}},
			want: errs.ErrValidation,
		},
		{
			name: "foreign resource",
			req: model.CreateTransferenciaRequest{PrestamoID: active.ID, DocenteDestinoID: docB.ID,
				RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}, Adicionales: []string{other.ID}}},
			want: errs.ErrValidation,
		},
		{
			name: "loan not active",
			req: model.CreateTransferenciaRequest{PrestamoID: pending.ID, DocenteDestinoID: docB.ID,
				RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k4.ID}}},
			want: errs.ErrIllegalTransition,
		},
		{
			name: "unknown loan",
			req:  model.CreateTransferenciaRequest{PrestamoID: "nope", DocenteDestinoID: docB.ID},
			want: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CrearTransferencia(ctx, admin, tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := e.svc.CrearTransferencia(ctx, docB, model.CreateTransferenciaRequest{
		PrestamoID: active.ID, DocenteDestinoID: docC.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	})
	require.ErrorIs(t, err, errs.ErrPermission)

	_, err = e.svc.ObtenerPorQR(ctx, "unknown-token")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListTransferencias(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	k1 := e.kit(t, "LAB1")
	k2 := e.kit(t, "LAB2")
	l1 := e.activar(t, docA, k1.ID)
	l2 := e.activar(t, docC, k2.ID)

	_, err := e.svc.CrearTransferencia(ctx, docA, model.CreateTransferenciaRequest{
		PrestamoID: l1.ID, DocenteDestinoID: docB.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
	})
	require.NoError(t, err)
	e.clock.Advance(time.Minute)
	_, err = e.svc.CrearTransferencia(ctx, docC, model.CreateTransferenciaRequest{
		PrestamoID: l2.ID, DocenteDestinoID: docA.ID,
		RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k2.ID}},
	})
	require.NoError(t, err)

	mine, err := e.svc.ListTransferenciasDocente(ctx, docA, "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	onlyB, err := e.svc.ListTransferenciasDocente(ctx, docB, model.TransferenciaPendienteOrigen)
	require.NoError(t, err)
	assert.Len(t, onlyB, 1)

	pend, err := e.svc.ListTransferenciasPendientes(ctx, docA)
	require.NoError(t, err)
	assert.Empty(t, pend)

	all, err := e.svc.ListTransferencias(ctx, model.TransferenciaFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, docC.ID, all[0].DocenteOrigen)
}

// Two accepts, a cancel and a self-return race on one confirmado_origen transfer.
// Only one of accept/cancel may win; the return can only follow a cancel.
func TestTransferencia_ConcurrentResolution(t *testing.T) {
	const rounds = 25
	for i := 0; i < rounds; i++ {
		e := setup(t)
		ctx := context.Background()
		k1 := e.kit(t, "LAB1")
		l1 := e.activar(t, docA, k1.ID)
		t1, err := e.svc.CrearTransferencia(ctx, docA, model.CreateTransferenciaRequest{
			PrestamoID:            l1.ID,
			DocenteDestinoID:      docB.ID,
			RecursosSeleccionados: model.RecursosSeleccionados{Principales: []string{k1.ID}},
		})
		require.NoError(t, err)
		_, err = e.svc.ConfirmarOrigen(ctx, docA, t1.CodigoQR, model.ConfirmarOrigenRequest{Firma: "a"})
		require.NoError(t, err)

		var (
			g                                          errgroup.Group
			accepted, cancelled, finalized, unexpected atomic.Int32
		)
		start := make(chan struct{})
		tally := func(won *atomic.Int32, err error) {
			switch {
			case err == nil:
				won.Add(1)
			case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrExpired):
			default:
				unexpected.Add(1)
			}
		}
		for j := 0; j < 2; j++ {
			g.Go(func() error {
				<-start
				_, err := e.svc.ResponderDestino(ctx, docB, t1.ID, model.ResponderDestinoRequest{Confirmar: true, Firma: "b"})
				tally(&accepted, err)
				return nil
			})
		}
		g.Go(func() error {
			<-start
			_, err := e.svc.CancelarTransferencia(ctx, docA, t1.CodigoQR, model.CancelarTransferenciaRequest{MotivoCancelacion: "ya no"})
			tally(&cancelled, err)
			return nil
		})
		g.Go(func() error {
			<-start
			_, err := e.svc.FinalizarPrestamo(ctx, docA, l1.ID, model.FinalizarPrestamoRequest{})
			tally(&finalized, err)
			return nil
		})
		close(start)
		require.NoError(t, g.Wait())

		require.Zero(t, unexpected.Load())
		require.EqualValues(t, 1, accepted.Load()+cancelled.Load(), "round %d", i)
		require.LessOrEqual(t, e.openLoans(t, k1.ID), 1)

		got, err := e.repo.GetTransferencia(ctx, t1.ID)
		require.NoError(t, err)
		orig, err := e.svc.GetPrestamo(ctx, admin, l1.ID)
		require.NoError(t, err)
		if accepted.Load() == 1 {
			require.Zero(t, finalized.Load())
			require.Equal(t, model.TransferenciaFinalizado, got.Estado)
			require.Equal(t, model.FinalizadoPorTransferencia, orig.FinalizadoPor)
			require.Equal(t, 1, e.openLoans(t, k1.ID))
			require.Len(t, e.rec.byTipo(model.EventPrestamoAsignado), 2)
			continue
		}
		require.Equal(t, model.TransferenciaCancelado, got.Estado)
		if finalized.Load() == 1 {
			require.Equal(t, model.PrestamoFinalizado, orig.Estado)
			require.Zero(t, e.openLoans(t, k1.ID))
		} else {
			require.Equal(t, model.PrestamoActivo, orig.Estado)
			require.Equal(t, 1, e.openLoans(t, k1.ID))
		}
	}
}
