package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/pkg/auth"
)

func (s *Service) view(t model.Transferencia) model.TransferenciaView {
	return model.TransferenciaView{
		Transferencia: t,
		QRURL:         fmt.Sprintf("%s/dashboard/transferencia/%s", s.frontendURL, t.CodigoQR),
		Caducada:      t.Caducada(s.now()),
	}
}

func (s *Service) views(items []model.Transferencia) []model.TransferenciaView {
	out := make([]model.TransferenciaView, 0, len(items))
	for _, t := range items {
		out = append(out, s.view(t))
	}
	return out
}

func (s *Service) CrearTransferencia(ctx context.Context, actor auth.Actor, req model.CreateTransferenciaRequest) (model.TransferenciaView, error) {
	if err := required(req.PrestamoID, "prestamoId"); err != nil {
		return model.TransferenciaView{}, err
	}
	if err := required(req.DocenteDestinoID, "docenteDestinoId"); err != nil {
		return model.TransferenciaView{}, err
	}
	p, err := s.repo.GetPrestamo(ctx, req.PrestamoID)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	if !actor.IsAdmin() && actor.ID != p.Docente {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrPermission, "only the loan holder or an admin may transfer")
	}
	if p.Estado != model.PrestamoActivo {
		return model.TransferenciaView{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s, only activo loans can be transferred", p.ID, p.Estado)
	}
	destino := strings.TrimSpace(req.DocenteDestinoID)
	if destino == p.Docente {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrValidation, "docenteDestino must differ from the loan holder")
	}

	principales := model.CleanList(req.RecursosSeleccionados.Principales)
	adicionales := model.CleanList(req.RecursosSeleccionados.Adicionales)
	for _, id := range principales {
		adicionales = without(adicionales, id)
	}
	if !contains(principales, p.Recurso) {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrValidation, "the principal resource must be transferred")
	}
	for _, id := range append(append([]string(nil), principales...), adicionales...) {
		if !p.Holds(id) {
			return model.TransferenciaView{}, errors.Wrapf(errs.ErrValidation, "recurso %s is not part of prestamo %s", id, p.ID)
		}
	}

	now := s.now()
	t := model.Transferencia{
		ID:                  s.ids.NewID(),
		PrestamoOrigen:      p.ID,
		DocenteOrigen:       p.Docente,
		DocenteDestino:      destino,
		Recursos:            principales,
		RecursosAdicionales: adicionales,
		CodigoQR:            s.ids.NewToken(),
		Estado:              model.TransferenciaPendienteOrigen,
		FechaSolicitud:      now,
		CreadoPor:           actor.ID,
	}
	if s.qrTTL > 0 {
		exp := now.Add(s.qrTTL)
		t.ExpiraEn = &exp
	}
	t, err = s.repo.CreateTransferencia(ctx, t)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	s.log.Info("transferencia created", zap.String("id", t.ID), zap.String("prestamo", p.ID),
		zap.String("origen", t.DocenteOrigen), zap.String("destino", t.DocenteDestino))
	return s.view(t), nil
}

// ObtenerPorQR looks a transfer up by its capability token. Terminal and expired
// transfers are reported as errs.ErrExpired, distinct from unknown tokens.
func (s *Service) ObtenerPorQR(ctx context.Context, codigoQR string) (model.TransferenciaView, error) {
	t, err := s.repo.GetTransferenciaByQR(ctx, codigoQR)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	if t.Caducada(s.now()) {
		return model.TransferenciaView{}, errors.Wrapf(errs.ErrExpired, "transferencia is %s", s.caducadaReason(t))
	}
	return s.view(t), nil
}

func (s *Service) caducadaReason(t model.Transferencia) string {
	if t.Estado.Terminal() {
		return string(t.Estado)
	}
	return "caducada"
}

// checkOpen gates protocol steps: terminal or expired first, then the expected estado.
func (s *Service) checkOpen(t model.Transferencia, want model.EstadoTransferencia) error {
	if t.Caducada(s.now()) {
		return errors.Wrapf(errs.ErrExpired, "transferencia is %s", s.caducadaReason(t))
	}
	if t.Estado != want {
		s.log.Warn("illegal transferencia transition", zap.String("id", t.ID),
			zap.String("estado", string(t.Estado)), zap.String("expected", string(want)))
		return errors.Wrapf(errs.ErrIllegalTransition, "transferencia is %s, expected %s", t.Estado, want)
	}
	return nil
}

func (s *Service) ConfirmarOrigen(ctx context.Context, actor auth.Actor, codigoQR string, req model.ConfirmarOrigenRequest) (model.TransferenciaView, error) {
	if err := required(req.Firma, "firma"); err != nil {
		return model.TransferenciaView{}, err
	}
	t, err := s.repo.GetTransferenciaByQR(ctx, codigoQR)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	if actor.ID != t.DocenteOrigen {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrPermission, "only the origin docente may confirm")
	}
	if err := s.checkOpen(t, model.TransferenciaPendienteOrigen); err != nil {
		return model.TransferenciaView{}, err
	}
	t, err = s.repo.TransitionTransferencia(ctx, model.TransferenciaTransition{
		ID:            t.ID,
		From:          []model.EstadoTransferencia{model.TransferenciaPendienteOrigen},
		To:            model.TransferenciaConfirmadoOrigen,
		At:            s.now(),
		Firma:         req.Firma,
		Observaciones: req.Observaciones,
	})
	if err != nil {
		return model.TransferenciaView{}, err
	}
	s.log.Info("transferencia confirmed by origen", zap.String("id", t.ID))
	v := s.view(t)
	s.publish(ctx, model.EventTransferenciaConfirmadaOrigen, t.DocenteDestino, t.ID, v)
	return v, nil
}

// findTransferencia resolves an id first and falls back to the QR token.
func (s *Service) findTransferencia(ctx context.Context, key string) (model.Transferencia, error) {
	t, err := s.repo.GetTransferencia(ctx, key)
	if err == nil || !errors.Is(err, errs.ErrNotFound) {
		return t, err
	}
	return s.repo.GetTransferenciaByQR(ctx, key)
}

func (s *Service) ResponderDestino(ctx context.Context, actor auth.Actor, key string, req model.ResponderDestinoRequest) (model.TransferenciaView, error) {
	if req.Confirmar {
		if err := required(req.Firma, "firma"); err != nil {
			return model.TransferenciaView{}, err
		}
	} else if err := required(req.MotivoRechazo, "motivoRechazo"); err != nil {
		return model.TransferenciaView{}, err
	}
	t, err := s.findTransferencia(ctx, key)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	if actor.ID != t.DocenteDestino {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrPermission, "only the destination docente may respond")
	}
	if err := s.checkOpen(t, model.TransferenciaConfirmadoOrigen); err != nil {
		return model.TransferenciaView{}, err
	}

	tr := model.TransferenciaTransition{
		ID:            t.ID,
		From:          []model.EstadoTransferencia{model.TransferenciaConfirmadoOrigen},
		At:            s.now(),
		Observaciones: req.Observaciones,
	}
	if !req.Confirmar {
		tr.To = model.TransferenciaRechazado
		tr.Motivo = strings.TrimSpace(req.MotivoRechazo)
		t, err = s.repo.TransitionTransferencia(ctx, tr)
		if err != nil {
			return model.TransferenciaView{}, err
		}
		s.log.Info("transferencia rejected by destino", zap.String("id", t.ID))
		v := s.view(t)
		s.publish(ctx, model.EventTransferenciaRespondida, t.DocenteOrigen, t.ID, v)
		return v, nil
	}

	origen, err := s.repo.GetPrestamo(ctx, t.PrestamoOrigen)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	tr.To = model.TransferenciaFinalizado
	tr.Firma = req.Firma
	nuevo := model.Prestamo{
		ID:                  s.ids.NewID(),
		Docente:             t.DocenteDestino,
		Recurso:             origen.Recurso,
		RecursosAdicionales: without(t.Seleccionados(), origen.Recurso),
		Motivo: model.Motivo{
			Tipo:        model.MotivoTransferencia,
			Descripcion: "Transferencia de " + t.DocenteOrigen,
		},
		Observaciones:       t.ObservacionesOrigen,
		Estado:              model.PrestamoPendiente,
		FechaPrestamo:       tr.At,
		TransferenciaOrigen: t.ID,
		CreadoPor:           actor.ID,
	}
	t, nuevo, err = s.repo.AcceptTransferencia(ctx, model.TransferAcceptance{Transition: tr, Nuevo: nuevo})
	if err != nil {
		return model.TransferenciaView{}, err
	}
	s.log.Info("transferencia accepted", zap.String("id", t.ID),
		zap.String("prestamoOrigen", origen.ID), zap.String("prestamoDestino", nuevo.ID))
	v := s.view(t)
	s.publish(ctx, model.EventTransferenciaRespondida, t.DocenteOrigen, t.ID, v)
	s.publish(ctx, model.EventPrestamoAsignado, nuevo.Docente, nuevo.ID, nuevo)
	return v, nil
}

func (s *Service) CancelarTransferencia(ctx context.Context, actor auth.Actor, codigoQR string, req model.CancelarTransferenciaRequest) (model.TransferenciaView, error) {
	if err := required(req.MotivoCancelacion, "motivoCancelacion"); err != nil {
		return model.TransferenciaView{}, err
	}
	t, err := s.repo.GetTransferenciaByQR(ctx, codigoQR)
	if err != nil {
		return model.TransferenciaView{}, err
	}
	if !actor.IsAdmin() && actor.ID != t.DocenteOrigen {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrPermission, "only the origin docente or an admin may cancel")
	}
	if t.Estado.Terminal() {
		return model.TransferenciaView{}, errors.Wrapf(errs.ErrIllegalTransition, "transferencia is already %s", t.Estado)
	}
	if t.Expired(s.now()) {
		return model.TransferenciaView{}, errors.Wrap(errs.ErrExpired, "transferencia is caducada")
	}
	t, err = s.repo.TransitionTransferencia(ctx, model.TransferenciaTransition{
		ID:     t.ID,
		From:   model.TransferenciaAbiertas,
		To:     model.TransferenciaCancelado,
		At:     s.now(),
		Motivo: strings.TrimSpace(req.MotivoCancelacion),
	})
	if err != nil {
		return model.TransferenciaView{}, err
	}
	s.log.Info("transferencia cancelled", zap.String("id", t.ID))
	return s.view(t), nil
}

func (s *Service) ListTransferencias(ctx context.Context, f model.TransferenciaFilter) ([]model.TransferenciaView, error) {
	items, err := s.repo.ListTransferencias(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.views(items), nil
}

// ListTransferenciasDocente returns transfers where the caller is either side.
func (s *Service) ListTransferenciasDocente(ctx context.Context, actor auth.Actor, estado model.EstadoTransferencia) ([]model.TransferenciaView, error) {
	f := model.TransferenciaFilter{Docente: actor.ID}
	if estado != "" {
		f.Estados = []model.EstadoTransferencia{estado}
	}
	return s.ListTransferencias(ctx, f)
}

// ListTransferenciasPendientes returns transfers waiting for the caller's answer as destino.
func (s *Service) ListTransferenciasPendientes(ctx context.Context, actor auth.Actor) ([]model.TransferenciaView, error) {
	items, err := s.repo.ListTransferencias(ctx, model.TransferenciaFilter{
		DocenteDestino: actor.ID,
		Estados:        []model.EstadoTransferencia{model.TransferenciaConfirmadoOrigen},
	})
	if err != nil {
		return nil, err
	}
	now := s.now()
	open := items[:0]
	for _, t := range items {
		if !t.Expired(now) {
			open = append(open, t)
		}
	}
	return s.views(open), nil
}

func contains(in []string, v string) bool {
	for _, s := range in {
		if s == v {
			return true
		}
	}
	return false
}
