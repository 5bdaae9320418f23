package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lab-lending/lending/internal/errs"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/pkg/auth"
)

func validateMotivo(m model.Motivo) error {
	switch m.Tipo {
	case model.MotivoClase, model.MotivoConferencia:
	case model.MotivoOtro:
		if strings.TrimSpace(m.Descripcion) == "" {
			return errors.Wrap(errs.ErrValidation, "motivo.descripcion is required for Otro")
		}
	case model.MotivoTransferencia:
		return errors.Wrap(errs.ErrValidation, "motivo Transferencia is reserved for transfers")
	default:
		return errors.Wrapf(errs.ErrValidation, "unknown motivo %q", m.Tipo)
	}
	return nil
}

// CrearPrestamo creates a pendiente loan and locks its resources in the same write.
func (s *Service) CrearPrestamo(ctx context.Context, actor auth.Actor, req model.CreatePrestamoRequest) (model.Prestamo, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Prestamo{}, err
	}
	if err := required(req.Docente, "docente"); err != nil {
		return model.Prestamo{}, err
	}
	if err := required(req.Recurso, "recurso"); err != nil {
		return model.Prestamo{}, err
	}
	if err := validateMotivo(req.Motivo); err != nil {
		return model.Prestamo{}, err
	}

	adicionales := req.RecursosAdicionales
	if req.DetectarEnObservaciones {
		detected, err := s.detectRecursos(ctx, req.Observaciones)
		if err != nil {
			return model.Prestamo{}, err
		}
		adicionales = append(append([]string(nil), adicionales...), detected...)
	}

	recurso := strings.TrimSpace(req.Recurso)
	p := model.Prestamo{
		ID:                  s.ids.NewID(),
		Docente:             strings.TrimSpace(req.Docente),
		Recurso:             recurso,
		RecursosAdicionales: without(model.CleanList(adicionales), recurso),
		Motivo:              model.Motivo{Tipo: req.Motivo.Tipo, Descripcion: strings.TrimSpace(req.Motivo.Descripcion)},
		Observaciones:       req.Observaciones,
		Estado:              model.PrestamoPendiente,
		FechaPrestamo:       s.now(),
		CreadoPor:           actor.ID,
	}
	p, err := s.repo.CreatePrestamo(ctx, p)
	if err != nil {
		s.log.Warn("crear prestamo rejected", zap.String("recurso", req.Recurso), zap.Error(err))
		return model.Prestamo{}, err
	}
	s.log.Info("prestamo created", zap.String("id", p.ID), zap.String("docente", p.Docente), zap.Strings("recursos", p.Recursos()))
	s.publish(ctx, model.EventPrestamoAsignado, p.Docente, p.ID, p)
	return p, nil
}

// detectRecursos resolves "KIT #n" references in free text. Unknown codes are ignored.
func (s *Service) detectRecursos(ctx context.Context, text string) ([]string, error) {
	codigos := DetectCodigos(text)
	if len(codigos) == 0 {
		return nil, nil
	}
	found, err := s.repo.FindRecursosByCodigo(ctx, codigos)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(found))
	for _, r := range found {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (s *Service) ConfirmarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.ConfirmarPrestamoRequest) (model.Prestamo, error) {
	t := model.PrestamoTransition{ID: id, From: model.PrestamoPendiente, At: s.now()}
	if req.Confirmar {
		if err := required(req.Firma, "firma"); err != nil {
			return model.Prestamo{}, err
		}
		t.To = model.PrestamoActivo
		t.Firma = req.Firma
	} else {
		if err := required(req.MotivoRechazo, "motivoRechazo"); err != nil {
			return model.Prestamo{}, err
		}
		t.To = model.PrestamoRechazado
		t.MotivoRechazo = strings.TrimSpace(req.MotivoRechazo)
	}

	p, err := s.repo.GetPrestamo(ctx, id)
	if err != nil {
		return model.Prestamo{}, err
	}
	if actor.ID != p.Docente {
		return model.Prestamo{}, errors.Wrap(errs.ErrPermission, "only the borrowing docente may confirm")
	}
	return s.transition(ctx, p, t)
}

func (s *Service) FinalizarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.FinalizarPrestamoRequest) (model.Prestamo, error) {
	p, err := s.repo.GetPrestamo(ctx, id)
	if err != nil {
		return model.Prestamo{}, err
	}
	by := model.FinalizadoPorDocente
	switch {
	case actor.ID == p.Docente:
	case actor.IsAdmin():
		by = model.FinalizadoPorAdmin
	default:
		return model.Prestamo{}, errors.Wrap(errs.ErrPermission, "only the docente or an admin may finalize")
	}
	return s.transition(ctx, p, model.PrestamoTransition{
		ID:                      id,
		From:                    model.PrestamoActivo,
		To:                      model.PrestamoFinalizado,
		At:                      s.now(),
		ObservacionesDevolucion: req.ObservacionesDevolucion,
		FinalizadoPor:           by,
	})
}

func (s *Service) CancelarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.CancelarPrestamoRequest) (model.Prestamo, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Prestamo{}, err
	}
	if err := required(req.MotivoCancelacion, "motivoCancelacion"); err != nil {
		return model.Prestamo{}, err
	}
	p, err := s.repo.GetPrestamo(ctx, id)
	if err != nil {
		return model.Prestamo{}, err
	}
	return s.transition(ctx, p, model.PrestamoTransition{
		ID:                id,
		From:              model.PrestamoPendiente,
		To:                model.PrestamoCancelado,
		At:                s.now(),
		MotivoCancelacion: strings.TrimSpace(req.MotivoCancelacion),
	})
}

// transition checks the state machine against the loaded loan, the repository re-checks it atomically.
func (s *Service) transition(ctx context.Context, p model.Prestamo, t model.PrestamoTransition) (model.Prestamo, error) {
	if p.Estado != t.From || !p.Estado.CanTransition(t.To) {
		s.log.Warn("illegal prestamo transition", zap.String("id", p.ID),
			zap.String("from", string(p.Estado)), zap.String("to", string(t.To)))
		return model.Prestamo{}, errors.Wrapf(errs.ErrIllegalTransition, "prestamo %s is %s, cannot become %s", p.ID, p.Estado, t.To)
	}
	out, err := s.repo.TransitionPrestamo(ctx, t)
	if err != nil {
		return model.Prestamo{}, err
	}
	s.log.Info("prestamo transition", zap.String("id", out.ID),
		zap.String("from", string(t.From)), zap.String("to", string(out.Estado)))
	return out, nil
}

func (s *Service) GetPrestamo(ctx context.Context, actor auth.Actor, id string) (model.Prestamo, error) {
	p, err := s.repo.GetPrestamo(ctx, id)
	if err != nil {
		return model.Prestamo{}, err
	}
	if !actor.IsAdmin() && actor.ID != p.Docente {
		return model.Prestamo{}, errors.Wrap(errs.ErrPermission, "prestamo belongs to another docente")
	}
	return p, nil
}

func (s *Service) ListPrestamos(ctx context.Context, f model.PrestamoFilter) ([]model.Prestamo, error) {
	return s.repo.ListPrestamos(ctx, f)
}

// ListPrestamosDocente returns the caller's open loans.
func (s *Service) ListPrestamosDocente(ctx context.Context, actor auth.Actor) ([]model.Prestamo, error) {
	return s.repo.ListPrestamos(ctx, model.PrestamoFilter{Docente: actor.ID, Estados: model.PrestamoAbiertos})
}

func (s *Service) HistorialDocente(ctx context.Context, actor auth.Actor) ([]model.Prestamo, error) {
	return s.repo.ListPrestamos(ctx, model.PrestamoFilter{Docente: actor.ID, Estados: model.PrestamoCerrados})
}

func without(in []string, v string) []string {
	out := in[:0]
	for _, s := range in {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
