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

func (s *Service) CreateRecurso(ctx context.Context, actor auth.Actor, req model.CreateRecursoRequest) (model.Recurso, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Recurso{}, err
	}
	r := model.Recurso{
		ID:          s.ids.NewID(),
		Tipo:        req.Tipo,
		Nombre:      strings.TrimSpace(req.Nombre),
		Laboratorio: strings.TrimSpace(req.Laboratorio),
		Aula:        strings.TrimSpace(req.Aula),
		Contenido:   model.TrimList(req.Contenido),
		Estado:      model.RecursoPendiente,
		CreadoEn:    s.now(),
	}
	if err := r.Validate(); err != nil {
		return model.Recurso{}, err
	}
	r, err := s.repo.CreateRecurso(ctx, r)
	if err != nil {
		return model.Recurso{}, err
	}
	s.log.Info("recurso created", zap.String("id", r.ID), zap.String("codigo", r.Codigo))
	return r, nil
}

func (s *Service) GetRecurso(ctx context.Context, id string) (model.Recurso, error) {
	return s.repo.GetRecurso(ctx, id)
}

func (s *Service) ListRecursos(ctx context.Context, f model.RecursoFilter) ([]model.Recurso, error) {
	return s.repo.ListRecursos(ctx, f)
}

func (s *Service) ListRecursosDisponibles(ctx context.Context) ([]model.Recurso, error) {
	return s.repo.ListRecursos(ctx, model.RecursoFilter{Estado: model.RecursoPendiente})
}

func (s *Service) UpdateRecurso(ctx context.Context, actor auth.Actor, id string, req model.UpdateRecursoRequest) (model.Recurso, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Recurso{}, err
	}
	cur, err := s.repo.GetRecurso(ctx, id)
	if err != nil {
		return model.Recurso{}, err
	}
	if cur.Locked() {
		return model.Recurso{}, errors.Wrapf(errs.ErrResourceLocked, "recurso %s is %s", cur.Codigo, cur.Estado)
	}
	next := req.Merge(cur)
	if err := next.Validate(); err != nil {
		return model.Recurso{}, err
	}
	return s.repo.UpdateRecurso(ctx, next)
}

func (s *Service) DeleteRecurso(ctx context.Context, actor auth.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeleteRecurso(ctx, id); err != nil {
		return err
	}
	s.log.Info("recurso deleted", zap.String("id", id))
	return nil
}
