package repository

import (
	"context"

	"github.com/Astemirdum/lab-lending/lending/internal/model"
)

type RecursoRepository interface {
	// CreateRecurso assigns the per-tipo codigo and stores r with estado pendiente.
	CreateRecurso(ctx context.Context, r model.Recurso) (model.Recurso, error)
	GetRecurso(ctx context.Context, id string) (model.Recurso, error)
	ListRecursos(ctx context.Context, f model.RecursoFilter) ([]model.Recurso, error)
	FindRecursosByCodigo(ctx context.Context, codigos []string) ([]model.Recurso, error)
	// UpdateRecurso fails with errs.ErrResourceLocked unless the resource is pendiente.
	UpdateRecurso(ctx context.Context, r model.Recurso) (model.Recurso, error)
	// DeleteRecurso is idempotent for missing ids and fails with errs.ErrResourceLocked for held ones.
	DeleteRecurso(ctx context.Context, id string) error
}

type PrestamoRepository interface {
	// CreatePrestamo locks every resource of p atomically with the insert.
	CreatePrestamo(ctx context.Context, p model.Prestamo) (model.Prestamo, error)
	GetPrestamo(ctx context.Context, id string) (model.Prestamo, error)
	ListPrestamos(ctx context.Context, f model.PrestamoFilter) ([]model.Prestamo, error)
	// TransitionPrestamo applies t only if the loan is still in t.From and moves its resources along.
	TransitionPrestamo(ctx context.Context, t model.PrestamoTransition) (model.Prestamo, error)
}

type TransferenciaRepository interface {
	// CreateTransferencia requires the origin loan to be activo with no other open transfer.
	CreateTransferencia(ctx context.Context, t model.Transferencia) (model.Transferencia, error)
	GetTransferencia(ctx context.Context, id string) (model.Transferencia, error)
	GetTransferenciaByQR(ctx context.Context, codigoQR string) (model.Transferencia, error)
	ListTransferencias(ctx context.Context, f model.TransferenciaFilter) ([]model.Transferencia, error)
	TransitionTransferencia(ctx context.Context, t model.TransferenciaTransition) (model.Transferencia, error)
	// AcceptTransferencia finalizes the transfer and the origin loan and creates the destino loan in one write.
	AcceptTransferencia(ctx context.Context, a model.TransferAcceptance) (model.Transferencia, model.Prestamo, error)
}

type Repository interface {
	RecursoRepository
	PrestamoRepository
	TransferenciaRepository
}
