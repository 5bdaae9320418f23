package handler

import (
	"context"

	"github.com/Astemirdum/lab-lending/lending/internal/audit"
	"github.com/Astemirdum/lab-lending/lending/internal/model"
	"github.com/Astemirdum/lab-lending/lending/internal/service"
	"github.com/Astemirdum/lab-lending/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	CreateRecurso(ctx context.Context, actor auth.Actor, req model.CreateRecursoRequest) (model.Recurso, error)
	GetRecurso(ctx context.Context, id string) (model.Recurso, error)
	ListRecursos(ctx context.Context, f model.RecursoFilter) ([]model.Recurso, error)
	ListRecursosDisponibles(ctx context.Context) ([]model.Recurso, error)
	UpdateRecurso(ctx context.Context, actor auth.Actor, id string, req model.UpdateRecursoRequest) (model.Recurso, error)
	DeleteRecurso(ctx context.Context, actor auth.Actor, id string) error

	CrearPrestamo(ctx context.Context, actor auth.Actor, req model.CreatePrestamoRequest) (model.Prestamo, error)
	ConfirmarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.ConfirmarPrestamoRequest) (model.Prestamo, error)
	FinalizarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.FinalizarPrestamoRequest) (model.Prestamo, error)
	CancelarPrestamo(ctx context.Context, actor auth.Actor, id string, req model.CancelarPrestamoRequest) (model.Prestamo, error)
	GetPrestamo(ctx context.Context, actor auth.Actor, id string) (model.Prestamo, error)
	ListPrestamos(ctx context.Context, f model.PrestamoFilter) ([]model.Prestamo, error)
	ListPrestamosDocente(ctx context.Context, actor auth.Actor) ([]model.Prestamo, error)
	HistorialDocente(ctx context.Context, actor auth.Actor) ([]model.Prestamo, error)

	CrearTransferencia(ctx context.Context, actor auth.Actor, req model.CreateTransferenciaRequest) (model.TransferenciaView, error)
	ObtenerPorQR(ctx context.Context, codigoQR string) (model.TransferenciaView, error)
	ConfirmarOrigen(ctx context.Context, actor auth.Actor, codigoQR string, req model.ConfirmarOrigenRequest) (model.TransferenciaView, error)
	ResponderDestino(ctx context.Context, actor auth.Actor, key string, req model.ResponderDestinoRequest) (model.TransferenciaView, error)
	CancelarTransferencia(ctx context.Context, actor auth.Actor, codigoQR string, req model.CancelarTransferenciaRequest) (model.TransferenciaView, error)
	ListTransferencias(ctx context.Context, f model.TransferenciaFilter) ([]model.TransferenciaView, error)
	ListTransferenciasDocente(ctx context.Context, actor auth.Actor, estado model.EstadoTransferencia) ([]model.TransferenciaView, error)
	ListTransferenciasPendientes(ctx context.Context, actor auth.Actor) ([]model.TransferenciaView, error)
}

type EventLog interface {
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
}

var (
	_ LendingService = (*service.Service)(nil)
	_ EventLog       = (audit.Store)(nil)
)
