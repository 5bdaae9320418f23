package model

import (
	"time"
)

type EstadoPrestamo string

const (
	PrestamoPendiente  EstadoPrestamo = "pendiente"
	PrestamoActivo     EstadoPrestamo = "activo"
	PrestamoFinalizado EstadoPrestamo = "finalizado"
	PrestamoRechazado  EstadoPrestamo = "rechazado"
	PrestamoCancelado  EstadoPrestamo = "cancelado"
)

var prestamoTransitions = map[EstadoPrestamo][]EstadoPrestamo{
	PrestamoPendiente: {PrestamoActivo, PrestamoRechazado, PrestamoCancelado},
	PrestamoActivo:    {PrestamoFinalizado},
}

func (e EstadoPrestamo) Terminal() bool {
	return e == PrestamoFinalizado || e == PrestamoRechazado || e == PrestamoCancelado
}

// Open reports whether the loan still holds its resources.
func (e EstadoPrestamo) Open() bool {
	return e == PrestamoPendiente || e == PrestamoActivo
}

func (e EstadoPrestamo) CanTransition(to EstadoPrestamo) bool {
	for _, s := range prestamoTransitions[e] {
		if s == to {
			return true
		}
	}
	return false
}

// RecursoEstado is the resource estado implied by a loan in estado e.
func (e EstadoPrestamo) RecursoEstado() EstadoRecurso {
	switch e {
	case PrestamoPendiente:
		return RecursoPrestado
	case PrestamoActivo:
		return RecursoActivo
	}
	return RecursoPendiente
}

var (
	PrestamoAbiertos = []EstadoPrestamo{PrestamoPendiente, PrestamoActivo}
	PrestamoCerrados = []EstadoPrestamo{PrestamoFinalizado, PrestamoRechazado, PrestamoCancelado}
)

type MotivoTipo string

const (
	MotivoClase         MotivoTipo = "Clase"
	MotivoConferencia   MotivoTipo = "Conferencia"
	MotivoOtro          MotivoTipo = "Otro"
	MotivoTransferencia MotivoTipo = "Transferencia"
)

type Motivo struct {
	Tipo        MotivoTipo `json:"tipo" validate:"required"`
	Descripcion string     `json:"descripcion"`
}

const (
	FinalizadoPorAdmin         = "admin"
	FinalizadoPorDocente       = "docente"
	FinalizadoPorTransferencia = "transferencia"
)

type Prestamo struct {
	ID                      string         `json:"id"`
	Docente                 string         `json:"docente"`
	Recurso                 string         `json:"recurso"`
	RecursosAdicionales     []string       `json:"recursosAdicionales"`
	Motivo                  Motivo         `json:"motivo"`
	Observaciones           string         `json:"observaciones,omitempty"`
	Estado                  EstadoPrestamo `json:"estado"`
	FechaPrestamo           time.Time      `json:"fechaPrestamo"`
	HoraConfirmacion        *time.Time     `json:"horaConfirmacion,omitempty"`
	HoraDevolucion          *time.Time     `json:"horaDevolucion,omitempty"`
	FirmaDocente            string         `json:"firmaDocente,omitempty"`
	MotivoRechazo           string         `json:"motivoRechazo,omitempty"`
	MotivoCancelacion       string         `json:"motivoCancelacion,omitempty"`
	ObservacionesDevolucion string         `json:"observacionesDevolucion,omitempty"`
	FinalizadoPor           string         `json:"finalizadoPor,omitempty"`
	TransferenciaOrigen     string         `json:"transferenciaOrigen,omitempty"`
	CreadoPor               string         `json:"creadoPor,omitempty"`
}

// Recursos returns the primary resource followed by the additional ones.
func (p Prestamo) Recursos() []string {
	out := make([]string, 0, 1+len(p.RecursosAdicionales))
	out = append(out, p.Recurso)
	return append(out, p.RecursosAdicionales...)
}

func (p Prestamo) Holds(recursoID string) bool {
	for _, id := range p.Recursos() {
		if id == recursoID {
			return true
		}
	}
	return false
}

// PrestamoTransition is a conditional state change: it applies only while the loan is in From.
type PrestamoTransition struct {
	ID                      string
	From                    EstadoPrestamo
	To                      EstadoPrestamo
	At                      time.Time
	Firma                   string
	MotivoRechazo           string
	MotivoCancelacion       string
	ObservacionesDevolucion string
	FinalizadoPor           string
}

// Apply writes the transition fields onto p. Callers check From beforehand.
func (t PrestamoTransition) Apply(p Prestamo) Prestamo {
	at := t.At
	p.Estado = t.To
	switch t.To {
	case PrestamoActivo:
		p.HoraConfirmacion = &at
		p.FirmaDocente = t.Firma
	case PrestamoRechazado:
		p.MotivoRechazo = t.MotivoRechazo
	case PrestamoCancelado:
		p.MotivoCancelacion = t.MotivoCancelacion
	case PrestamoFinalizado:
		p.HoraDevolucion = &at
		p.ObservacionesDevolucion = t.ObservacionesDevolucion
		p.FinalizadoPor = t.FinalizadoPor
	}
	return p
}

type CreatePrestamoRequest struct {
	Docente                 string   `json:"docente" validate:"required"`
	Recurso                 string   `json:"recurso" validate:"required"`
	RecursosAdicionales     []string `json:"recursosAdicionales"`
	Motivo                  Motivo   `json:"motivo"`
	Observaciones           string   `json:"observaciones"`
	DetectarEnObservaciones bool     `json:"detectarEnObservaciones"`
}

type ConfirmarPrestamoRequest struct {
	Confirmar     bool   `json:"confirmar"`
	MotivoRechazo string `json:"motivoRechazo"`
	Firma         string `json:"firma"`
}

type FinalizarPrestamoRequest struct {
	ObservacionesDevolucion string `json:"observacionesDevolucion"`
}

type CancelarPrestamoRequest struct {
	MotivoCancelacion string `json:"motivoCancelacion" validate:"required"`
}

type PrestamoFilter struct {
	Docente string
	Estados []EstadoPrestamo
	Desde   *time.Time
	Hasta   *time.Time
}
