package model

import (
	"time"
)

type EstadoTransferencia string

const (
	TransferenciaPendienteOrigen  EstadoTransferencia = "pendiente_origen"
	TransferenciaConfirmadoOrigen EstadoTransferencia = "confirmado_origen"
	// TransferenciaAceptadoDestino is a display label only, acceptance goes straight to finalizado.
	TransferenciaAceptadoDestino EstadoTransferencia = "aceptado_destino"
	TransferenciaRechazado       EstadoTransferencia = "rechazado"
	TransferenciaCancelado       EstadoTransferencia = "cancelado"
	TransferenciaFinalizado      EstadoTransferencia = "finalizado"
)

var transferenciaTransitions = map[EstadoTransferencia][]EstadoTransferencia{
	TransferenciaPendienteOrigen:  {TransferenciaConfirmadoOrigen, TransferenciaCancelado},
	TransferenciaConfirmadoOrigen: {TransferenciaFinalizado, TransferenciaRechazado, TransferenciaCancelado},
}

var TransferenciaAbiertas = []EstadoTransferencia{TransferenciaPendienteOrigen, TransferenciaConfirmadoOrigen}

func (e EstadoTransferencia) Terminal() bool {
	return e == TransferenciaRechazado || e == TransferenciaCancelado || e == TransferenciaFinalizado
}

func (e EstadoTransferencia) CanTransition(to EstadoTransferencia) bool {
	for _, s := range transferenciaTransitions[e] {
		if s == to {
			return true
		}
	}
	return false
}

type Transferencia struct {
	ID                       string              `json:"id" db:"id"`
	PrestamoOrigen           string              `json:"prestamoOrigen" db:"prestamo_origen"`
	DocenteOrigen            string              `json:"docenteOrigen" db:"docente_origen"`
	DocenteDestino           string              `json:"docenteDestino" db:"docente_destino"`
	Recursos                 []string            `json:"recursos" db:"recursos"`
	RecursosAdicionales      []string            `json:"recursosAdicionales" db:"recursos_adicionales"`
	CodigoQR                 string              `json:"codigoQR" db:"codigo_qr"`
	Estado                   EstadoTransferencia `json:"estado" db:"estado"`
	FirmaOrigen              string              `json:"firmaOrigen,omitempty" db:"firma_origen"`
	FirmaDestino             string              `json:"firmaDestino,omitempty" db:"firma_destino"`
	FechaSolicitud           time.Time           `json:"fechaSolicitud" db:"fecha_solicitud"`
	FechaConfirmacionOrigen  *time.Time          `json:"fechaConfirmacionOrigen,omitempty" db:"fecha_confirmacion_origen"`
	FechaConfirmacionDestino *time.Time          `json:"fechaConfirmacionDestino,omitempty" db:"fecha_confirmacion_destino"`
	ObservacionesOrigen      string              `json:"observacionesOrigen,omitempty" db:"observaciones_origen"`
	ObservacionesDestino     string              `json:"observacionesDestino,omitempty" db:"observaciones_destino"`
	MotivoRechazo            string              `json:"motivoRechazo,omitempty" db:"motivo_rechazo"`
	MotivoCancelacion        string              `json:"motivoCancelacion,omitempty" db:"motivo_cancelacion"`
	PrestamoDestino          string              `json:"prestamoDestino,omitempty" db:"prestamo_destino"`
	ExpiraEn                 *time.Time          `json:"expiraEn,omitempty" db:"expira_en"`
	CreadoPor                string              `json:"creadoPor,omitempty" db:"creado_por"`
}

// Expired reports whether a still-open transfer is past its QR window.
func (t Transferencia) Expired(now time.Time) bool {
	return !t.Estado.Terminal() && t.ExpiraEn != nil && !now.Before(*t.ExpiraEn)
}

// Caducada is the client-facing "no longer usable" flag: terminal or expired.
func (t Transferencia) Caducada(now time.Time) bool {
	return t.Estado.Terminal() || t.Expired(now)
}

// Seleccionados returns every resource the transfer moves, principal ones first.
func (t Transferencia) Seleccionados() []string {
	out := make([]string, 0, len(t.Recursos)+len(t.RecursosAdicionales))
	out = append(out, t.Recursos...)
	return append(out, t.RecursosAdicionales...)
}

type TransferenciaView struct {
	Transferencia
	QRURL    string `json:"qrURL"`
	Caducada bool   `json:"caducada"`
}

// TransferenciaTransition applies only while the transfer is in one of From and not expired at At.
type TransferenciaTransition struct {
	ID            string
	From          []EstadoTransferencia
	To            EstadoTransferencia
	At            time.Time
	Firma         string
	Observaciones string
	Motivo        string
}

func (t TransferenciaTransition) Allowed(e EstadoTransferencia) bool {
	for _, s := range t.From {
		if s == e {
			return true
		}
	}
	return false
}

func (t TransferenciaTransition) Apply(tr Transferencia) Transferencia {
	at := t.At
	tr.Estado = t.To
	switch t.To {
	case TransferenciaConfirmadoOrigen:
		tr.FechaConfirmacionOrigen = &at
		tr.FirmaOrigen = t.Firma
		tr.ObservacionesOrigen = t.Observaciones
	case TransferenciaFinalizado:
		tr.FechaConfirmacionDestino = &at
		tr.FirmaDestino = t.Firma
		tr.ObservacionesDestino = t.Observaciones
	case TransferenciaRechazado:
		tr.FechaConfirmacionDestino = &at
		tr.ObservacionesDestino = t.Observaciones
		tr.MotivoRechazo = t.Motivo
	case TransferenciaCancelado:
		tr.MotivoCancelacion = t.Motivo
	}
	return tr
}

// TransferAcceptance is the single atomic write performed when the destino accepts.
type TransferAcceptance struct {
	Transition TransferenciaTransition
	// Nuevo is the loan created for the destino. Resources of the origin loan
	// it does not carry are released.
	Nuevo Prestamo
}

type RecursosSeleccionados struct {
	Principales []string `json:"principales"`
	Adicionales []string `json:"adicionales"`
}

type CreateTransferenciaRequest struct {
	PrestamoID            string                `json:"prestamoId" validate:"required"`
	DocenteDestinoID      string                `json:"docenteDestinoId" validate:"required"`
	RecursosSeleccionados RecursosSeleccionados `json:"recursosSeleccionados"`
}

type ConfirmarOrigenRequest struct {
	Observaciones string `json:"observaciones"`
	Firma         string `json:"firma" validate:"required"`
}

type ResponderDestinoRequest struct {
	Confirmar     bool   `json:"confirmar"`
	Firma         string `json:"firma"`
	MotivoRechazo string `json:"motivoRechazo"`
	Observaciones string `json:"observaciones"`
}

type CancelarTransferenciaRequest struct {
	MotivoCancelacion string `json:"motivoCancelacion" validate:"required"`
}

type TransferenciaFilter struct {
	// Docente matches either side of the transfer.
	Docente        string
	DocenteDestino string
	PrestamoOrigen string
	Estados        []EstadoTransferencia
}
