package model

import (
	"encoding/json"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type EventType string

const (
	EventTransferenciaConfirmadaOrigen EventType = "transferencia-confirmada-origen"
	EventTransferenciaRespondida       EventType = "transferencia-respondida"
	EventPrestamoAsignado              EventType = "prestamo-asignado"
)

type Event struct {
	ID         string          `json:"id"`
	Tipo       EventType       `json:"tipo"`
	Para       string          `json:"para"`
	EntidadID  string          `json:"entidadId"`
	Payload    json.RawMessage `json:"payload" swaggertype:"object"`
	OcurridoEn time.Time       `json:"ocurridoEn"`
}

// NewEvent encodes data as the payload. ID and time are stamped by the publisher.
func NewEvent(tipo EventType, para, entidadID string, data any) (Event, error) {
	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{Tipo: tipo, Para: para, EntidadID: entidadID, Payload: payload}, nil
}

type EventFilter struct {
	EntidadID string
	Para      string
	Limit     uint64
}
