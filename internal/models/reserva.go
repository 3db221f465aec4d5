package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusReserva is the reservation lifecycle state.
type StatusReserva string

const (
	ReservaPendente   StatusReserva = "PENDENTE"
	ReservaConfirmada StatusReserva = "CONFIRMADA"
	ReservaCancelada  StatusReserva = "CANCELADA"
	ReservaConcluida  StatusReserva = "CONCLUIDA"
)

// ParseStatusReserva validates a status supplied by a caller.
func ParseStatusReserva(s string) (StatusReserva, bool) {
	switch StatusReserva(s) {
	case ReservaPendente, ReservaConfirmada, ReservaCancelada, ReservaConcluida:
		return StatusReserva(s), true
	}
	return "", false
}

// PodeSerCancelada reports whether cancellation is still allowed.
func (s StatusReserva) PodeSerCancelada() bool {
	return s == ReservaConfirmada || s == ReservaPendente
}

// PodeSerConcluida reports whether completion is allowed.
func (s StatusReserva) PodeSerConcluida() bool { return s == ReservaConfirmada }

// Reserva is a time-boxed hold on a compartment requested by a user.
type Reserva struct {
	BaseModel
	DataInicio      time.Time      `json:"dataInicio"`
	DataFim         time.Time      `json:"dataFim"`
	Observacao      string         `json:"observacao"`
	Status          StatusReserva  `json:"status"`
	CompartimentoID uuid.UUID      `gorm:"type:uuid" json:"compartimentoId"`
	Compartimento   *Compartimento `json:"compartimento,omitempty"`
	UsuarioID       uuid.UUID      `gorm:"type:uuid" json:"usuarioId"`
	Usuario         *Usuario       `json:"usuario,omitempty"`
}

func (Reserva) TableName() string { return "reservas" }
