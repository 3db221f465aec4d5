package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusEntrega is the delivery lifecycle state.
type StatusEntrega string

const (
	EntregaAguardando StatusEntrega = "AGUARDANDO_ENTREGA"
	EntregaEntregue   StatusEntrega = "ENTREGUE"
	EntregaRetirada   StatusEntrega = "RETIRADO"
	EntregaCancelada  StatusEntrega = "CANCELADO"
)

// ParseStatusEntrega validates a status supplied by a caller.
func ParseStatusEntrega(s string) (StatusEntrega, bool) {
	switch StatusEntrega(s) {
	case EntregaAguardando, EntregaEntregue, EntregaRetirada, EntregaCancelada:
		return StatusEntrega(s), true
	}
	return "", false
}

// PodeSerRetirada reports whether a pickup may be registered.
func (s StatusEntrega) PodeSerRetirada() bool { return s == EntregaEntregue }

// PodeSerCancelada reports whether cancellation is still allowed.
func (s StatusEntrega) PodeSerCancelada() bool {
	return s == EntregaEntregue || s == EntregaAguardando
}

// Entrega is a delivery occupying a compartment until picked up.
type Entrega struct {
	BaseModel
	CodigoRastreio  string         `gorm:"uniqueIndex" json:"codigoRastreio"`
	DataEntrega     time.Time      `json:"dataEntrega"`
	DataRetirada    *time.Time     `json:"dataRetirada,omitempty"`
	Observacao      string         `json:"observacao"`
	Status          StatusEntrega  `json:"status"`
	CompartimentoID uuid.UUID      `gorm:"type:uuid" json:"compartimentoId"`
	Compartimento   *Compartimento `json:"compartimento,omitempty"`
	EntregadorID    uuid.UUID      `gorm:"type:uuid" json:"entregadorId"`
	Entregador      *Usuario       `gorm:"foreignKey:EntregadorID" json:"entregador,omitempty"`
	DestinatarioID  uuid.UUID      `gorm:"type:uuid" json:"destinatarioId"`
	Destinatario    *Usuario       `gorm:"foreignKey:DestinatarioID" json:"destinatario,omitempty"`
}

func (Entrega) TableName() string { return "entregas" }
