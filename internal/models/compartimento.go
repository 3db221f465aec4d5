package models

import (
	"github.com/google/uuid"
)

// Compartimento is an individually lockable slot inside an Armario.
// Ocupado tracks whether an active delivery or reservation currently holds
// it; CodigoAcesso gates pickup and is rotated after each successful one.
type Compartimento struct {
	BaseModel
	Numero       string    `gorm:"index:idx_compartimentos_numero_armario,unique" json:"numero"`
	Tamanho      string    `json:"tamanho"` // P, M, G
	Ocupado      bool      `json:"ocupado"`
	CodigoAcesso string    `json:"codigoAcesso"`
	ArmarioID    uuid.UUID `gorm:"type:uuid;index:idx_compartimentos_numero_armario,unique" json:"armarioId"`
	Armario      *Armario  `json:"armario,omitempty"`
	Entregas     []Entrega `gorm:"foreignKey:CompartimentoID" json:"-"`
}

func (Compartimento) TableName() string { return "compartimentos" }
