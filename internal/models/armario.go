package models

import (
	"github.com/google/uuid"
)

// Armario is a locker unit. The identification repeats across condominiums,
// so uniqueness is enforced per condominium.
type Armario struct {
	BaseModel
	Identificacao  string         `gorm:"index:idx_armarios_ident_condominio,unique" json:"identificacao"`
	Localizacao    string         `json:"localizacao"`
	Descricao      string         `json:"descricao"`
	Ativo          bool           `json:"ativo"`
	CondominioID   uuid.UUID      `gorm:"type:uuid;index:idx_armarios_ident_condominio,unique" json:"condominioId"`
	Condominio     *Condominio    `json:"condominio,omitempty"`
	Compartimentos []Compartimento `gorm:"foreignKey:ArmarioID" json:"-"`
}

func (Armario) TableName() string { return "armarios" }
