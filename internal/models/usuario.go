package models

import (
	"github.com/google/uuid"
)

// TipoUsuario is the user category (Administrador, Cliente, Funcionário, Entregador).
type TipoUsuario struct {
	BaseModel
	Nome      string    `gorm:"uniqueIndex" json:"nome"`
	Descricao string    `json:"descricao"`
	Usuarios  []Usuario `gorm:"foreignKey:TipoUsuarioID" json:"-"`
}

// TableName keeps the original table naming.
func (TipoUsuario) TableName() string { return "tipos_usuario" }

// Usuario is a system account. The password is stored hashed and never serialized.
type Usuario struct {
	BaseModel
	Nome          string       `json:"nome"`
	Email         string       `gorm:"uniqueIndex" json:"email"`
	SenhaHash     string       `json:"-"`
	Telefone      string       `json:"telefone"`
	Ativo         bool         `json:"ativo"`
	TipoUsuarioID uuid.UUID    `gorm:"type:uuid" json:"tipoUsuarioId"`
	TipoUsuario   *TipoUsuario `json:"tipoUsuario,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }
