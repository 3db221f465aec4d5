package models

// Condominio groups the lockers installed at a single address.
type Condominio struct {
	BaseModel
	Nome     string    `gorm:"uniqueIndex" json:"nome"`
	Endereco string    `json:"endereco"`
	Cep      string    `json:"cep"`
	Cidade   string    `json:"cidade"`
	Estado   string    `json:"estado"`
	Telefone string    `json:"telefone"`
	Email    string    `json:"email"`
	Armarios []Armario `gorm:"foreignKey:CondominioID" json:"-"`
}

func (Condominio) TableName() string { return "condominios" }
