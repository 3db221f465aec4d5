package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// Seed loads the initial user types, an administrator account and a demo
// condominium with one locker so a fresh install is usable. It is a no-op
// when user types already exist.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.TipoUsuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding initial data")

	tipos := []models.TipoUsuario{
		{Nome: string(models.RoleAdministrador), Descricao: "Usuário com acesso total ao sistema"},
		{Nome: string(models.RoleCliente), Descricao: "Usuário com acesso limitado ao sistema"},
		{Nome: string(models.RoleFuncionario), Descricao: "Funcionário da empresa com acesso intermediário"},
		{Nome: string(models.RoleEntregador), Descricao: "Entregador com acesso administrativo ao sistema"},
	}
	for i := range tipos {
		if err := conn.Create(&tipos[i]).Error; err != nil {
			return err
		}
	}

	senhaHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.Usuario{
		Nome:          "Admin Sistema",
		Email:         "admin@smartlocker.com",
		SenhaHash:     senhaHash,
		Telefone:      "(81) 99999-0000",
		Ativo:         true,
		TipoUsuarioID: tipos[0].ID,
	}
	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	condominio := models.Condominio{
		Nome:     "Residencial Parque das Flores",
		Endereco: "Av. Principal, 1000",
		Cep:      "50000-000",
		Cidade:   "Recife",
		Estado:   "PE",
		Telefone: "(81) 3333-4444",
		Email:    "contato@parquedasflores.com",
	}
	if err := conn.Create(&condominio).Error; err != nil {
		return err
	}

	armario := models.Armario{
		Identificacao: "ARM-001",
		Localizacao:   "Hall de entrada",
		Descricao:     "Armário principal",
		Ativo:         true,
		CondominioID:  condominio.ID,
	}
	if err := conn.Create(&armario).Error; err != nil {
		return err
	}

	compartimentos := []models.Compartimento{
		{Numero: "A1", Tamanho: "P", CodigoAcesso: "111111", ArmarioID: armario.ID},
		{Numero: "A2", Tamanho: "M", CodigoAcesso: "222222", ArmarioID: armario.ID},
		{Numero: "A3", Tamanho: "G", CodigoAcesso: "333333", ArmarioID: armario.ID},
	}
	for i := range compartimentos {
		if err := conn.Create(&compartimentos[i]).Error; err != nil {
			return err
		}
	}

	log.Println("initial data seeded")
	return nil
}
