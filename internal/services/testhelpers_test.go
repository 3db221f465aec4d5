package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, named so parallel tests
	// cannot see each other's data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	migrations := []interface{}{
		&models.TipoUsuario{},
		&models.Usuario{},
		&models.Condominio{},
		&models.Armario{},
		&models.Compartimento{},
		&models.Entrega{},
		&models.Reserva{},
	}
	for _, m := range migrations {
		require.NoError(t, db.AutoMigrate(m))
	}

	return db
}

// fixtures holds the base records most workflow tests need.
type fixtures struct {
	TipoAdmin      models.TipoUsuario
	TipoCliente    models.TipoUsuario
	TipoEntregador models.TipoUsuario
	Admin          models.Usuario
	Cliente        models.Usuario
	Entregador     models.Usuario
	Condominio     models.Condominio
	Armario        models.Armario
	Compartimento  models.Compartimento
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		TipoAdmin:      models.TipoUsuario{Nome: "Administrador"},
		TipoCliente:    models.TipoUsuario{Nome: "Cliente"},
		TipoEntregador: models.TipoUsuario{Nome: "Entregador"},
	}
	require.NoError(t, db.Create(&f.TipoAdmin).Error)
	require.NoError(t, db.Create(&f.TipoCliente).Error)
	require.NoError(t, db.Create(&f.TipoEntregador).Error)

	f.Admin = models.Usuario{Nome: "Admin", Email: "admin@teste.com", SenhaHash: "x", Ativo: true, TipoUsuarioID: f.TipoAdmin.ID}
	f.Cliente = models.Usuario{Nome: "João Silva", Email: "joao@teste.com", SenhaHash: "x", Ativo: true, TipoUsuarioID: f.TipoCliente.ID}
	f.Entregador = models.Usuario{Nome: "Maria Oliveira", Email: "maria@teste.com", SenhaHash: "x", Ativo: true, TipoUsuarioID: f.TipoEntregador.ID}
	require.NoError(t, db.Create(&f.Admin).Error)
	require.NoError(t, db.Create(&f.Cliente).Error)
	require.NoError(t, db.Create(&f.Entregador).Error)

	f.Condominio = models.Condominio{Nome: "Residencial Teste", Endereco: "Av. Principal, 1000", Cidade: "Recife", Estado: "PE"}
	require.NoError(t, db.Create(&f.Condominio).Error)

	f.Armario = models.Armario{Identificacao: "ARM-001", Localizacao: "Hall de entrada", Ativo: true, CondominioID: f.Condominio.ID}
	require.NoError(t, db.Create(&f.Armario).Error)

	f.Compartimento = models.Compartimento{Numero: "A1", Tamanho: "P", CodigoAcesso: "123456", ArmarioID: f.Armario.ID}
	require.NoError(t, db.Create(&f.Compartimento).Error)

	return f
}

func reloadCompartimento(t *testing.T, db *gorm.DB, f *fixtures) models.Compartimento {
	t.Helper()
	var compartimento models.Compartimento
	require.NoError(t, db.First(&compartimento, "id = ?", f.Compartimento.ID).Error)
	return compartimento
}
