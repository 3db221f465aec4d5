package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

func TestUsuarioCreate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	usuario, err := svc.Create(&models.Usuario{
		Nome:          "Ana Souza",
		Email:         "ana@teste.com",
		TipoUsuarioID: f.TipoCliente.ID,
	}, "senha123")
	require.NoError(t, err)

	assert.True(t, usuario.Ativo)
	assert.NotEqual(t, "senha123", usuario.SenhaHash)
	assert.True(t, utils.CheckPassword(usuario.SenhaHash, "senha123"))
	require.NotNil(t, usuario.TipoUsuario)
	assert.Equal(t, "Cliente", usuario.TipoUsuario.Nome)
}

func TestUsuarioCreateValidations(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	t.Run("email vazio", func(t *testing.T) {
		_, err := svc.Create(&models.Usuario{Nome: "X", TipoUsuarioID: f.TipoCliente.ID}, "senha123")
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("senha vazia", func(t *testing.T) {
		_, err := svc.Create(&models.Usuario{Email: "x@teste.com", TipoUsuarioID: f.TipoCliente.ID}, "")
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("email duplicado", func(t *testing.T) {
		_, err := svc.Create(&models.Usuario{Email: f.Cliente.Email, TipoUsuarioID: f.TipoCliente.ID}, "senha123")
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("tipo inexistente", func(t *testing.T) {
		_, err := svc.Create(&models.Usuario{Email: "y@teste.com", TipoUsuarioID: uuid.New()}, "senha123")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestUsuarioAuthenticate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	_, err := svc.Create(&models.Usuario{Nome: "Ana", Email: "login@teste.com", TipoUsuarioID: f.TipoCliente.ID}, "senha123")
	require.NoError(t, err)

	usuario, err := svc.Authenticate("login@teste.com", "senha123")
	require.NoError(t, err)
	require.NotNil(t, usuario.TipoUsuario)
	assert.Equal(t, "Cliente", usuario.TipoUsuario.Nome)

	_, err = svc.Authenticate("login@teste.com", "errada")
	assert.ErrorIs(t, err, errs.ErrBadRequest)

	_, err = svc.Authenticate("ninguem@teste.com", "senha123")
	assert.ErrorIs(t, err, errs.ErrBadRequest)
}

func TestUsuarioAuthenticateDesativado(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	usuario, err := svc.Create(&models.Usuario{Nome: "Ana", Email: "inativa@teste.com", TipoUsuarioID: f.TipoCliente.ID}, "senha123")
	require.NoError(t, err)

	_, err = svc.SetAtivo(usuario.ID, false)
	require.NoError(t, err)

	_, err = svc.Authenticate("inativa@teste.com", "senha123")
	assert.ErrorIs(t, err, errs.ErrBadRequest)

	_, err = svc.SetAtivo(usuario.ID, true)
	require.NoError(t, err)

	_, err = svc.Authenticate("inativa@teste.com", "senha123")
	assert.NoError(t, err)
}

func TestUsuarioUpdate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	atualizado, err := svc.Update(f.Cliente.ID, &models.Usuario{Telefone: "(81) 98888-0000"}, "")
	require.NoError(t, err)
	assert.Equal(t, "(81) 98888-0000", atualizado.Telefone)
	assert.Equal(t, f.Cliente.Email, atualizado.Email)

	_, err = svc.Update(f.Cliente.ID, &models.Usuario{Email: f.Admin.Email}, "")
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	atualizado, err = svc.Update(f.Cliente.ID, &models.Usuario{}, "novasenha")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(atualizado.SenhaHash, "novasenha"))
}

func TestUsuarioListAtivos(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	_, err := svc.SetAtivo(f.Cliente.ID, false)
	require.NoError(t, err)

	todos, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	ativos, err := svc.ListAtivos()
	require.NoError(t, err)
	assert.Len(t, ativos, 2)
	for _, u := range ativos {
		assert.NotEqual(t, f.Cliente.ID, u.ID)
	}
}

func TestUsuarioDelete(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewUsuarioService(db)

	require.NoError(t, svc.Delete(f.Cliente.ID))

	_, err := svc.Get(f.Cliente.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	err = svc.Delete(uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
