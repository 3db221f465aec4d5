package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func TestTipoUsuarioCreate(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	svc := NewTipoUsuarioService(db)

	tipo, err := svc.Create(&models.TipoUsuario{Nome: "Funcionário", Descricao: "Funcionário do condomínio"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tipo.ID)

	_, err = svc.Create(&models.TipoUsuario{Nome: "Funcionário"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	_, err = svc.Create(&models.TipoUsuario{})
	assert.ErrorIs(t, err, errs.ErrBadRequest)
}

func TestTipoUsuarioDeleteComUsuarios(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewTipoUsuarioService(db)

	err := svc.Delete(f.TipoCliente.ID)
	assert.ErrorIs(t, err, errs.ErrRelatedResource)

	_, err = svc.Get(f.TipoCliente.ID)
	assert.NoError(t, err)
}

func TestTipoUsuarioDelete(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	svc := NewTipoUsuarioService(db)

	tipo, err := svc.Create(&models.TipoUsuario{Nome: "Temporário"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(tipo.ID))
	_, err = svc.Get(tipo.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTipoUsuarioUpdate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewTipoUsuarioService(db)

	atualizado, err := svc.Update(f.TipoCliente.ID, &models.TipoUsuario{Descricao: "Morador do condomínio"})
	require.NoError(t, err)
	assert.Equal(t, "Morador do condomínio", atualizado.Descricao)
	assert.Equal(t, "Cliente", atualizado.Nome)

	_, err = svc.Update(f.TipoCliente.ID, &models.TipoUsuario{Nome: "Administrador"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}
