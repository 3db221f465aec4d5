package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func TestCondominioCreate(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	svc := NewCondominioService(db)

	condominio, err := svc.Create(&models.Condominio{Nome: "Residencial Sul", Endereco: "Rua C, 300"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, condominio.ID)

	t.Run("nome vazio", func(t *testing.T) {
		_, err := svc.Create(&models.Condominio{Endereco: "Rua D, 4"})
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("endereco vazio", func(t *testing.T) {
		_, err := svc.Create(&models.Condominio{Nome: "Sem Endereço"})
		assert.ErrorIs(t, err, errs.ErrBadRequest)
	})

	t.Run("nome duplicado", func(t *testing.T) {
		_, err := svc.Create(&models.Condominio{Nome: "Residencial Sul", Endereco: "Outra rua"})
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})
}

func TestCondominioUpdate(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewCondominioService(db)

	atualizado, err := svc.Update(f.Condominio.ID, &models.Condominio{Telefone: "(81) 99999-0000"})
	require.NoError(t, err)
	assert.Equal(t, "(81) 99999-0000", atualizado.Telefone)
	assert.Equal(t, f.Condominio.Nome, atualizado.Nome)

	outro, err := svc.Create(&models.Condominio{Nome: "Residencial Leste", Endereco: "Rua E, 5"})
	require.NoError(t, err)

	_, err = svc.Update(outro.ID, &models.Condominio{Nome: f.Condominio.Nome})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	_, err = svc.Update(uuid.New(), &models.Condominio{Nome: "Qualquer"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCondominioDeleteComArmarios(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	svc := NewCondominioService(db)

	err := svc.Delete(f.Condominio.ID)
	assert.ErrorIs(t, err, errs.ErrRelatedResource)

	_, err = svc.Get(f.Condominio.ID)
	assert.NoError(t, err)
}

func TestCondominioDelete(t *testing.T) {
	db := newTestDB(t)
	seedFixtures(t, db)
	svc := NewCondominioService(db)

	condominio, err := svc.Create(&models.Condominio{Nome: "Residencial Vazio", Endereco: "Rua F, 6"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(condominio.ID))
	_, err = svc.Get(condominio.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
