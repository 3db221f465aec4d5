package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Compartimento", "id", 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Compartimento")
	assert.Contains(t, err.Error(), "42")

	var target *NotFoundError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "id", target.Field)
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("Entrega", "código de rastreio", "BR1")

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "BR1")
}

func TestBadRequestError(t *testing.T) {
	err := NewBadRequestError("data de início não pode ser no passado")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "data de início não pode ser no passado", err.Error())
}

func TestRelatedResourceError(t *testing.T) {
	err := NewRelatedResourceError("armário", "compartimentos")

	assert.ErrorIs(t, err, ErrRelatedResource)
	assert.Contains(t, err.Error(), "armário")
	assert.Contains(t, err.Error(), "compartimentos")
}
