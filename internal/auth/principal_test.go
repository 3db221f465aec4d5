package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func TestPrincipalHasRole(t *testing.T) {
	p := Principal{UserID: uuid.New(), Role: models.RoleCliente}

	assert.True(t, p.HasRole(models.RoleCliente))
	assert.True(t, p.HasRole(models.RoleAdministrador, models.RoleCliente))
	assert.False(t, p.HasRole(models.RoleAdministrador))
	assert.False(t, p.HasRole())
}

func TestPrincipalIsUser(t *testing.T) {
	id := uuid.New()
	p := Principal{UserID: id, Role: models.RoleCliente}

	assert.True(t, p.IsUser(id))
	assert.False(t, p.IsUser(uuid.New()))

	// A zero principal never matches, not even against the nil ID.
	var zero Principal
	assert.False(t, zero.IsUser(uuid.Nil))
}
