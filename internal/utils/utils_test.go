package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, CheckPassword(hash, "senha123"))
	assert.False(t, CheckPassword(hash, "outra"))
	assert.False(t, CheckPassword("", "senha123"))
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken("segredo", userID, models.RoleCliente, time.Hour)
	require.NoError(t, err)

	parsedID, role, err := ParseToken("segredo", token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, models.RoleCliente, role)
}

func TestParseTokenSegredoErrado(t *testing.T) {
	token, err := GenerateToken("segredo", uuid.New(), models.RoleAdministrador, time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken("outro-segredo", token)
	assert.Error(t, err)
}

func TestParseTokenExpirado(t *testing.T) {
	token, err := GenerateToken("segredo", uuid.New(), models.RoleCliente, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken("segredo", token)
	assert.Error(t, err)
}

func TestParseTokenInvalido(t *testing.T) {
	_, _, err := ParseToken("segredo", "nem-um-token")
	assert.Error(t, err)
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		query string
		want  Pagination
	}{
		{"", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"?page=3&limit=10", Pagination{Page: 3, Limit: 10, Offset: 20}},
		{"?page=0&limit=-5", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"?page=abc", Pagination{Page: 1, Limit: 20, Offset: 0}},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+tt.query, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, tt.want, got, tt.query)
	}
}
