package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// TipoUsuarioHandler manages user type endpoints.
type TipoUsuarioHandler struct {
	tipos *services.TipoUsuarioService
}

// NewTipoUsuarioHandler constructs a TipoUsuarioHandler.
func NewTipoUsuarioHandler(tipos *services.TipoUsuarioService) *TipoUsuarioHandler {
	return &TipoUsuarioHandler{tipos: tipos}
}

func (h *TipoUsuarioHandler) Create(c *fiber.Ctx) error {
	var payload models.TipoUsuario
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	tipo, err := h.tipos.Create(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tipo)
}

func (h *TipoUsuarioHandler) List(c *fiber.Ctx) error {
	tipos, err := h.tipos.List()
	if err != nil {
		return err
	}
	return c.JSON(tipos)
}

func (h *TipoUsuarioHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	tipo, err := h.tipos.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(tipo)
}

func (h *TipoUsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var payload models.TipoUsuario
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	tipo, err := h.tipos.Update(id, &payload)
	if err != nil {
		return err
	}
	return c.JSON(tipo)
}

func (h *TipoUsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.tipos.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
