package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// CondominioHandler manages condominium endpoints.
type CondominioHandler struct {
	condominios *services.CondominioService
}

// NewCondominioHandler constructs a CondominioHandler.
func NewCondominioHandler(condominios *services.CondominioService) *CondominioHandler {
	return &CondominioHandler{condominios: condominios}
}

func (h *CondominioHandler) Create(c *fiber.Ctx) error {
	var payload models.Condominio
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	condominio, err := h.condominios.Create(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(condominio)
}

func (h *CondominioHandler) List(c *fiber.Ctx) error {
	condominios, err := h.condominios.List()
	if err != nil {
		return err
	}
	return c.JSON(condominios)
}

func (h *CondominioHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	condominio, err := h.condominios.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(condominio)
}

func (h *CondominioHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var payload models.Condominio
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	condominio, err := h.condominios.Update(id, &payload)
	if err != nil {
		return err
	}
	return c.JSON(condominio)
}

func (h *CondominioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.condominios.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
