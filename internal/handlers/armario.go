package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// ArmarioHandler manages locker endpoints.
type ArmarioHandler struct {
	armarios *services.ArmarioService
}

// NewArmarioHandler constructs an ArmarioHandler.
func NewArmarioHandler(armarios *services.ArmarioService) *ArmarioHandler {
	return &ArmarioHandler{armarios: armarios}
}

func (h *ArmarioHandler) Create(c *fiber.Ctx) error {
	var payload models.Armario
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	armario, err := h.armarios.Create(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(armario)
}

func (h *ArmarioHandler) List(c *fiber.Ctx) error {
	armarios, err := h.armarios.List()
	if err != nil {
		return err
	}
	return c.JSON(armarios)
}

func (h *ArmarioHandler) ListByCondominio(c *fiber.Ctx) error {
	condominioID, err := parseUUID(c, "condominioId")
	if err != nil {
		return err
	}

	armarios, err := h.armarios.ListByCondominio(condominioID)
	if err != nil {
		return err
	}
	return c.JSON(armarios)
}

func (h *ArmarioHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	armario, err := h.armarios.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(armario)
}

func (h *ArmarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var payload models.Armario
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	armario, err := h.armarios.Update(id, &payload)
	if err != nil {
		return err
	}
	return c.JSON(armario)
}

func (h *ArmarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.armarios.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
