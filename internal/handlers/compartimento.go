package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// CompartimentoHandler manages compartment endpoints.
type CompartimentoHandler struct {
	compartimentos *services.CompartimentoService
}

// NewCompartimentoHandler constructs a CompartimentoHandler.
func NewCompartimentoHandler(compartimentos *services.CompartimentoService) *CompartimentoHandler {
	return &CompartimentoHandler{compartimentos: compartimentos}
}

func (h *CompartimentoHandler) Create(c *fiber.Ctx) error {
	var payload models.Compartimento
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	compartimento, err := h.compartimentos.Create(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(compartimento)
}

func (h *CompartimentoHandler) List(c *fiber.Ctx) error {
	compartimentos, err := h.compartimentos.List()
	if err != nil {
		return err
	}
	return c.JSON(compartimentos)
}

func (h *CompartimentoHandler) ListByArmario(c *fiber.Ctx) error {
	armarioID, err := parseUUID(c, "armarioId")
	if err != nil {
		return err
	}

	compartimentos, err := h.compartimentos.ListByArmario(armarioID)
	if err != nil {
		return err
	}
	return c.JSON(compartimentos)
}

// ListByStatus filters by the ocupado query parameter.
func (h *CompartimentoHandler) ListByStatus(c *fiber.Ctx) error {
	ocupado := c.QueryBool("ocupado", false)

	compartimentos, err := h.compartimentos.ListByOcupado(ocupado)
	if err != nil {
		return err
	}
	return c.JSON(compartimentos)
}

func (h *CompartimentoHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	compartimento, err := h.compartimentos.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(compartimento)
}

func (h *CompartimentoHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var payload models.Compartimento
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	compartimento, err := h.compartimentos.Update(id, &payload)
	if err != nil {
		return err
	}
	return c.JSON(compartimento)
}

type statusRequest struct {
	Ocupado bool `json:"ocupado"`
}

// UpdateStatus sets the occupancy flag directly.
func (h *CompartimentoHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	compartimento, err := h.compartimentos.SetOccupied(id, req.Ocupado)
	if err != nil {
		return err
	}
	return c.JSON(compartimento)
}

// RegenerateCode rotates the compartment's access code.
func (h *CompartimentoHandler) RegenerateCode(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	compartimento, err := h.compartimentos.RegenerateAccessCode(id)
	if err != nil {
		return err
	}
	return c.JSON(compartimento)
}

func (h *CompartimentoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.compartimentos.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
