package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/middleware"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// ReservaHandler manages reservation endpoints.
type ReservaHandler struct {
	reservas *services.ReservaService
}

// NewReservaHandler constructs a ReservaHandler.
func NewReservaHandler(reservas *services.ReservaService) *ReservaHandler {
	return &ReservaHandler{reservas: reservas}
}

func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	var payload models.Reserva
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	reserva, err := h.reservas.Create(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(reserva)
}

// Cancel cancels a reservation. Only administrators and the reservation's
// owner may cancel.
func (h *ReservaHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	reserva, err := h.reservas.Get(id)
	if err != nil {
		return err
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if !principal.HasRole(models.RoleAdministrador) && !principal.IsUser(reserva.UsuarioID) {
		return fiber.NewError(fiber.StatusForbidden, "acesso negado")
	}

	reserva, err = h.reservas.Cancel(id)
	if err != nil {
		return err
	}
	return c.JSON(reserva)
}

func (h *ReservaHandler) Complete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	reserva, err := h.reservas.Complete(id)
	if err != nil {
		return err
	}
	return c.JSON(reserva)
}

func (h *ReservaHandler) List(c *fiber.Ctx) error {
	reservas, err := h.reservas.List(utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(reservas)
}

func (h *ReservaHandler) ListByCompartimento(c *fiber.Ctx) error {
	compartimentoID, err := parseUUID(c, "compartimentoId")
	if err != nil {
		return err
	}

	reservas, err := h.reservas.ListByCompartimento(compartimentoID)
	if err != nil {
		return err
	}
	return c.JSON(reservas)
}

func (h *ReservaHandler) ListByUsuario(c *fiber.Ctx) error {
	usuarioID, err := parseUUID(c, "usuarioId")
	if err != nil {
		return err
	}

	reservas, err := h.reservas.ListByUsuario(usuarioID)
	if err != nil {
		return err
	}
	return c.JSON(reservas)
}

func (h *ReservaHandler) ListByStatus(c *fiber.Ctx) error {
	status, ok := models.ParseStatusReserva(c.Params("status"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "status inválido")
	}

	reservas, err := h.reservas.ListByStatus(status)
	if err != nil {
		return err
	}
	return c.JSON(reservas)
}

func (h *ReservaHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	reserva, err := h.reservas.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(reserva)
}

// ListByPeriodo filters by the inicio and fim query parameters (RFC 3339).
func (h *ReservaHandler) ListByPeriodo(c *fiber.Ctx) error {
	inicio, err := time.Parse(time.RFC3339, c.Query("inicio"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "data de início inválida")
	}
	fim, err := time.Parse(time.RFC3339, c.Query("fim"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "data de fim inválida")
	}

	reservas, err := h.reservas.ListByPeriodo(inicio, fim)
	if err != nil {
		return err
	}
	return c.JSON(reservas)
}
