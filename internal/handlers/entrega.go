package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/middleware"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// EntregaHandler manages delivery endpoints.
type EntregaHandler struct {
	entregas *services.EntregaService
}

// NewEntregaHandler constructs an EntregaHandler.
func NewEntregaHandler(entregas *services.EntregaService) *EntregaHandler {
	return &EntregaHandler{entregas: entregas}
}

func (h *EntregaHandler) Register(c *fiber.Ctx) error {
	var payload models.Entrega
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	entrega, err := h.entregas.Register(&payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entrega)
}

// RegisterPickup processes a pickup using the codigoAcesso query parameter.
func (h *EntregaHandler) RegisterPickup(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	codigoAcesso := c.Query("codigoAcesso")
	if codigoAcesso == "" {
		return fiber.NewError(fiber.StatusBadRequest, "código de acesso é obrigatório")
	}

	entrega, err := h.entregas.RegisterPickup(id, codigoAcesso)
	if err != nil {
		return err
	}
	return c.JSON(entrega)
}

func (h *EntregaHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	entrega, err := h.entregas.Cancel(id)
	if err != nil {
		return err
	}
	return c.JSON(entrega)
}

func (h *EntregaHandler) List(c *fiber.Ctx) error {
	entregas, err := h.entregas.List(utils.ParsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}

func (h *EntregaHandler) ListByCompartimento(c *fiber.Ctx) error {
	compartimentoID, err := parseUUID(c, "compartimentoId")
	if err != nil {
		return err
	}

	entregas, err := h.entregas.ListByCompartimento(compartimentoID)
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}

func (h *EntregaHandler) ListByEntregador(c *fiber.Ctx) error {
	entregadorID, err := parseUUID(c, "entregadorId")
	if err != nil {
		return err
	}

	entregas, err := h.entregas.ListByEntregador(entregadorID)
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}

func (h *EntregaHandler) ListByDestinatario(c *fiber.Ctx) error {
	destinatarioID, err := parseUUID(c, "destinatarioId")
	if err != nil {
		return err
	}

	entregas, err := h.entregas.ListByDestinatario(destinatarioID)
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}

func (h *EntregaHandler) ListByStatus(c *fiber.Ctx) error {
	status, ok := models.ParseStatusEntrega(c.Params("status"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "status inválido")
	}

	entregas, err := h.entregas.ListByStatus(status)
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}

// Get returns a delivery. Recipients may view their own deliveries;
// everyone else needs the administrator or courier role.
func (h *EntregaHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	entrega, err := h.entregas.Get(id)
	if err != nil {
		return err
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if !principal.HasRole(models.RoleAdministrador, models.RoleEntregador) &&
		!principal.IsUser(entrega.DestinatarioID) {
		return fiber.NewError(fiber.StatusForbidden, "acesso negado")
	}

	return c.JSON(entrega)
}

func (h *EntregaHandler) GetByCodigoRastreio(c *fiber.Ctx) error {
	entrega, err := h.entregas.GetByCodigoRastreio(c.Params("codigoRastreio"))
	if err != nil {
		return err
	}
	return c.JSON(entrega)
}

// ListByPeriodo filters by the inicio and fim query parameters (RFC 3339).
func (h *EntregaHandler) ListByPeriodo(c *fiber.Ctx) error {
	inicio, err := time.Parse(time.RFC3339, c.Query("inicio"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "data de início inválida")
	}
	fim, err := time.Parse(time.RFC3339, c.Query("fim"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "data de fim inválida")
	}

	entregas, err := h.entregas.ListByPeriodo(inicio, fim)
	if err != nil {
		return err
	}
	return c.JSON(entregas)
}
