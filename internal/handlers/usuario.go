package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
)

// UsuarioHandler manages user account endpoints.
type UsuarioHandler struct {
	usuarios *services.UsuarioService
}

// NewUsuarioHandler constructs a UsuarioHandler.
func NewUsuarioHandler(usuarios *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios}
}

type usuarioRequest struct {
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	Senha         string    `json:"senha"`
	Telefone      string    `json:"telefone"`
	TipoUsuarioID uuid.UUID `json:"tipoUsuarioId"`
}

func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var req usuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	usuario, err := h.usuarios.Create(&models.Usuario{
		Nome:          req.Nome,
		Email:         req.Email,
		Telefone:      req.Telefone,
		TipoUsuarioID: req.TipoUsuarioID,
	}, req.Senha)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.List()
	if err != nil {
		return err
	}
	return c.JSON(usuarios)
}

func (h *UsuarioHandler) ListAtivos(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.ListAtivos()
	if err != nil {
		return err
	}
	return c.JSON(usuarios)
}

func (h *UsuarioHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	usuario, err := h.usuarios.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(usuario)
}

func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	var req usuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	usuario, err := h.usuarios.Update(id, &models.Usuario{
		Nome:          req.Nome,
		Email:         req.Email,
		Telefone:      req.Telefone,
		TipoUsuarioID: req.TipoUsuarioID,
	}, req.Senha)
	if err != nil {
		return err
	}
	return c.JSON(usuario)
}

func (h *UsuarioHandler) Desativar(c *fiber.Ctx) error {
	return h.setAtivo(c, false)
}

func (h *UsuarioHandler) Ativar(c *fiber.Ctx) error {
	return h.setAtivo(c, true)
}

func (h *UsuarioHandler) setAtivo(c *fiber.Ctx, ativo bool) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	usuario, err := h.usuarios.SetAtivo(id, ativo)
	if err != nil {
		return err
	}
	return c.JSON(usuario)
}

func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.usuarios.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
