package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sammblanc/armariointeligente2.0/internal/config"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/services"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	usuarios *services.UsuarioService
	cfg      *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(usuarios *services.UsuarioService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{usuarios: usuarios, cfg: cfg}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login authenticates a user by email and password and returns a JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	usuario, err := h.usuarios.Authenticate(req.Email, req.Senha)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "credenciais inválidas")
	}

	role, ok := models.RoleFromTipoUsuario(usuario.TipoUsuario.Nome)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "tipo de usuário desconhecido")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, usuario.ID, role, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "falha ao gerar token")
	}

	return c.JSON(fiber.Map{
		"token":       token,
		"tipo":        "Bearer",
		"id":          usuario.ID,
		"nome":        usuario.Nome,
		"email":       usuario.Email,
		"tipoUsuario": role,
	})
}
