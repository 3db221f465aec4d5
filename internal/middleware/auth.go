package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sammblanc/armariointeligente2.0/internal/auth"
	"github.com/sammblanc/armariointeligente2.0/internal/config"
	"github.com/sammblanc/armariointeligente2.0/internal/models"
	"github.com/sammblanc/armariointeligente2.0/internal/utils"
)

const principalContextKey = "currentPrincipal"

// Authenticate validates JWT tokens and loads the principal into context.
func Authenticate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, role, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(principalContextKey, auth.Principal{UserID: userID, Role: role})
		return c.Next()
	}
}

// RequireRoles allows the request only for principals holding one of the roles.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if !principal.HasRole(roles...) {
			return fiber.NewError(fiber.StatusForbidden, "acesso negado")
		}
		return c.Next()
	}
}

// RequireRolesOrSelf additionally allows the principal when the path parameter
// names their own user ID.
func RequireRolesOrSelf(param string, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if principal.HasRole(roles...) {
			return c.Next()
		}
		if id, err := uuid.Parse(c.Params(param)); err == nil && principal.IsUser(id) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "acesso negado")
	}
}

// GetPrincipal extracts the authenticated principal from context.
func GetPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	value := c.Locals(principalContextKey)
	if value == nil {
		return auth.Principal{}, false
	}

	if p, ok := value.(auth.Principal); ok {
		return p, true
	}

	return auth.Principal{}, false
}
