package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sammblanc/armariointeligente2.0/internal/errs"
)

type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// ErrorHandler translates the service error taxonomy and fiber errors into
// the structured error body every failure response carries.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	title := "Erro interno do servidor"

	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, errs.ErrNotFound):
		status = fiber.StatusNotFound
		title = "Não encontrado"
	case errors.Is(err, errs.ErrAlreadyExists), errors.Is(err, errs.ErrRelatedResource):
		status = fiber.StatusConflict
		title = "Conflito"
	case errors.Is(err, errs.ErrBadRequest):
		status = fiber.StatusBadRequest
		title = "Requisição inválida"
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		title = fiberErr.Message
	}

	return c.Status(status).JSON(errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     title,
		Message:   err.Error(),
		Path:      c.Path(),
	})
}

// parseUUID reads a UUID path parameter.
func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}
