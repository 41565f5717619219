package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"classico-be/internal/apperr"
)

// respondError maps the error taxonomy onto HTTP statuses with the stable
// reason string as the message. Anything unrecognized becomes a bare 500;
// internal detail never reaches the client.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, apperr.ErrUnsupportedMedia):
		status, message = fiber.StatusUnsupportedMediaType, apperr.ErrUnsupportedMedia.Error()
	case errors.Is(err, apperr.ErrUnsafeArchiveEntry):
		status, message = fiber.StatusBadRequest, apperr.ErrUnsafeArchiveEntry.Error()
	case errors.Is(err, apperr.ErrEmailTaken):
		status, message = fiber.StatusConflict, apperr.ErrEmailTaken.Error()
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, apperr.ErrInvalidCredentials.Error()
	case errors.Is(err, apperr.ErrSessionNotFound):
		status, message = fiber.StatusNotFound, apperr.ErrSessionNotFound.Error()
	case errors.Is(err, apperr.ErrConnection):
		status, message = fiber.StatusServiceUnavailable, apperr.ErrConnection.Error()
	case errors.As(err, &validationErrs):
		status, message = fiber.StatusBadRequest, err.Error()
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": message,
	})
}
