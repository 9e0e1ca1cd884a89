package handlers

import (
	"errors"
	"fmt"

	"vinylstore/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// success writes the standard success envelope {statusCode, message?, data?}.
func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{"statusCode": status}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// fail writes the standard error envelope {statusCode, message}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
	})
}

// mapError translates a service error into an HTTP response. Sentinel errors
// keep their message; anything else collapses to the fallback message so
// internal detail stays out of client responses.
func mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, fallback)
	}
}

// validationFailed writes a field-by-field validation error response.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Validation failed")
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"statusCode": fiber.StatusBadRequest,
		"message":    "Validation failed",
		"errors":     messages,
	})
}
