package middleware

import (
	"errors"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates a route to admin users. It re-fetches the user row on
// every request rather than trusting a role claim in the token, so a role
// change takes effect immediately without re-login.
func AdminRequired(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(LocalUserID).(string)
		if userID == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"statusCode": fiber.StatusForbidden,
				"message":    "Access restricted to administrators",
			})
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"statusCode": fiber.StatusForbidden,
					"message":    "User not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"statusCode": fiber.StatusInternalServerError,
				"message":    "Failed to verify role",
			})
		}

		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"statusCode": fiber.StatusForbidden,
				"message":    "Access restricted to administrators",
			})
		}

		return c.Next()
	}
}
