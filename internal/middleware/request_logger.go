package middleware

import (
	"log/slog"
	"time"

	"vinylstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger writes one controller-log line per request: method, path,
// status, duration, and the email from the session cookie ("Guest" when the
// request is unauthenticated or the token is invalid).
func RequestLogger(authService *services.AuthService, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		email := "Guest"
		if cookie := c.Cookies(SessionCookie); cookie != "" {
			if claims, err := authService.ValidateToken(cookie); err == nil {
				email = claims.Email
			}
		}

		err := c.Next()

		logger.Info("request",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", time.Since(start).Milliseconds(),
			"user", email,
		)
		return err
	}
}
