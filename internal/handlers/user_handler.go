package handlers

import (
	"vinylstore/internal/middleware"
	"vinylstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for the authenticated user's profile.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// RegisterRoutes registers the profile routes. All of them require a session.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user", middleware.AuthRequired(h.authService))

	userRoutes.Get("/profile", h.HandleGetProfile)
	userRoutes.Patch("/profile", h.HandleUpdateProfile)
	userRoutes.Delete("/profile", h.HandleDeleteProfile)
}

// HandleGetProfile returns the caller's profile with reviews and purchased
// vinyls loaded.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)

	user, err := h.userService.FindByID(userID)
	if err != nil {
		return mapError(c, err, "Failed to retrieve profile")
	}
	return success(c, fiber.StatusOK, "", user)
}

// HandleUpdateProfile applies a partial update to the caller's profile.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID, _ := c.Locals(middleware.LocalUserID).(string)
	user, err := h.userService.UpdateByID(userID, input)
	if err != nil {
		return mapError(c, err, "Failed to update profile")
	}
	return success(c, fiber.StatusOK, "Profile updated successfully", user)
}

// HandleDeleteProfile deletes the caller's account and clears the session.
func (h *UserHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)

	if err := h.userService.RemoveByID(userID); err != nil {
		return mapError(c, err, "Failed to delete account")
	}
	c.ClearCookie(middleware.SessionCookie)
	return c.SendStatus(fiber.StatusNoContent)
}
