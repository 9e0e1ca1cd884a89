package handlers

import (
	"vinylstore/internal/middleware"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the log files to administrators.
type AdminHandler struct {
	adminService *services.AdminService
	authService  *services.AuthService
	userRepo     repositories.UserRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService, userRepo repositories.UserRepository) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
		userRepo:     userRepo,
	}
}

// RegisterRoutes registers the admin routes. All of them require an admin
// session; the role is re-checked against the database on every request.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin",
		middleware.AuthRequired(h.authService),
		middleware.AdminRequired(h.userRepo),
	)

	adminRoutes.Get("/logs/system", h.HandleReadSystemLogs)
	adminRoutes.Delete("/logs/system", h.HandleClearSystemLogs)
	adminRoutes.Get("/logs/controller", h.HandleReadControllerLogs)
	adminRoutes.Delete("/logs/controller", h.HandleClearControllerLogs)
}

// HandleReadSystemLogs returns the raw system log contents.
func (h *AdminHandler) HandleReadSystemLogs(c *fiber.Ctx) error {
	contents, err := h.adminService.ReadSystemLogs()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to read system logs")
	}
	return success(c, fiber.StatusOK, "", contents)
}

// HandleClearSystemLogs truncates the system log file.
func (h *AdminHandler) HandleClearSystemLogs(c *fiber.Ctx) error {
	if err := h.adminService.ClearSystemLogs(); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to clear system logs")
	}
	return success(c, fiber.StatusOK, "System logs cleared", nil)
}

// HandleReadControllerLogs returns the raw controller log contents.
func (h *AdminHandler) HandleReadControllerLogs(c *fiber.Ctx) error {
	contents, err := h.adminService.ReadControllerLogs()
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to read controller logs")
	}
	return success(c, fiber.StatusOK, "", contents)
}

// HandleClearControllerLogs truncates the controller log file.
func (h *AdminHandler) HandleClearControllerLogs(c *fiber.Ctx) error {
	if err := h.adminService.ClearControllerLogs(); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Failed to clear controller logs")
	}
	return success(c, fiber.StatusOK, "Controller logs cleared", nil)
}
