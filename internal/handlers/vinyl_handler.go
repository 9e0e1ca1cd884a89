package handlers

import (
	"vinylstore/internal/middleware"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateVinylRequest is the payload for creating a vinyl record.
type CreateVinylRequest struct {
	Name        string  `json:"name" validate:"required"`
	Artist      string  `json:"artist" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

// VinylHandler handles HTTP requests for the vinyl catalog.
type VinylHandler struct {
	vinylService *services.VinylService
	authService  *services.AuthService
	userRepo     repositories.UserRepository
	validate     *validator.Validate
}

// NewVinylHandler creates a new VinylHandler.
func NewVinylHandler(vinylService *services.VinylService, authService *services.AuthService, userRepo repositories.UserRepository) *VinylHandler {
	return &VinylHandler{
		vinylService: vinylService,
		authService:  authService,
		userRepo:     userRepo,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the vinyl routes. Static paths are registered
// before the /:id parameter route so they are not captured by it.
func (h *VinylHandler) RegisterRoutes(router fiber.Router) {
	vinylRoutes := router.Group("/vinyl")

	vinylRoutes.Get("/public/all", h.HandleGetFullList)
	vinylRoutes.Get("/all", middleware.AuthRequired(h.authService), h.HandleFindAll)

	admin := []fiber.Handler{middleware.AuthRequired(h.authService), middleware.AdminRequired(h.userRepo)}
	vinylRoutes.Post("/create", append(admin, h.HandleCreate)...)
	vinylRoutes.Get("/:id", h.HandleFindOne)
	vinylRoutes.Patch("/:id", append(admin, h.HandleUpdate)...)
	vinylRoutes.Delete("/:id", append(admin, h.HandleDelete)...)
}

// HandleGetFullList returns the entire catalog without pagination.
func (h *VinylHandler) HandleGetFullList(c *fiber.Ctx) error {
	vinyls, err := h.vinylService.GetFullList()
	if err != nil {
		return mapError(c, err, "Failed to retrieve vinyls")
	}
	return success(c, fiber.StatusOK, "", vinyls)
}

// HandleFindAll returns one page of the catalog, filtered by name and artist
// and sorted by the requested column.
func (h *VinylHandler) HandleFindAll(c *fiber.Ctx) error {
	page := c.QueryInt("page", services.DefaultPage)
	pageSize := c.QueryInt("pageSize", services.DefaultPageSize)

	result, err := h.vinylService.FindAll(page, pageSize, c.Query("name"), c.Query("artist"), c.Query("sortBy"))
	if err != nil {
		return mapError(c, err, "Failed to retrieve vinyls")
	}
	return success(c, fiber.StatusOK, "", result)
}

// HandleFindOne returns a single vinyl with its reviews and owner loaded.
func (h *VinylHandler) HandleFindOne(c *fiber.Ctx) error {
	vinyl, err := h.vinylService.FindOne(c.Params("id"))
	if err != nil {
		return mapError(c, err, "Failed to retrieve vinyl")
	}
	return success(c, fiber.StatusOK, "", vinyl)
}

// HandleCreate creates a vinyl record owned by the authenticated admin.
func (h *VinylHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateVinylRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	creatorID, _ := c.Locals(middleware.LocalUserID).(string)
	vinyl := &models.Vinyl{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Artist:      req.Artist,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	if creatorID != "" {
		vinyl.UserID = &creatorID
	}

	if err := h.vinylService.Create(vinyl); err != nil {
		return mapError(c, err, "Failed to create vinyl")
	}
	return success(c, fiber.StatusCreated, "Vinyl created successfully", vinyl)
}

// HandleUpdate applies a partial update to a vinyl.
func (h *VinylHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.UpdateVinylInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	vinyl, err := h.vinylService.Update(c.Params("id"), input)
	if err != nil {
		return mapError(c, err, "Failed to update vinyl")
	}
	return success(c, fiber.StatusOK, "Vinyl updated successfully", vinyl)
}

// HandleDelete removes a vinyl from the catalog.
func (h *VinylHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.vinylService.Remove(c.Params("id")); err != nil {
		return mapError(c, err, "Failed to delete vinyl")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
