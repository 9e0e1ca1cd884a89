package handlers

import (
	"vinylstore/internal/middleware"
	"vinylstore/internal/repositories"
	"vinylstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for vinyl reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	authService   *services.AuthService
	userRepo      repositories.UserRepository
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService, authService *services.AuthService, userRepo repositories.UserRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
		userRepo:      userRepo,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")

	reviewRoutes.Post("/create", middleware.AuthRequired(h.authService), h.HandleCreate)
	reviewRoutes.Get("/vinyl/:vinylId", h.HandleGetByVinyl)
	reviewRoutes.Delete("/:reviewId",
		middleware.AuthRequired(h.authService),
		middleware.AdminRequired(h.userRepo),
		h.HandleDelete,
	)
}

// HandleCreate creates a review owned by the authenticated user.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CreateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	userID, _ := c.Locals(middleware.LocalUserID).(string)
	review, err := h.reviewService.CreateReview(input, userID)
	if err != nil {
		return mapError(c, err, "Failed to create review")
	}
	return success(c, fiber.StatusCreated, "Review created successfully", review)
}

// HandleGetByVinyl returns one page of reviews for a vinyl.
func (h *ReviewHandler) HandleGetByVinyl(c *fiber.Ctx) error {
	page := c.QueryInt("page", services.DefaultPage)
	pageSize := c.QueryInt("pageSize", services.DefaultPageSize)

	result, err := h.reviewService.GetReviewsByVinylID(c.Params("vinylId"), page, pageSize)
	if err != nil {
		return mapError(c, err, "Failed to retrieve reviews")
	}
	return success(c, fiber.StatusOK, "", result)
}

// HandleDelete removes a review.
func (h *ReviewHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.reviewService.DeleteReview(c.Params("reviewId")); err != nil {
		return mapError(c, err, "Failed to delete review")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
