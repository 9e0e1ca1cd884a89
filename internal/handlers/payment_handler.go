package handlers

import (
	"vinylstore/internal/middleware"
	"vinylstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateIntentRequest is the payload for starting a payment. Amount is in the
// smallest currency unit.
type CreateIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required"`
	VinylID  string `json:"vinylId" validate:"required"`
}

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	paymentService *services.PaymentService
	authService    *services.AuthService
	validate       *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *services.PaymentService, authService *services.AuthService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		authService:    authService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the payment routes.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment", middleware.AuthRequired(h.authService))
	paymentRoutes.Post("/intent", h.HandleCreateIntent)
}

// HandleCreateIntent creates a payment intent for the authenticated user and
// records the purchase.
func (h *PaymentHandler) HandleCreateIntent(c *fiber.Ctx) error {
	var req CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	email, _ := c.Locals(middleware.LocalEmail).(string)
	intent, err := h.paymentService.CreatePaymentIntent(req.Amount, req.Currency, email, req.VinylID)
	if err != nil {
		return mapError(c, err, "Failed to create payment intent")
	}
	return success(c, fiber.StatusCreated, "Payment intent created", intent)
}
