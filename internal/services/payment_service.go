package services

import (
	"fmt"
	"log/slog"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/repositories"
	"vinylstore/pkg/rabbitmq"
)

// PaymentIntent is the gateway-side record of an authorized-but-not-captured
// charge. Amount is in the smallest currency unit.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentGateway abstracts the external payment processor.
type PaymentGateway interface {
	CreateIntent(amount int64, currency string) (*PaymentIntent, error)
}

// EventPublisher abstracts the queue used for post-commit side effects.
type EventPublisher interface {
	PublishJSON(queue string, v interface{}) error
}

// PaymentConfirmedEvent is queued after a purchase is recorded; a consumer
// sends the confirmation email.
type PaymentConfirmedEvent struct {
	IntentID  string `json:"intentId"`
	UserEmail string `json:"userEmail"`
	VinylID   string `json:"vinylId"`
	VinylName string `json:"vinylName"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// PaymentService creates payment intents and records purchases.
type PaymentService struct {
	vinylRepo repositories.VinylRepository
	userRepo  repositories.UserRepository
	gateway   PaymentGateway
	publisher EventPublisher
	logger    *slog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	vinylRepo repositories.VinylRepository,
	userRepo repositories.UserRepository,
	gateway PaymentGateway,
	publisher EventPublisher,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		vinylRepo: vinylRepo,
		userRepo:  userRepo,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePaymentIntent validates the request, creates a gateway intent, records
// the purchase in a single transaction, and queues the confirmation email.
// Amount and vinyl existence are checked before any gateway call. Email
// dispatch is an at-least-once side effect handled by the queue consumer;
// a publish failure is logged but does not fail the payment.
func (s *PaymentService) CreatePaymentIntent(amount int64, currency, userEmail, vinylID string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrInvalidInput)
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required: %w", apperrors.ErrInvalidInput)
	}

	vinyl, err := s.vinylRepo.GetByID(vinylID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(amount, currency)
	if err != nil {
		s.logger.Error("payment gateway call failed", "vinyl_id", vinylID, "email", userEmail, "error", err)
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.userRepo.RecordPurchase(user.ID, vinyl.ID); err != nil {
		s.logger.Error("failed to record purchase", "user_id", user.ID, "vinyl_id", vinyl.ID, "error", err)
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	s.logger.Info("vinyl purchased", "user_id", user.ID, "vinyl_id", vinyl.ID, "intent_id", intent.ID)

	event := PaymentConfirmedEvent{
		IntentID:  intent.ID,
		UserEmail: userEmail,
		VinylID:   vinyl.ID,
		VinylName: vinyl.Name,
		Amount:    amount,
		Currency:  currency,
	}
	if err := s.publisher.PublishJSON(rabbitmq.QueuePaymentEmails, event); err != nil {
		// The purchase is committed; losing the email event is logged but
		// does not fail the request.
		s.logger.Error("failed to queue payment confirmation email", "intent_id", intent.ID, "error", err)
	}

	return intent, nil
}
