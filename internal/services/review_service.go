package services

import (
	"fmt"
	"log/slog"
	"math"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// CreateReviewInput carries the client-supplied fields for a new review.
// The owning user is taken from the session, never from the input.
type CreateReviewInput struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	VinylID string `json:"vinylId" validate:"required"`
}

// ReviewPage is one page of reviews for a vinyl.
type ReviewPage struct {
	Data       []models.Review `json:"data"`
	TotalPages int             `json:"totalPages"`
	Page       int             `json:"page"`
}

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	vinylRepo  repositories.VinylRepository
	logger     *slog.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, vinylRepo repositories.VinylRepository, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		vinylRepo:  vinylRepo,
		logger:     logger,
	}
}

// CreateReview inserts a review owned by the authenticated user. The target
// vinyl must exist; the existence check runs before any write.
func (s *ReviewService) CreateReview(input CreateReviewInput, userID string) (*models.Review, error) {
	exists, err := s.vinylRepo.Exists(input.VinylID)
	if err != nil {
		s.logger.Error("failed to check vinyl before review", "vinyl_id", input.VinylID, "error", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vinyl with ID %s: %w", input.VinylID, apperrors.ErrNotFound)
	}

	review := &models.Review{
		Content: input.Content,
		Rating:  input.Rating,
		UserID:  userID,
		VinylID: input.VinylID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		s.logger.Error("failed to create review", "vinyl_id", input.VinylID, "error", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info("review created", "review_id", review.ID, "vinyl_id", review.VinylID, "user_id", userID)
	return review, nil
}

// GetReviewsByVinylID returns one page of reviews for a vinyl. It fails with
// not-found only when the vinyl itself does not exist; an existing vinyl with
// no reviews yields an empty page.
func (s *ReviewService) GetReviewsByVinylID(vinylID string, page, pageSize int) (*ReviewPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	exists, err := s.vinylRepo.Exists(vinylID)
	if err != nil {
		s.logger.Error("failed to check vinyl before listing reviews", "vinyl_id", vinylID, "error", err)
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("vinyl with ID %s: %w", vinylID, apperrors.ErrNotFound)
	}

	reviews, total, err := s.reviewRepo.FindByVinylID(vinylID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("failed to retrieve reviews", "vinyl_id", vinylID, "error", err)
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &ReviewPage{
		Data:       reviews,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		Page:       page,
	}, nil
}

// DeleteReview hard-deletes a review, failing with not-found if it is absent.
func (s *ReviewService) DeleteReview(id string) error {
	if _, err := s.reviewRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(id); err != nil {
		s.logger.Error("failed to delete review", "review_id", id, "error", err)
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	s.logger.Info("review deleted", "review_id", id)
	return nil
}
