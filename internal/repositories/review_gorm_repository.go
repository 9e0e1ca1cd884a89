package repositories

import (
	"errors"
	"fmt"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review, generating an id if none is set.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}
	return &review, nil
}

// FindByVinylID returns one page of reviews for a vinyl plus the total count.
func (r *GORMReviewRepository) FindByVinylID(vinylID string, offset, limit int) ([]models.Review, int64, error) {
	var total int64
	tx := r.db.Model(&models.Review{}).Where("vinyl_id = ?", vinylID)
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews for vinyl %s: %w", vinylID, err)
	}

	var reviews []models.Review
	err := tx.
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find reviews for vinyl %s: %w", vinylID, err)
	}
	return reviews, total, nil
}

// Delete removes a review by its ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
