package repositories

import "vinylstore/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	// FindByVinylID returns one page of reviews for a vinyl plus the total
	// review count for that vinyl.
	FindByVinylID(vinylID string, offset, limit int) ([]models.Review, int64, error)
	Delete(id string) error
}
