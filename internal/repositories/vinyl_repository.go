package repositories

import "vinylstore/internal/models"

// VinylQuery describes a paginated, filtered, sorted listing request.
// Page is 1-indexed. SortBy must already be validated against the allowed
// columns by the caller.
type VinylQuery struct {
	Page     int
	PageSize int
	Name     string
	Artist   string
	SortBy   string
}

// RatingAggregate is the per-vinyl result of the review rating aggregation.
type RatingAggregate struct {
	VinylID string  `gorm:"column:vinyl_id"`
	Average float64 `gorm:"column:average"`
	Count   int64   `gorm:"column:count"`
}

// VinylRepository defines the interface for vinyl data access.
type VinylRepository interface {
	Create(vinyl *models.Vinyl) error
	// GetAll returns every vinyl with at most its earliest review attached as
	// a preview.
	GetAll() ([]models.Vinyl, error)
	// FindPage returns one page of vinyls matching the query, with preview
	// reviews attached, plus the total number of matching rows.
	FindPage(q VinylQuery) ([]models.Vinyl, int64, error)
	// AverageRatings computes AVG(rating) and COUNT(*) per vinyl for the
	// given ids. Vinyls without reviews are absent from the result.
	AverageRatings(vinylIDs []string) (map[string]RatingAggregate, error)
	// GetByID loads a vinyl with all associations.
	GetByID(id string) (*models.Vinyl, error)
	Exists(id string) (bool, error)
	Update(vinyl *models.Vinyl) error
	Delete(id string) error
}
