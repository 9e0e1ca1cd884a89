package repositories

import (
	"errors"
	"fmt"
	"strings"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the columns FindPage may order by.
var sortColumns = map[string]string{
	"price":  "price",
	"name":   "name",
	"artist": "artist",
}

// GORMVinylRepository is a GORM implementation of VinylRepository.
type GORMVinylRepository struct {
	db *gorm.DB
}

// NewGORMVinylRepository creates a new instance of GORMVinylRepository.
func NewGORMVinylRepository(db *gorm.DB) *GORMVinylRepository {
	return &GORMVinylRepository{
		db: db,
	}
}

// Create inserts a new vinyl record, generating an id if none is set.
func (r *GORMVinylRepository) Create(vinyl *models.Vinyl) error {
	if vinyl.ID == "" {
		vinyl.ID = uuid.New().String()
	}
	if err := r.db.Create(vinyl).Error; err != nil {
		return fmt.Errorf("failed to create vinyl: %w", err)
	}
	return nil
}

// GetAll retrieves every vinyl with its earliest review attached as a preview.
func (r *GORMVinylRepository) GetAll() ([]models.Vinyl, error) {
	var vinyls []models.Vinyl
	if err := r.db.Find(&vinyls).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vinyls: %w", err)
	}
	if err := r.attachPreviewReviews(vinyls); err != nil {
		return nil, err
	}
	return vinyls, nil
}

// FindPage returns one page of vinyls matching the query plus the total count.
func (r *GORMVinylRepository) FindPage(q VinylQuery) ([]models.Vinyl, int64, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "name"
	}

	tx := r.db.Model(&models.Vinyl{})
	if q.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Artist != "" {
		tx = tx.Where("LOWER(artist) LIKE ?", "%"+strings.ToLower(q.Artist)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count vinyls: %w", err)
	}

	var vinyls []models.Vinyl
	err := tx.
		Order(column + " ASC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&vinyls).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find vinyl page: %w", err)
	}

	if err := r.attachPreviewReviews(vinyls); err != nil {
		return nil, 0, err
	}
	return vinyls, total, nil
}

// AverageRatings computes AVG(rating) and COUNT(*) per vinyl for the given
// ids in a single grouped query.
func (r *GORMVinylRepository) AverageRatings(vinylIDs []string) (map[string]RatingAggregate, error) {
	result := make(map[string]RatingAggregate, len(vinylIDs))
	if len(vinylIDs) == 0 {
		return result, nil
	}

	var rows []RatingAggregate
	err := r.db.Model(&models.Review{}).
		Select("vinyl_id, AVG(rating) AS average, COUNT(*) AS count").
		Where("vinyl_id IN ?", vinylIDs).
		Group("vinyl_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	for _, row := range rows {
		result[row.VinylID] = row
	}
	return result, nil
}

// GetByID retrieves a vinyl with all associations eagerly loaded.
func (r *GORMVinylRepository) GetByID(id string) (*models.Vinyl, error) {
	var vinyl models.Vinyl
	err := r.db.
		Preload("Reviews").
		Preload("Reviews.User").
		Preload("User").
		First(&vinyl, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vinyl with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vinyl by ID %s: %w", id, err)
	}
	return &vinyl, nil
}

// Exists reports whether a vinyl with the given id is present.
func (r *GORMVinylRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Vinyl{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check vinyl %s: %w", id, err)
	}
	return count > 0, nil
}

// Update persists changes to an existing vinyl.
func (r *GORMVinylRepository) Update(vinyl *models.Vinyl) error {
	res := r.db.Save(vinyl)
	if res.Error != nil {
		return fmt.Errorf("failed to update vinyl: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vinyl with ID %s for update: %w", vinyl.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a vinyl by its ID.
func (r *GORMVinylRepository) Delete(id string) error {
	res := r.db.Delete(&models.Vinyl{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete vinyl: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vinyl with ID %s for deletion: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// attachPreviewReviews loads the earliest review for each vinyl and attaches
// it as a single-element Reviews slice, matching the preview listing shape.
func (r *GORMVinylRepository) attachPreviewReviews(vinyls []models.Vinyl) error {
	if len(vinyls) == 0 {
		return nil
	}

	ids := make([]string, 0, len(vinyls))
	for _, v := range vinyls {
		ids = append(ids, v.ID)
	}

	var reviews []models.Review
	err := r.db.
		Where("vinyl_id IN ?", ids).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return fmt.Errorf("failed to load preview reviews: %w", err)
	}

	first := make(map[string]models.Review, len(vinyls))
	for _, review := range reviews {
		if _, ok := first[review.VinylID]; !ok {
			first[review.VinylID] = review
		}
	}

	for i := range vinyls {
		if review, ok := first[vinyls[i].ID]; ok {
			vinyls[i].Reviews = []models.Review{review}
		}
	}
	return nil
}
