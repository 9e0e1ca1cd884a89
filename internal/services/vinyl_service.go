package services

import (
	"fmt"
	"log/slog"
	"math"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// Listing defaults and allowed sort columns.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSortBy   = "name"
)

var allowedSortColumns = map[string]bool{
	"price":  true,
	"name":   true,
	"artist": true,
}

// ReviewPreview is the trimmed review shape embedded in listings.
type ReviewPreview struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// VinylSummary is the listing shape: vinyl fields plus the derived average
// rating and at most one preview review. AverageRating is null when the
// vinyl has no reviews.
type VinylSummary struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Artist        string          `json:"artist"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	Image         string          `json:"image"`
	AverageRating *float64        `json:"averageRating"`
	Reviews       []ReviewPreview `json:"reviews"`
}

// VinylPage is one page of a filtered listing.
type VinylPage struct {
	Data       []VinylSummary `json:"data"`
	TotalPages int            `json:"totalPages"`
	Page       int            `json:"page"`
}

// UpdateVinylInput carries the partial-update fields for a vinyl. Nil fields
// are left unchanged.
type UpdateVinylInput struct {
	Name        *string  `json:"name"`
	Artist      *string  `json:"artist"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}

// VinylService handles business logic related to vinyl records.
type VinylService struct {
	repo   repositories.VinylRepository
	logger *slog.Logger
}

// NewVinylService creates a new VinylService.
func NewVinylService(repo repositories.VinylRepository, logger *slog.Logger) *VinylService {
	return &VinylService{
		repo:   repo,
		logger: logger,
	}
}

// Create inserts a new vinyl record.
func (s *VinylService) Create(vinyl *models.Vinyl) error {
	if err := s.repo.Create(vinyl); err != nil {
		s.logger.Error("failed to create vinyl", "error", err)
		return fmt.Errorf("failed to create vinyl: %w", err)
	}
	s.logger.Info("vinyl created", "vinyl_id", vinyl.ID, "name", vinyl.Name)
	return nil
}

// GetFullList returns every vinyl with its preview review and average rating.
func (s *VinylService) GetFullList() ([]VinylSummary, error) {
	vinyls, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to fetch full vinyl list", "error", err)
		return nil, fmt.Errorf("failed to fetch full vinyl list: %w", err)
	}
	return s.buildSummaries(vinyls)
}

// FindAll returns one page of vinyls matching the filters, sorted ascending
// by the given column. Page and pageSize fall back to the defaults when not
// positive; an unknown sort column is rejected as invalid input.
func (s *VinylService) FindAll(page, pageSize int, name, artist, sortBy string) (*VinylPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if !allowedSortColumns[sortBy] {
		return nil, fmt.Errorf("sort column %q: %w", sortBy, apperrors.ErrInvalidInput)
	}

	vinyls, total, err := s.repo.FindPage(repositories.VinylQuery{
		Page:     page,
		PageSize: pageSize,
		Name:     name,
		Artist:   artist,
		SortBy:   sortBy,
	})
	if err != nil {
		s.logger.Error("failed to retrieve paginated vinyls", "error", err)
		return nil, fmt.Errorf("failed to retrieve vinyls: %w", err)
	}

	summaries, err := s.buildSummaries(vinyls)
	if err != nil {
		return nil, err
	}

	return &VinylPage{
		Data:       summaries,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		Page:       page,
	}, nil
}

// FindOne fetches a vinyl by id with all associations eagerly loaded.
func (s *VinylService) FindOne(id string) (*models.Vinyl, error) {
	vinyl, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return vinyl, nil
}

// Update applies a partial update to an existing vinyl, failing with
// not-found before attempting any mutation.
func (s *VinylService) Update(id string, input UpdateVinylInput) (*models.Vinyl, error) {
	vinyl, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		vinyl.Name = *input.Name
	}
	if input.Artist != nil {
		vinyl.Artist = *input.Artist
	}
	if input.Description != nil {
		vinyl.Description = *input.Description
	}
	if input.Price != nil {
		vinyl.Price = *input.Price
	}
	if input.Image != nil {
		vinyl.Image = *input.Image
	}

	// Clear loaded associations so Save only touches the vinyls row.
	vinyl.Reviews = nil
	vinyl.User = nil

	if err := s.repo.Update(vinyl); err != nil {
		s.logger.Error("failed to update vinyl", "vinyl_id", id, "error", err)
		return nil, fmt.Errorf("failed to update vinyl %s: %w", id, err)
	}
	s.logger.Info("vinyl updated", "vinyl_id", id)
	return vinyl, nil
}

// Remove hard-deletes a vinyl, failing with not-found if it is absent.
func (s *VinylService) Remove(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete vinyl", "vinyl_id", id, "error", err)
		return fmt.Errorf("failed to delete vinyl %s: %w", id, err)
	}
	s.logger.Info("vinyl deleted", "vinyl_id", id)
	return nil
}

// buildSummaries shapes vinyls into listing summaries, resolving average
// ratings through a single aggregate query.
func (s *VinylService) buildSummaries(vinyls []models.Vinyl) ([]VinylSummary, error) {
	ids := make([]string, 0, len(vinyls))
	for _, v := range vinyls {
		ids = append(ids, v.ID)
	}

	ratings, err := s.repo.AverageRatings(ids)
	if err != nil {
		s.logger.Error("failed to aggregate ratings", "error", err)
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	summaries := make([]VinylSummary, 0, len(vinyls))
	for _, v := range vinyls {
		summary := VinylSummary{
			ID:          v.ID,
			Name:        v.Name,
			Artist:      v.Artist,
			Description: v.Description,
			Price:       v.Price,
			Image:       v.Image,
			Reviews:     make([]ReviewPreview, 0, len(v.Reviews)),
		}
		if agg, ok := ratings[v.ID]; ok && agg.Count > 0 {
			avg := agg.Average
			summary.AverageRating = &avg
		}
		for _, review := range v.Reviews {
			summary.Reviews = append(summary.Reviews, ReviewPreview{
				Content: review.Content,
				Rating:  review.Rating,
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
