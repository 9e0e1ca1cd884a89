package services

import (
	"testing"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFindAll_RejectsUnknownSortColumn(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	page, err := service.FindAll(1, 10, "", "", "created_at")

	assert.Nil(t, page)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "FindPage", mock.Anything)
}

func TestFindAll_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	mockRepo.On("FindPage", repositories.VinylQuery{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		SortBy:   DefaultSortBy,
	}).Return([]models.Vinyl{}, int64(0), nil)
	mockRepo.On("AverageRatings", []string{}).Return(map[string]repositories.RatingAggregate{}, nil)

	page, err := service.FindAll(0, 0, "", "", "")

	assert.NoError(t, err)
	assert.Equal(t, DefaultPage, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	mockRepo.AssertExpectations(t)
}

func TestFindAll_ComputesTotalPages(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	vinyls := []models.Vinyl{{ID: "v1", Name: "Kind of Blue"}}
	mockRepo.On("FindPage", mock.Anything).Return(vinyls, int64(21), nil)
	mockRepo.On("AverageRatings", []string{"v1"}).Return(map[string]repositories.RatingAggregate{}, nil)

	page, err := service.FindAll(2, 10, "", "", "name")

	assert.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Data, 1)
}

func TestFindAll_AverageRatingIsNullWithoutReviews(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	vinyls := []models.Vinyl{
		{ID: "rated", Name: "Abbey Road"},
		{ID: "unrated", Name: "Rumours"},
	}
	mockRepo.On("FindPage", mock.Anything).Return(vinyls, int64(2), nil)
	mockRepo.On("AverageRatings", []string{"rated", "unrated"}).Return(map[string]repositories.RatingAggregate{
		"rated": {VinylID: "rated", Average: 4.5, Count: 2},
	}, nil)

	page, err := service.FindAll(1, 10, "", "", "name")

	assert.NoError(t, err)
	assert.NotNil(t, page.Data[0].AverageRating)
	assert.Equal(t, 4.5, *page.Data[0].AverageRating)
	assert.Nil(t, page.Data[1].AverageRating)
}

func TestGetFullList_AttachesPreviewReviews(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	vinyls := []models.Vinyl{
		{ID: "v1", Name: "Kind of Blue", Reviews: []models.Review{{Content: "classic", Rating: 5}}},
	}
	mockRepo.On("GetAll").Return(vinyls, nil)
	mockRepo.On("AverageRatings", []string{"v1"}).Return(map[string]repositories.RatingAggregate{
		"v1": {VinylID: "v1", Average: 5, Count: 1},
	}, nil)

	summaries, err := service.GetFullList()

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, []ReviewPreview{{Content: "classic", Rating: 5}}, summaries[0].Reviews)
}

func TestUpdate_FailsWithNotFoundBeforeMutation(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	mockRepo.On("GetByID", "missing").Return(nil, apperrors.ErrNotFound)

	name := "New Name"
	vinyl, err := service.Update("missing", UpdateVinylInput{Name: &name})

	assert.Nil(t, vinyl)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	existing := &models.Vinyl{ID: "v1", Name: "Old", Artist: "Artist", Price: 10}
	mockRepo.On("GetByID", "v1").Return(existing, nil)
	mockRepo.On("Update", mock.MatchedBy(func(v *models.Vinyl) bool {
		return v.Name == "New" && v.Artist == "Artist" && v.Price == 10
	})).Return(nil)

	name := "New"
	vinyl, err := service.Update("v1", UpdateVinylInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "New", vinyl.Name)
	mockRepo.AssertExpectations(t)
}

func TestRemove_FailsWithNotFound(t *testing.T) {
	mockRepo := new(MockVinylRepository)
	service := NewVinylService(mockRepo, discardLogger())

	mockRepo.On("GetByID", "missing").Return(nil, apperrors.ErrNotFound)

	err := service.Remove("missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
