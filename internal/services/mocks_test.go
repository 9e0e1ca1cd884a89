package services

import (
	"io"
	"log/slog"

	"vinylstore/internal/models"
	"vinylstore/internal/repositories"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithAssociations(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) RecordPurchase(userID, vinylID string) error {
	args := m.Called(userID, vinylID)
	return args.Error(0)
}

// MockVinylRepository is a testify mock of repositories.VinylRepository.
type MockVinylRepository struct {
	mock.Mock
}

func (m *MockVinylRepository) Create(vinyl *models.Vinyl) error {
	args := m.Called(vinyl)
	return args.Error(0)
}

func (m *MockVinylRepository) GetAll() ([]models.Vinyl, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vinyl), args.Error(1)
}

func (m *MockVinylRepository) FindPage(q repositories.VinylQuery) ([]models.Vinyl, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Vinyl), args.Get(1).(int64), args.Error(2)
}

func (m *MockVinylRepository) AverageRatings(vinylIDs []string) (map[string]repositories.RatingAggregate, error) {
	args := m.Called(vinylIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]repositories.RatingAggregate), args.Error(1)
}

func (m *MockVinylRepository) GetByID(id string) (*models.Vinyl, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vinyl), args.Error(1)
}

func (m *MockVinylRepository) Exists(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVinylRepository) Update(vinyl *models.Vinyl) error {
	args := m.Called(vinyl)
	return args.Error(0)
}

func (m *MockVinylRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockReviewRepository is a testify mock of repositories.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByVinylID(vinylID string, offset, limit int) ([]models.Review, int64, error) {
	args := m.Called(vinylID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPaymentGateway is a testify mock of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateIntent(amount int64, currency string) (*PaymentIntent, error) {
	args := m.Called(amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentIntent), args.Error(1)
}

// MockEventPublisher is a testify mock of EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishJSON(queue string, v interface{}) error {
	args := m.Called(queue, v)
	return args.Error(0)
}
