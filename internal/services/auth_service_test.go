package services

import (
	"errors"
	"testing"
	"time"

	"vinylstore/internal/apperrors"
	"vinylstore/internal/models"
	"vinylstore/pkg/googleauth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAuthService(repo *MockUserRepository) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour, discardLogger())
}

func TestSignIn_RegistersNewUserWithDefaultRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	profile := googleauth.Profile{
		ID:        "google-123",
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
	}

	mockRepo.On("GetByID", "google-123").Return(nil, apperrors.ErrNotFound)
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "google-123" && u.Email == "new@example.com" && u.Role == models.RoleUser
	})).Return(nil)

	token, err := service.SignIn(profile)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestSignIn_ExistingUserIsNotRecreated(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	existing := &models.User{ID: "google-123", Email: "old@example.com", Role: models.RoleAdmin}
	mockRepo.On("GetByID", "google-123").Return(existing, nil)

	token, err := service.SignIn(googleauth.Profile{ID: "google-123", Email: "old@example.com"})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignIn_LookupFailurePropagates(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	mockRepo.On("GetByID", "google-123").Return(nil, errors.New("connection refused"))

	token, err := service.SignIn(googleauth.Profile{ID: "google-123", Email: "x@example.com"})

	assert.Error(t, err)
	assert.Empty(t, token)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	service := newTestAuthService(new(MockUserRepository))

	token, err := service.GenerateToken("user-1", "user@example.com")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(new(MockUserRepository), "secret-a", time.Hour, discardLogger())
	verifier := NewAuthService(new(MockUserRepository), "secret-b", time.Hour, discardLogger())

	token, err := issuer.GenerateToken("user-1", "user@example.com")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateToken_RejectsExpiredToken(t *testing.T) {
	issuer := NewAuthService(new(MockUserRepository), "test-secret", -time.Minute, discardLogger())
	verifier := newTestAuthService(new(MockUserRepository))

	token, err := issuer.GenerateToken("user-1", "user@example.com")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	service := newTestAuthService(new(MockUserRepository))

	claims, err := service.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
