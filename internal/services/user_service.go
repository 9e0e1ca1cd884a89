package services

import (
	"fmt"
	"log/slog"

	"vinylstore/internal/models"
	"vinylstore/internal/repositories"
)

// UpdateUserInput carries the partial-update fields for a user profile. Nil
// fields are left unchanged. Email and role are not client-editable.
type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
	Birthdate *string `json:"birthdate"`
}

// UserService handles business logic related to user accounts.
type UserService struct {
	repo   repositories.UserRepository
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// FindByID fetches a user with reviews and purchased records eagerly loaded.
func (s *UserService) FindByID(id string) (*models.User, error) {
	user, err := s.repo.GetByIDWithAssociations(id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user account.
func (s *UserService) Create(user *models.User) error {
	if err := s.repo.Create(user); err != nil {
		s.logger.Error("failed to create user", "email", user.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	s.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return nil
}

// UpdateByID applies a partial update to a user, failing with not-found
// before attempting any mutation.
func (s *UserService) UpdateByID(id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Birthdate != nil {
		user.Birthdate = *input.Birthdate
	}

	if err := s.repo.Update(user); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	s.logger.Info("user updated", "user_id", id)
	return user, nil
}

// RemoveByID hard-deletes a user, failing with not-found if absent.
func (s *UserService) RemoveByID(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
