package repositories

import "vinylstore/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByIDWithAssociations loads the user together with their reviews and
	// purchased vinyl records.
	GetByIDWithAssociations(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	// RecordPurchase links a vinyl to the user's purchased-records collection
	// inside a single transaction.
	RecordPurchase(userID, vinylID string) error
}
