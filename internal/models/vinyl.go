package models

import "time"

// Vinyl represents a record listed on the marketplace.
type Vinyl struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" gorm:"not null" validate:"required"`
	Artist      string  `json:"artist" gorm:"not null" validate:"required"`
	Description string  `json:"description" gorm:"type:text;not null" validate:"required"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null" validate:"gte=0"`
	Image       string  `json:"image"`

	// UserID records the creating admin, when known.
	UserID *string `json:"userId,omitempty" gorm:"type:varchar(255)"`
	User   *User   `json:"user,omitempty"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:VinylID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
