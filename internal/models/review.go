package models

import "time"

// Review is a user's rating of a vinyl record. Ownership is assigned from the
// authenticated session, never taken from the request body.
type Review struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Content string `json:"content" gorm:"type:text;not null"`
	Rating  int    `json:"rating" gorm:"not null"`

	UserID string `json:"userId" gorm:"type:varchar(255);not null;index"`
	User   *User  `json:"user,omitempty"`

	VinylID string `json:"vinylId" gorm:"type:varchar(36);not null;index"`
	Vinyl   *Vinyl `json:"vinyl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
