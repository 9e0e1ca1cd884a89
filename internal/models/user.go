package models

import "time"

// Role values stored on a User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a marketplace account. The primary key is the subject id
// assigned by the external identity provider, so it is a plain string rather
// than a generated UUID.
type User struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Email     string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	Birthdate string `json:"birthdate"`
	Role      string `json:"role" gorm:"type:varchar(16);default:user"`

	Reviews         []Review `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PurchasedVinyls []Vinyl  `json:"purchasedVinyls,omitempty" gorm:"many2many:purchased_vinyls"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user currently holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
