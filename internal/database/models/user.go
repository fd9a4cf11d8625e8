package models

import "time"

// User is a staff member. Roles drive which shifts a user can cover and which
// collaborators are offered when a replacement is requested.
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	FirstName    string     `json:"first_name" gorm:"size:150"`
	LastName     string     `json:"last_name" gorm:"size:150"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	PasswordHash string     `json:"-" gorm:"size:255"`
	Staff        bool       `json:"staff" gorm:"default:false"`

	Roles []Role `json:"roles,omitempty" gorm:"many2many:user_roles"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in request listings.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// HasRole reports whether the user carries the given role code.
func (u *User) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}
