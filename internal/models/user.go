package models

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an account holder. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	Base
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Name     string  `gorm:"not null" json:"name"`
	Role     Role    `gorm:"type:varchar(16);not null" json:"role"`
	Picture  *string `json:"picture"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
