package models

import (
	"slices"
	"time"
)

// Role is a tag granting access to gated routes.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperUser Role = "super-user"
	RoleUser      Role = "user"
)

// User represents an account of the catalog.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string     `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	FullName  string     `json:"fullName" gorm:"type:varchar(255);not null"`
	IsActive  bool       `json:"isActive" gorm:"not null;default:true"`
	Roles     StringList `json:"roles"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if slices.Contains(u.Roles, string(role)) {
			return true
		}
	}
	return false
}
