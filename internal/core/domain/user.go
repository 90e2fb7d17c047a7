package domain

import "time"

// Role is an explicit capability tag on a user account. The first account
// ever created is promoted to RoleAdmin; every later account is RoleReader.
type Role string

const (
	RoleReader Role = "reader"
	RoleAdmin  Role = "admin"
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether u carries the administrator capability. Safe to
// call on a nil receiver: an anonymous visitor is never an administrator.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
