package model

import "time"

// UserRole distinguishes regular participants from privileged actors.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered participant of the lunch ordering group.
// Deactivated accounts keep their history but stop receiving order
// notifications.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may open and close order windows.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch carries the profile fields a user may edit; nil means
// leave unchanged.
type UserPatch struct {
	Name *string
}

// UserFilter narrows user listings; nil fields match everything.
type UserFilter struct {
	Active *bool
	Role   *UserRole
}
