package dto

import (
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the issued token alongside the user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RoleUpdateRequest changes a user's role.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// UserUpdateRequest edits profile fields; absent fields stay unchanged.
type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// StatusUpdateRequest activates or deactivates an account.
type StatusUpdateRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PasswordResetRequest sets a new password on a user's behalf.
type PasswordResetRequest struct {
	NewPassword string `json:"new_password"`
}

// NewUserResponse maps the domain user onto its public projection.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
