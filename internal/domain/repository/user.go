package repository

import (
	"context"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.UserRole) (*model.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
