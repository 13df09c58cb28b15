package repository

import (
	"context"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// RestaurantRepository describes persistence operations for the vendor catalog.
type RestaurantRepository interface {
	Create(ctx context.Context, name, websiteURL string, menuURL, imageURL *string, createdBy int64) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Update(ctx context.Context, id int64, patch model.RestaurantPatch) (*model.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}
