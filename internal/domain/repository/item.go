package repository

import (
	"context"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// OrderItemRepository describes persistence operations for order items.
//
// Create relies on the store's (order_id, user_id) uniqueness constraint
// and returns ErrAlreadyExists when the user already holds an item on
// the order, closing the race between near-simultaneous submissions.
type OrderItemRepository interface {
	Create(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error)
	GetByID(ctx context.Context, id int64) (*model.OrderItem, error)
	Update(ctx context.Context, id int64, patch model.OrderItemPatch) (*model.OrderItemView, error)
	Delete(ctx context.Context, id int64) error
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemView, error)
}
