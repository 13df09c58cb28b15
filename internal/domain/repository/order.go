package repository

import (
	"context"
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// OrderRepository describes persistence operations for order windows.
//
// Create must enforce the one-open-order-per-day rule atomically at the
// store and return ErrOpenOrderExists when it is violated; a prior read
// in request code cannot close the race between concurrent openers.
type OrderRepository interface {
	Create(ctx context.Context, restaurantID, createdBy int64, day time.Time) (*model.OrderView, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetView(ctx context.Context, id int64) (*model.OrderView, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error)

	// Close transitions OPEN to CLOSED. The boolean reports whether this
	// call performed the transition; a re-close of an already CLOSED
	// order returns the current state with false. On a transition the
	// participant snapshot is taken in the same transaction as the
	// status flip, so items racing the close can never partially appear
	// in it.
	Close(ctx context.Context, id int64) (*model.OrderView, []int64, bool, error)
}
