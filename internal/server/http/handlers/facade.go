package handlers

import (
	"context"
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// AuthFacade describes identity capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	VerifyToken(ctx context.Context, token string) (*model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	Users(ctx context.Context, actorID int64, filter model.UserFilter) ([]model.User, error)
	UpdateUser(ctx context.Context, actorID, userID int64, name, password *string) (*model.User, error)
	ChangeRole(ctx context.Context, actorID, userID int64, role model.UserRole) (*model.User, error)
	SetUserStatus(ctx context.Context, actorID, userID int64, active bool) (*model.User, error)
	ResetUserPassword(ctx context.Context, actorID, userID int64, newPassword string) error
}

// OrderFacade exposes the order window lifecycle.
type OrderFacade interface {
	OpenOrder(ctx context.Context, actorID, restaurantID int64, day *time.Time) (*model.OrderView, error)
	CloseOrder(ctx context.Context, actorID, orderID int64) (*model.OrderView, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error)
	Order(ctx context.Context, orderID int64) (*model.OrderView, []model.OrderItemView, error)
}

// ItemFacade exposes per-order item submissions.
type ItemFacade interface {
	AddItem(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error)
	UpdateItem(ctx context.Context, orderID, itemID, userID int64, patch model.OrderItemPatch) (*model.OrderItemView, error)
	RemoveItem(ctx context.Context, orderID, itemID, userID int64) error
}

// NotificationFacade exposes the durable notification feed.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, int64, error)
	MarkNotificationRead(ctx context.Context, id, userID int64) (*model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error)
}

// RestaurantFacade exposes the vendor catalog.
type RestaurantFacade interface {
	CreateRestaurant(ctx context.Context, actorID int64, name, websiteURL string, menuURL, imageURL *string) (*model.Restaurant, error)
	Restaurant(ctx context.Context, id int64) (*model.Restaurant, error)
	Restaurants(ctx context.Context) ([]model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, actorID, id int64, patch model.RestaurantPatch) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, actorID, id int64) error
}

// HealthFacade reports store liveness.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// LunchFacade aggregates the full set of operations used across handlers.
type LunchFacade interface {
	AuthFacade
	OrderFacade
	ItemFacade
	NotificationFacade
	RestaurantFacade
	HealthFacade
}
