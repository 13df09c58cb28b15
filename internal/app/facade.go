package app

import (
	"context"
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/storage/postgres"
	"github.com/bluemonkey003/lunchroom/internal/usecase"
)

// LunchFacade aggregates the use cases behind the single surface the
// HTTP layer depends on.
type LunchFacade struct {
	auth          *usecase.AuthUseCase
	orders        *usecase.OrderUseCase
	items         *usecase.ItemUseCase
	notifications *usecase.NotificationUseCase
	restaurants   *usecase.RestaurantUseCase
	storage       *postgres.Storage
}

func NewLunchFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	items *usecase.ItemUseCase,
	notifications *usecase.NotificationUseCase,
	restaurants *usecase.RestaurantUseCase,
	storage *postgres.Storage,
) *LunchFacade {
	return &LunchFacade{
		auth:          auth,
		orders:        orders,
		items:         items,
		notifications: notifications,
		restaurants:   restaurants,
		storage:       storage,
	}
}

func (f *LunchFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *LunchFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *LunchFacade) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.VerifyToken(ctx, token)
}

func (f *LunchFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *LunchFacade) Users(ctx context.Context, actorID int64, filter model.UserFilter) ([]model.User, error) {
	return f.auth.ListUsers(ctx, actorID, filter)
}

func (f *LunchFacade) UpdateUser(ctx context.Context, actorID, userID int64, name, password *string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, actorID, userID, name, password)
}

func (f *LunchFacade) ChangeRole(ctx context.Context, actorID, userID int64, role model.UserRole) (*model.User, error) {
	return f.auth.SetRole(ctx, actorID, userID, role)
}

func (f *LunchFacade) SetUserStatus(ctx context.Context, actorID, userID int64, active bool) (*model.User, error) {
	return f.auth.SetActive(ctx, actorID, userID, active)
}

func (f *LunchFacade) ResetUserPassword(ctx context.Context, actorID, userID int64, newPassword string) error {
	return f.auth.ResetPassword(ctx, actorID, userID, newPassword)
}

func (f *LunchFacade) OpenOrder(ctx context.Context, actorID, restaurantID int64, day *time.Time) (*model.OrderView, error) {
	return f.orders.Open(ctx, actorID, restaurantID, day)
}

func (f *LunchFacade) CloseOrder(ctx context.Context, actorID, orderID int64) (*model.OrderView, error) {
	return f.orders.Close(ctx, actorID, orderID)
}

func (f *LunchFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error) {
	return f.orders.List(ctx, filter)
}

func (f *LunchFacade) Order(ctx context.Context, orderID int64) (*model.OrderView, []model.OrderItemView, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *LunchFacade) AddItem(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error) {
	return f.items.Add(ctx, orderID, userID, itemName, notes, price)
}

func (f *LunchFacade) UpdateItem(ctx context.Context, orderID, itemID, userID int64, patch model.OrderItemPatch) (*model.OrderItemView, error) {
	return f.items.Update(ctx, orderID, itemID, userID, patch)
}

func (f *LunchFacade) RemoveItem(ctx context.Context, orderID, itemID, userID int64) error {
	return f.items.Remove(ctx, orderID, itemID, userID)
}

func (f *LunchFacade) Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, int64, error) {
	return f.notifications.List(ctx, userID, unreadOnly)
}

func (f *LunchFacade) MarkNotificationRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	return f.notifications.MarkRead(ctx, id, userID)
}

func (f *LunchFacade) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	return f.notifications.MarkAllRead(ctx, userID)
}

func (f *LunchFacade) CreateRestaurant(ctx context.Context, actorID int64, name, websiteURL string, menuURL, imageURL *string) (*model.Restaurant, error) {
	return f.restaurants.Create(ctx, actorID, name, websiteURL, menuURL, imageURL)
}

func (f *LunchFacade) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	return f.restaurants.Get(ctx, id)
}

func (f *LunchFacade) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	return f.restaurants.List(ctx)
}

func (f *LunchFacade) UpdateRestaurant(ctx context.Context, actorID, id int64, patch model.RestaurantPatch) (*model.Restaurant, error) {
	return f.restaurants.Update(ctx, actorID, id, patch)
}

func (f *LunchFacade) DeleteRestaurant(ctx context.Context, actorID, id int64) error {
	return f.restaurants.Delete(ctx, actorID, id)
}

func (f *LunchFacade) HealthCheck(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}
