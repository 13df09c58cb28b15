package test

import (
	"context"
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// AuthFacadeStub simulates the identity facade for HTTP layer tests.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	VerifyFn        func(context.Context, string) (*model.User, error)
	UserFn          func(context.Context, int64) (*model.User, error)
	UsersFn         func(context.Context, int64, model.UserFilter) ([]model.User, error)
	UpdateUserFn    func(context.Context, int64, int64, *string, *string) (*model.User, error)
	ChangeRoleFn    func(context.Context, int64, int64, model.UserRole) (*model.User, error)
	SetStatusFn     func(context.Context, int64, int64, bool) (*model.User, error)
	ResetPasswordFn func(context.Context, int64, int64, string) error
}

func stubUser(id int64) *model.User {
	return &model.User{ID: id, Name: "stub", Email: "stub@example.com", Role: model.RoleEmployee, IsActive: true}
}

// Register returns a user and token for successful signup scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return stubUser(1), "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return stubUser(1), "token", nil
}

// VerifyToken resolves a credential to a stub user.
func (s AuthFacadeStub) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, token)
	}
	return stubUser(1), nil
}

// User returns the stub user for the identifier.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return stubUser(id), nil
}

// Users returns the configured listing.
func (s AuthFacadeStub) Users(ctx context.Context, actorID int64, filter model.UserFilter) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, actorID, filter)
	}
	return []model.User{*stubUser(1)}, nil
}

// UpdateUser delegates to override or returns a patched stub user.
func (s AuthFacadeStub) UpdateUser(ctx context.Context, actorID, userID int64, name, password *string) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, actorID, userID, name, password)
	}
	u := stubUser(userID)
	if name != nil {
		u.Name = *name
	}
	return u, nil
}

// ChangeRole delegates to override or echoes the requested role.
func (s AuthFacadeStub) ChangeRole(ctx context.Context, actorID, userID int64, role model.UserRole) (*model.User, error) {
	if s.ChangeRoleFn != nil {
		return s.ChangeRoleFn(ctx, actorID, userID, role)
	}
	u := stubUser(userID)
	u.Role = role
	return u, nil
}

// SetUserStatus delegates to override or echoes the requested flag.
func (s AuthFacadeStub) SetUserStatus(ctx context.Context, actorID, userID int64, active bool) (*model.User, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, actorID, userID, active)
	}
	u := stubUser(userID)
	u.IsActive = active
	return u, nil
}

// ResetUserPassword delegates to override or succeeds.
func (s AuthFacadeStub) ResetUserPassword(ctx context.Context, actorID, userID int64, newPassword string) error {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, actorID, userID, newPassword)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OpenFn   func(context.Context, int64, int64, *time.Time) (*model.OrderView, error)
	CloseFn  func(context.Context, int64, int64) (*model.OrderView, error)
	OrdersFn func(context.Context, model.OrderFilter) ([]model.OrderView, error)
	OrderFn  func(context.Context, int64) (*model.OrderView, []model.OrderItemView, error)
}

func stubOrderView(id int64) *model.OrderView {
	return &model.OrderView{
		Order:          model.Order{ID: id, RestaurantID: 1, Status: model.OrderStatusOpen, Day: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		RestaurantName: "Thai Garden",
		CreatorName:    "root",
	}
}

// OpenOrder delegates to override or returns a fresh OPEN order.
func (s OrderFacadeStub) OpenOrder(ctx context.Context, actorID, restaurantID int64, day *time.Time) (*model.OrderView, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, actorID, restaurantID, day)
	}
	return stubOrderView(1), nil
}

// CloseOrder delegates to override or returns a CLOSED order.
func (s OrderFacadeStub) CloseOrder(ctx context.Context, actorID, orderID int64) (*model.OrderView, error) {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, actorID, orderID)
	}
	view := stubOrderView(orderID)
	view.Status = model.OrderStatusClosed
	return view, nil
}

// Orders returns the configured listing.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.OrderView{*stubOrderView(1)}, nil
}

// Order returns the configured detail projection.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.OrderView, []model.OrderItemView, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return stubOrderView(orderID), nil, nil
}

// ItemFacadeStub provides controllable behaviour for item endpoints.
type ItemFacadeStub struct {
	AddFn    func(context.Context, int64, int64, string, *string, *float64) (*model.OrderItemView, error)
	UpdateFn func(context.Context, int64, int64, int64, model.OrderItemPatch) (*model.OrderItemView, error)
	RemoveFn func(context.Context, int64, int64, int64) error
}

// AddItem delegates to override or echoes the submission.
func (s ItemFacadeStub) AddItem(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, orderID, userID, itemName, notes, price)
	}
	return &model.OrderItemView{
		OrderItem: model.OrderItem{ID: 1, OrderID: orderID, UserID: userID, ItemName: itemName, Notes: notes, Price: price},
		UserName:  "stub",
	}, nil
}

// UpdateItem delegates to override or returns a merged item.
func (s ItemFacadeStub) UpdateItem(ctx context.Context, orderID, itemID, userID int64, patch model.OrderItemPatch) (*model.OrderItemView, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, itemID, userID, patch)
	}
	view := &model.OrderItemView{
		OrderItem: model.OrderItem{ID: itemID, OrderID: orderID, UserID: userID, ItemName: "stub item"},
		UserName:  "stub",
	}
	if patch.ItemName != nil {
		view.ItemName = *patch.ItemName
	}
	return view, nil
}

// RemoveItem delegates to override or succeeds.
func (s ItemFacadeStub) RemoveItem(ctx context.Context, orderID, itemID, userID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, orderID, itemID, userID)
	}
	return nil
}

// NotificationFacadeStub provides controllable behaviour for feed endpoints.
type NotificationFacadeStub struct {
	ListFn        func(context.Context, int64, bool) ([]model.Notification, int64, error)
	MarkReadFn    func(context.Context, int64, int64) (*model.Notification, error)
	MarkAllReadFn func(context.Context, int64) (int64, error)
}

// Notifications returns the configured feed page.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, unreadOnly)
	}
	return []model.Notification{{ID: 1, UserID: userID, Type: model.NotificationOrderOpened, Message: "stub"}}, 1, nil
}

// MarkNotificationRead delegates to override or returns a read entry.
func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, id, userID)
	}
	return &model.Notification{ID: id, UserID: userID, Read: true}, nil
}

// MarkAllNotificationsRead delegates to override or reports one update.
func (s NotificationFacadeStub) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	if s.MarkAllReadFn != nil {
		return s.MarkAllReadFn(ctx, userID)
	}
	return 1, nil
}

// RestaurantFacadeStub provides controllable behaviour for catalog endpoints.
type RestaurantFacadeStub struct {
	CreateFn func(context.Context, int64, string, string, *string, *string) (*model.Restaurant, error)
	GetFn    func(context.Context, int64) (*model.Restaurant, error)
	ListFn   func(context.Context) ([]model.Restaurant, error)
	UpdateFn func(context.Context, int64, int64, model.RestaurantPatch) (*model.Restaurant, error)
	DeleteFn func(context.Context, int64, int64) error
}

func stubRestaurant(id int64) *model.Restaurant {
	return &model.Restaurant{ID: id, Name: "Thai Garden", WebsiteURL: "https://thai.example", CreatedBy: 1}
}

// CreateRestaurant delegates to override or echoes the submission.
func (s RestaurantFacadeStub) CreateRestaurant(ctx context.Context, actorID int64, name, websiteURL string, menuURL, imageURL *string) (*model.Restaurant, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actorID, name, websiteURL, menuURL, imageURL)
	}
	return &model.Restaurant{ID: 1, Name: name, WebsiteURL: websiteURL, MenuURL: menuURL, ImageURL: imageURL, CreatedBy: actorID}, nil
}

// Restaurant returns the configured vendor.
func (s RestaurantFacadeStub) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return stubRestaurant(id), nil
}

// Restaurants returns the configured catalog.
func (s RestaurantFacadeStub) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Restaurant{*stubRestaurant(1)}, nil
}

// UpdateRestaurant delegates to override or returns a merged vendor.
func (s RestaurantFacadeStub) UpdateRestaurant(ctx context.Context, actorID, id int64, patch model.RestaurantPatch) (*model.Restaurant, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actorID, id, patch)
	}
	r := stubRestaurant(id)
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	return r, nil
}

// DeleteRestaurant delegates to override or succeeds.
func (s RestaurantFacadeStub) DeleteRestaurant(ctx context.Context, actorID, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actorID, id)
	}
	return nil
}

// HealthFacadeStub reports configured store liveness.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// LunchFacadeStub aggregates facade dependencies for HTTP layer tests.
type LunchFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ItemFacadeStub
	NotificationFacadeStub
	RestaurantFacadeStub
	HealthFacadeStub
}
