package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Seed inserts a user directly, bypassing uniqueness checks. Seeded
// users are active unless the test flips the flag afterwards.
func (s *UserRepositoryStub) Seed(u *model.User) *model.User {
	if u.ID == 0 {
		u.ID = s.Next
		s.Next++
	} else if u.ID >= s.Next {
		s.Next = u.ID + 1
	}
	u.IsActive = true
	s.Users[u.Email] = u
	s.ByID[u.ID] = u
	return u
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.UserRole) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, Role: role, IsActive: true, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns matching users ordered by identifier.
func (s *UserRepositoryStub) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		if filter.Active != nil && u.IsActive != *filter.Active {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update merges the profile patch into a stored user.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	return user, nil
}

// UpdateRole changes a stored user's role.
func (s *UserRepositoryStub) UpdateRole(ctx context.Context, id int64, role model.UserRole) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Role = role
	return user, nil
}

// SetActive flips a stored user's active flag.
func (s *UserRepositoryStub) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.IsActive = active
	return user, nil
}

// UpdatePassword replaces a stored user's password hash.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, int64, int64, time.Time) (*model.OrderView, error)
	GetByIDFn func(context.Context, int64) (*model.Order, error)
	GetViewFn func(context.Context, int64) (*model.OrderView, error)
	ListFn    func(context.Context, model.OrderFilter) ([]model.OrderView, error)
	CloseFn   func(context.Context, int64) (*model.OrderView, []int64, bool, error)

	Created []struct {
		RestaurantID int64
		CreatedBy    int64
		Day          time.Time
	}
	Orders []model.OrderView

	// Participants is returned by the default Close when it performs
	// the transition.
	Participants []int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, restaurantID, createdBy int64, day time.Time) (*model.OrderView, error) {
	s.Created = append(s.Created, struct {
		RestaurantID int64
		CreatedBy    int64
		Day          time.Time
	}{restaurantID, createdBy, day})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, restaurantID, createdBy, day)
	}
	view := &model.OrderView{
		Order: model.Order{ID: 1, RestaurantID: restaurantID, Day: day, CreatedBy: createdBy, Status: model.OrderStatusOpen},
	}
	return view, nil
}

// GetByID returns the matching stored order or delegates to override.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, v := range s.Orders {
		if v.ID == id {
			order := v.Order
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetView returns the matching stored projection or delegates to override.
func (s *OrderRepositoryStub) GetView(ctx context.Context, id int64) (*model.OrderView, error) {
	if s.GetViewFn != nil {
		return s.GetViewFn(ctx, id)
	}
	for _, v := range s.Orders {
		if v.ID == id {
			view := v
			return &view, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, nil
}

// Close delegates to override or flips the stored order once,
// snapshotting Participants on the transition.
func (s *OrderRepositoryStub) Close(ctx context.Context, id int64) (*model.OrderView, []int64, bool, error) {
	if s.CloseFn != nil {
		return s.CloseFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			transitioned := s.Orders[i].Status == model.OrderStatusOpen
			s.Orders[i].Status = model.OrderStatusClosed
			view := s.Orders[i]
			if !transitioned {
				return &view, nil, false, nil
			}
			return &view, s.Participants, true, nil
		}
	}
	return nil, nil, false, domainErrors.ErrNotFound
}

// OrderItemRepositoryStub keeps items in-memory with function overrides.
type OrderItemRepositoryStub struct {
	CreateFn func(context.Context, int64, int64, string, *string, *float64) (*model.OrderItemView, error)
	UpdateFn func(context.Context, int64, model.OrderItemPatch) (*model.OrderItemView, error)
	DeleteFn func(context.Context, int64) error

	Items map[int64]*model.OrderItemView
	Next  int64
}

// NewOrderItemRepositoryStub constructs stub repository with initialized map.
func NewOrderItemRepositoryStub() *OrderItemRepositoryStub {
	return &OrderItemRepositoryStub{Items: make(map[int64]*model.OrderItemView), Next: 1}
}

// Create stores an item enforcing the one-item-per-user rule.
func (s *OrderItemRepositoryStub) Create(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, userID, itemName, notes, price)
	}
	for _, it := range s.Items {
		if it.OrderID == orderID && it.UserID == userID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	view := &model.OrderItemView{
		OrderItem: model.OrderItem{ID: s.Next, OrderID: orderID, UserID: userID, ItemName: itemName, Notes: notes, Price: price, CreatedAt: time.Now()},
		UserName:  "user",
	}
	s.Next++
	s.Items[view.ID] = view
	return view, nil
}

// GetByID fetches a stored item or returns not found.
func (s *OrderItemRepositoryStub) GetByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	if it, ok := s.Items[id]; ok {
		item := it.OrderItem
		return &item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update merges the patch into a stored item.
func (s *OrderItemRepositoryStub) Update(ctx context.Context, id int64, patch model.OrderItemPatch) (*model.OrderItemView, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	it, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.ItemName != nil {
		it.ItemName = *patch.ItemName
	}
	if patch.Notes != nil {
		it.Notes = patch.Notes
	}
	if patch.Price != nil {
		it.Price = patch.Price
	}
	return it, nil
}

// Delete removes a stored item.
func (s *OrderItemRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}

// ListByOrder returns stored items for the order sorted by identifier.
func (s *OrderItemRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItemView, error) {
	out := make([]model.OrderItemView, 0)
	for _, it := range s.Items {
		if it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// NotificationRepositoryStub stores notifications in-memory for tests.
type NotificationRepositoryStub struct {
	CreateFn func(context.Context, int64, model.NotificationType, string) (*model.Notification, error)

	Items map[int64]*model.Notification
	Next  int64
	Err   error
}

// NewNotificationRepositoryStub constructs stub repository with initialized map.
func NewNotificationRepositoryStub() *NotificationRepositoryStub {
	return &NotificationRepositoryStub{Items: make(map[int64]*model.Notification), Next: 1}
}

// Create stores a notification or delegates to override.
func (s *NotificationRepositoryStub) Create(ctx context.Context, userID int64, typ model.NotificationType, message string) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, typ, message)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	n := &model.Notification{ID: s.Next, UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	s.Next++
	s.Items[n.ID] = n
	return n, nil
}

// GetByID fetches a stored notification or returns not found.
func (s *NotificationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	if n, ok := s.Items[id]; ok {
		return n, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns newest-first notifications for the user.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Notification, 0)
	for _, n := range s.Items {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountUnread counts unread notifications of the user.
func (s *NotificationRepositoryStub) CountUnread(ctx context.Context, userID int64) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var count int64
	for _, n := range s.Items {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips a stored notification to read.
func (s *NotificationRepositoryStub) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	n, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	n.Read = true
	return n, nil
}

// MarkAllRead flips all of the user's notifications and reports the count.
func (s *NotificationRepositoryStub) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range s.Items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

// RestaurantRepositoryStub stores vendors in-memory for tests.
type RestaurantRepositoryStub struct {
	Items map[int64]*model.Restaurant
	Next  int64
	Err   error
}

// NewRestaurantRepositoryStub constructs stub repository with initialized map.
func NewRestaurantRepositoryStub() *RestaurantRepositoryStub {
	return &RestaurantRepositoryStub{Items: make(map[int64]*model.Restaurant), Next: 1}
}

// Create stores a vendor record.
func (s *RestaurantRepositoryStub) Create(ctx context.Context, name, websiteURL string, menuURL, imageURL *string, createdBy int64) (*model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	r := &model.Restaurant{ID: s.Next, Name: name, WebsiteURL: websiteURL, MenuURL: menuURL, ImageURL: imageURL, CreatedBy: createdBy, CreatedAt: time.Now()}
	s.Next++
	s.Items[r.ID] = r
	return r, nil
}

// GetByID fetches a stored vendor or returns not found.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if r, ok := s.Items[id]; ok {
		return r, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the stored vendors ordered by name.
func (s *RestaurantRepositoryStub) List(ctx context.Context) ([]model.Restaurant, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Restaurant, 0, len(s.Items))
	for _, r := range s.Items {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

// Update merges the patch into a stored vendor.
func (s *RestaurantRepositoryStub) Update(ctx context.Context, id int64, patch model.RestaurantPatch) (*model.Restaurant, error) {
	r, ok := s.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.WebsiteURL != nil {
		r.WebsiteURL = *patch.WebsiteURL
	}
	if patch.MenuURL != nil {
		r.MenuURL = patch.MenuURL
	}
	if patch.ImageURL != nil {
		r.ImageURL = patch.ImageURL
	}
	return r, nil
}

// Delete removes a stored vendor.
func (s *RestaurantRepositoryStub) Delete(ctx context.Context, id int64) error {
	if _, ok := s.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Items, id)
	return nil
}
