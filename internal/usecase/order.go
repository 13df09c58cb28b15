package usecase

import (
	"context"
	"time"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
	"github.com/bluemonkey003/lunchroom/internal/event"
)

// OrderUseCase owns the order window state machine: OPEN at creation,
// a single OPEN to CLOSED transition, and nothing after that.
type OrderUseCase struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
	users  repository.UserRepository
	events event.Publisher
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, items repository.OrderItemRepository, users repository.UserRepository, events event.Publisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items, users: users, events: events, now: time.Now}
}

// Open creates today's (or the given day's) order window. Only admins
// may open one, and the store guarantees at most one OPEN order per
// day. The OrderOpened event is published only after the insert
// committed.
func (u *OrderUseCase) Open(ctx context.Context, actorID, restaurantID int64, day *time.Time) (*model.OrderView, error) {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}

	bucket := model.DayOf(u.now())
	if day != nil {
		bucket = model.DayOf(*day)
	}

	view, err := u.orders.Create(ctx, restaurantID, actorID, bucket)
	if err != nil {
		return nil, err
	}

	u.events.Publish(event.OrderOpened{Order: *view, ActorID: actorID})
	return view, nil
}

// Close transitions the order to CLOSED. Closing an already CLOSED
// order is an idempotent no-op that returns the current state; the
// OrderClosed event fires only for the call that actually performed
// the transition, so retries never repeat the fan-out. The store takes
// the participant snapshot atomically with the flip.
func (u *OrderUseCase) Close(ctx context.Context, actorID, orderID int64) (*model.OrderView, error) {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}

	view, participants, transitioned, err := u.orders.Close(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return view, nil
	}

	u.events.Publish(event.OrderClosed{Order: *view, ParticipantIDs: participants})
	return view, nil
}

// List returns order projections sorted by day descending.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.OrderView, error) {
	return u.orders.List(ctx, filter)
}

// Get returns one order projection together with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.OrderView, []model.OrderItemView, error) {
	view, err := u.orders.GetView(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := u.items.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return view, items, nil
}
