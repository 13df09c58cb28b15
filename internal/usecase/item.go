package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
	"github.com/bluemonkey003/lunchroom/internal/event"
)

// ItemUseCase owns per-order item submissions: one item per user per
// order, mutations gated on the owner and on the window being OPEN.
type ItemUseCase struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
	events event.Publisher
}

// NewItemUseCase constructs ItemUseCase.
func NewItemUseCase(orders repository.OrderRepository, items repository.OrderItemRepository, events event.Publisher) *ItemUseCase {
	return &ItemUseCase{orders: orders, items: items, events: events}
}

func (u *ItemUseCase) openOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == model.OrderStatusClosed {
		return nil, domainErrors.ErrOrderClosed
	}
	return order, nil
}

// Add submits the user's line item. The (order, user) uniqueness is
// enforced by the store insert, not the preceding read, so concurrent
// duplicate submissions resolve to exactly one winner.
func (u *ItemUseCase) Add(ctx context.Context, orderID, userID int64, itemName string, notes *string, price *float64) (*model.OrderItemView, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, domainErrors.ErrItemNameRequired
	}
	if price != nil && *price < 0 {
		return nil, domainErrors.ErrNegativePrice
	}

	if _, err := u.openOrder(ctx, orderID); err != nil {
		return nil, err
	}

	view, err := u.items.Create(ctx, orderID, userID, itemName, notes, price)
	if err != nil {
		return nil, err
	}

	u.events.Publish(event.ItemAdded{OrderID: orderID, Item: *view})
	return view, nil
}

// Update merges the supplied fields into the caller's item. Ownership
// gates the edit: even an admin cannot touch another user's line.
func (u *ItemUseCase) Update(ctx context.Context, orderID, itemID, userID int64, patch model.OrderItemPatch) (*model.OrderItemView, error) {
	if patch.ItemName != nil {
		trimmed := strings.TrimSpace(*patch.ItemName)
		if trimmed == "" {
			return nil, domainErrors.ErrItemNameRequired
		}
		patch.ItemName = &trimmed
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domainErrors.ErrNegativePrice
	}

	if _, err := u.openOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if err := u.authorize(ctx, orderID, itemID, userID); err != nil {
		return nil, err
	}

	view, err := u.items.Update(ctx, itemID, patch)
	if err != nil {
		return nil, err
	}

	u.events.Publish(event.ItemUpdated{OrderID: orderID, Item: *view})
	return view, nil
}

// Remove deletes the caller's item from the order.
func (u *ItemUseCase) Remove(ctx context.Context, orderID, itemID, userID int64) error {
	if _, err := u.openOrder(ctx, orderID); err != nil {
		return err
	}
	if err := u.authorize(ctx, orderID, itemID, userID); err != nil {
		return err
	}

	if err := u.items.Delete(ctx, itemID); err != nil {
		return err
	}

	u.events.Publish(event.ItemDeleted{OrderID: orderID, ItemID: itemID, UserID: userID})
	return nil
}

// List returns the order's items sorted by creation time ascending.
func (u *ItemUseCase) List(ctx context.Context, orderID int64) ([]model.OrderItemView, error) {
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.items.ListByOrder(ctx, orderID)
}

// authorize loads the item and checks that it belongs to the order and
// is owned by the acting user.
func (u *ItemUseCase) authorize(ctx context.Context, orderID, itemID, userID int64) error {
	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OrderID != orderID {
		return domainErrors.ErrNotFound
	}
	if item.UserID != userID {
		return domainErrors.ErrForbidden
	}
	return nil
}
