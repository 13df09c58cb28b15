package event

import "github.com/bluemonkey003/lunchroom/internal/domain/model"

// Event is the closed set of domain events produced by mutations.
// Each variant carries a fixed payload; there is no open field bag.
type Event interface {
	isEvent()
}

// OrderOpened is emitted once when an order window is created.
// ActorID identifies the creator so fan-out can exclude them.
type OrderOpened struct {
	Order   model.OrderView
	ActorID int64
}

// OrderClosed is emitted once per OPEN to CLOSED transition, never on
// an idempotent re-close. ParticipantIDs holds the distinct users with
// an item on the order at close time.
type OrderClosed struct {
	Order          model.OrderView
	ParticipantIDs []int64
}

// ItemAdded is emitted when a user submits their line item.
type ItemAdded struct {
	OrderID int64
	Item    model.OrderItemView
}

// ItemUpdated is emitted when an item owner edits their line.
type ItemUpdated struct {
	OrderID int64
	Item    model.OrderItemView
}

// ItemDeleted is emitted when an item owner withdraws their line.
type ItemDeleted struct {
	OrderID int64
	ItemID  int64
	UserID  int64
}

func (OrderOpened) isEvent() {}
func (OrderClosed) isEvent() {}
func (ItemAdded) isEvent()   {}
func (ItemUpdated) isEvent() {}
func (ItemDeleted) isEvent() {}
