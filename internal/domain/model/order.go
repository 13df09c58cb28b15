package model

import "time"

// OrderStatus describes the order window lifecycle.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "OPEN"
	OrderStatusClosed OrderStatus = "CLOSED"
)

// Order is a shared order window against a restaurant for one calendar day.
// At most one OPEN order may exist per day, enforced by the store.
type Order struct {
	ID           int64
	RestaurantID int64
	Day          time.Time
	CreatedBy    int64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderView is the read-side projection of an order with joined names.
type OrderView struct {
	Order
	RestaurantName string
	CreatorName    string
}

// OrderFilter narrows order listings. Nil fields match everything.
type OrderFilter struct {
	Status *OrderStatus
	Day    *time.Time
}

// DayOf truncates a timestamp to its UTC calendar day bucket.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
