package model

import "time"

// NotificationType classifies lifecycle notifications.
type NotificationType string

const (
	NotificationOrderOpened NotificationType = "order-opened"
	NotificationOrderClosed NotificationType = "order-closed"

	// NotificationItemAdded is reserved for per-item rows. Item events
	// currently go out over the realtime channel only; no durable row
	// is written for them.
	NotificationItemAdded NotificationType = "item-added"
)

// Notification is the durable backstop for realtime delivery: a user who
// missed the push can always pull it later.
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}
