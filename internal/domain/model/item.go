package model

import "time"

// OrderItem is a single participant's line on an order. Each user holds
// at most one item per order, enforced by the store.
type OrderItem struct {
	ID        int64
	OrderID   int64
	UserID    int64
	ItemName  string
	Notes     *string
	Price     *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItemView is the item projection with the owner's name joined in.
type OrderItemView struct {
	OrderItem
	UserName string
}

// OrderItemPatch carries a partial update. Nil fields keep their prior value.
type OrderItemPatch struct {
	ItemName *string
	Notes    *string
	Price    *float64
}
