package model

import "time"

// Restaurant is a vendor an order window can be opened against.
// Images live in external storage; only the URL is kept here.
type Restaurant struct {
	ID         int64
	Name       string
	WebsiteURL string
	MenuURL    *string
	ImageURL   *string
	CreatedBy  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestaurantPatch carries a partial update. Nil fields keep their prior value.
type RestaurantPatch struct {
	Name       *string
	WebsiteURL *string
	MenuURL    *string
	ImageURL   *string
}
