package dto

import (
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// RestaurantCreateRequest adds a vendor to the catalog.
type RestaurantCreateRequest struct {
	Name       string  `json:"name" binding:"required"`
	WebsiteURL string  `json:"website_url"`
	MenuURL    *string `json:"menu_url"`
	ImageURL   *string `json:"image_url"`
}

// RestaurantUpdateRequest carries a partial edit. Absent fields stay as they are.
type RestaurantUpdateRequest struct {
	Name       *string `json:"name"`
	WebsiteURL *string `json:"website_url"`
	MenuURL    *string `json:"menu_url"`
	ImageURL   *string `json:"image_url"`
}

// RestaurantResponse is the vendor record sent over the wire.
type RestaurantResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"website_url"`
	MenuURL    *string   `json:"menu_url,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRestaurantResponse maps a domain vendor onto its wire form.
func NewRestaurantResponse(r *model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		WebsiteURL: r.WebsiteURL,
		MenuURL:    r.MenuURL,
		ImageURL:   r.ImageURL,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
	}
}

// NewRestaurantListResponse maps the catalog listing.
func NewRestaurantListResponse(list []model.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(list))
	for i := range list {
		out = append(out, NewRestaurantResponse(&list[i]))
	}
	return out
}

// Patch converts the request into a domain patch.
func (r RestaurantUpdateRequest) Patch() model.RestaurantPatch {
	return model.RestaurantPatch{Name: r.Name, WebsiteURL: r.WebsiteURL, MenuURL: r.MenuURL, ImageURL: r.ImageURL}
}
