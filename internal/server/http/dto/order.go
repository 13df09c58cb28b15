package dto

import (
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// DayFormat is the wire representation of an order's calendar day.
const DayFormat = "2006-01-02"

// OrderCreateRequest opens an order window. Day is optional and
// defaults to today.
type OrderCreateRequest struct {
	RestaurantID int64   `json:"restaurant_id" binding:"required"`
	Day          *string `json:"day"`
}

// OrderResponse is the order projection sent over the wire.
type OrderResponse struct {
	ID             int64     `json:"id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Day            string    `json:"day"`
	Status         string    `json:"status"`
	CreatedBy      int64     `json:"created_by"`
	CreatorName    string    `json:"creator_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// OrderDetailResponse is a single order together with its items.
type OrderDetailResponse struct {
	OrderResponse
	Items []ItemResponse `json:"items"`
}

// NewOrderResponse maps the order projection onto its wire form.
func NewOrderResponse(v *model.OrderView) OrderResponse {
	return OrderResponse{
		ID:             v.ID,
		RestaurantID:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		Day:            v.Day.Format(DayFormat),
		Status:         string(v.Status),
		CreatedBy:      v.CreatedBy,
		CreatorName:    v.CreatorName,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// NewOrderListResponse maps a listing of order projections.
func NewOrderListResponse(views []model.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for i := range views {
		out = append(out, NewOrderResponse(&views[i]))
	}
	return out
}
