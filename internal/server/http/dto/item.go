package dto

import (
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// ItemCreateRequest submits the caller's line item.
type ItemCreateRequest struct {
	ItemName string   `json:"item_name" binding:"required"`
	Notes    *string  `json:"notes"`
	Price    *float64 `json:"price"`
}

// ItemUpdateRequest carries a partial edit. Absent fields stay as they are.
type ItemUpdateRequest struct {
	ItemName *string  `json:"item_name"`
	Notes    *string  `json:"notes"`
	Price    *float64 `json:"price"`
}

// ItemResponse is the item projection sent over the wire.
type ItemResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	ItemName  string    `json:"item_name"`
	Notes     *string   `json:"notes,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItemResponse maps the item projection onto its wire form.
func NewItemResponse(v *model.OrderItemView) ItemResponse {
	return ItemResponse{
		ID:        v.ID,
		OrderID:   v.OrderID,
		UserID:    v.UserID,
		UserName:  v.UserName,
		ItemName:  v.ItemName,
		Notes:     v.Notes,
		Price:     v.Price,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// NewItemListResponse maps a listing of item projections.
func NewItemListResponse(views []model.OrderItemView) []ItemResponse {
	out := make([]ItemResponse, 0, len(views))
	for i := range views {
		out = append(out, NewItemResponse(&views[i]))
	}
	return out
}

// Patch converts the request into a domain patch.
func (r ItemUpdateRequest) Patch() model.OrderItemPatch {
	return model.OrderItemPatch{ItemName: r.ItemName, Notes: r.Notes, Price: r.Price}
}
