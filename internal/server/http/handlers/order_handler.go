package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
)

// OrderHandler manages order window endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	var day *time.Time
	if req.Day != nil {
		parsed, err := time.Parse(dto.DayFormat, *req.Day)
		if err != nil {
			respondError(c, domainErrors.ErrInvalidDate)
			return
		}
		day = &parsed
	}

	view, err := h.facade.OpenOrder(c.Request.Context(), CurrentUserID(c), req.RestaurantID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(view))
}

// List handles GET /api/orders with optional status and date filters.
func (h *OrderHandler) List(c *gin.Context) {
	var filter model.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if status != model.OrderStatusOpen && status != model.OrderStatusClosed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be OPEN or CLOSED"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dto.DayFormat, raw)
		if err != nil {
			respondError(c, domainErrors.ErrInvalidDate)
			return
		}
		filter.Day = &parsed
	}

	views, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(views))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	view, items, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderDetailResponse{
		OrderResponse: dto.NewOrderResponse(view),
		Items:         dto.NewItemListResponse(items),
	})
}

// Close handles PATCH /api/orders/:id/close.
func (h *OrderHandler) Close(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	view, err := h.facade.CloseOrder(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(view))
}
