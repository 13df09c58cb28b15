package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
)

// ItemHandler manages per-order item endpoints.
type ItemHandler struct {
	facade ItemFacade
}

// NewItemHandler constructs ItemHandler.
func NewItemHandler(facade ItemFacade) *ItemHandler {
	return &ItemHandler{facade: facade}
}

// Create handles POST /api/orders/:id/items.
func (h *ItemHandler) Create(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	var req dto.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	view, err := h.facade.AddItem(c.Request.Context(), orderID, CurrentUserID(c), req.ItemName, req.Notes, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewItemResponse(view))
}

// Update handles PATCH /api/orders/:id/items/:itemId.
func (h *ItemHandler) Update(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	var req dto.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	view, err := h.facade.UpdateItem(c.Request.Context(), orderID, itemID, CurrentUserID(c), req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewItemResponse(view))
}

// Delete handles DELETE /api/orders/:id/items/:itemId.
func (h *ItemHandler) Delete(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	if err := h.facade.RemoveItem(c.Request.Context(), orderID, itemID, CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
