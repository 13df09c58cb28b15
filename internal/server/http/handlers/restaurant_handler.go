package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
)

// RestaurantHandler manages the vendor catalog endpoints.
type RestaurantHandler struct {
	facade RestaurantFacade
}

// NewRestaurantHandler constructs RestaurantHandler.
func NewRestaurantHandler(facade RestaurantFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.RestaurantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	r, err := h.facade.CreateRestaurant(c.Request.Context(), CurrentUserID(c), req.Name, req.WebsiteURL, req.MenuURL, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRestaurantResponse(r))
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	list, err := h.facade.Restaurants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantListResponse(list))
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	r, err := h.facade.Restaurant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantResponse(r))
}

// Update handles PATCH /api/restaurants/:id.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	var req dto.RestaurantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	r, err := h.facade.UpdateRestaurant(c.Request.Context(), CurrentUserID(c), id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantResponse(r))
}

// Delete handles DELETE /api/restaurants/:id.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	if err := h.facade.DeleteRestaurant(c.Request.Context(), CurrentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
