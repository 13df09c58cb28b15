package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
)

// NotificationHandler serves the caller's notification feed.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications with an optional unread filter.
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	list, unread, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationListResponse(list, unread))
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	n, err := h.facade.MarkNotificationRead(c.Request.Context(), id, CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationResponse(n))
}

// MarkAllRead handles PATCH /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.facade.MarkAllNotificationsRead(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}
