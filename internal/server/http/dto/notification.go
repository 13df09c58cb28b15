package dto

import (
	"time"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// NotificationResponse is a single feed entry.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse is the feed page plus the total unread count.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// MarkAllReadResponse reports how many entries a bulk mark affected.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// NewNotificationResponse maps a domain notification onto its wire form.
func NewNotificationResponse(n *model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// NewNotificationListResponse maps a feed page.
func NewNotificationListResponse(list []model.Notification, unread int64) NotificationListResponse {
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, NewNotificationResponse(&list[i]))
	}
	return NotificationListResponse{Notifications: out, UnreadCount: unread}
}
