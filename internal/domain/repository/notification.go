package repository

import (
	"context"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
)

// NotificationRepository describes persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, userID int64, typ model.NotificationType, message string) (*model.Notification, error)
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}
