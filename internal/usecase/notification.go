package usecase

import (
	"context"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
)

// notificationPageLimit caps a single listing so the feed stays cheap
// even for long-lived accounts.
const notificationPageLimit = 50

// NotificationUseCase serves a user's durable notification feed.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List returns the newest notifications for the user together with the
// total unread count. The count covers the whole feed, not the page.
func (u *NotificationUseCase) List(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, int64, error) {
	list, err := u.notifications.ListByUser(ctx, userID, unreadOnly, notificationPageLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := u.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

// MarkRead flips a single notification to read. Only the recipient may
// do so.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id, userID int64) (*model.Notification, error) {
	n, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return u.notifications.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification of the user as read and
// reports how many were affected.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return u.notifications.MarkAllRead(ctx, userID)
}
