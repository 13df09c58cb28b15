package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	testhelpers "github.com/bluemonkey003/lunchroom/internal/test"
)

func TestNotificationUseCaseList(t *testing.T) {
	repo := testhelpers.NewNotificationRepositoryStub()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, 1, model.NotificationOrderOpened, "lunch is on"); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	if _, err := repo.Create(ctx, 2, model.NotificationOrderClosed, "someone else's"); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if _, err := repo.MarkRead(ctx, 1); err != nil {
		t.Fatalf("seeding read state: %v", err)
	}

	uc := NewNotificationUseCase(repo)
	list, unread, err := uc.List(ctx, 1, false)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(list))
	}
	if list[0].ID < list[1].ID {
		t.Fatalf("expected newest first ordering")
	}
	if unread != 2 {
		t.Fatalf("expected 2 unread, got %d", unread)
	}

	onlyUnread, _, err := uc.List(ctx, 1, true)
	if err != nil {
		t.Fatalf("unread list returned error: %v", err)
	}
	if len(onlyUnread) != 2 {
		t.Fatalf("expected 2 unread entries, got %d", len(onlyUnread))
	}
}

func TestNotificationUseCaseMarkRead(t *testing.T) {
	repo := testhelpers.NewNotificationRepositoryStub()
	ctx := context.Background()
	mine, err := repo.Create(ctx, 1, model.NotificationOrderClosed, "window closed")
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}
	theirs, err := repo.Create(ctx, 2, model.NotificationOrderClosed, "window closed")
	if err != nil {
		t.Fatalf("seeding: %v", err)
	}

	uc := NewNotificationUseCase(repo)
	if _, err := uc.MarkRead(ctx, theirs.ID, 1); err != domainErrors.ErrForbidden {
		t.Fatalf("foreign notification: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.MarkRead(ctx, 99, 1); err != domainErrors.ErrNotFound {
		t.Fatalf("missing notification: expected ErrNotFound, got %v", err)
	}

	n, err := uc.MarkRead(ctx, mine.ID, 1)
	if err != nil {
		t.Fatalf("mark read returned error: %v", err)
	}
	if !n.Read {
		t.Fatalf("notification not marked read")
	}
}

func TestNotificationUseCaseMarkAllRead(t *testing.T) {
	repo := testhelpers.NewNotificationRepositoryStub()
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if _, err := repo.Create(ctx, 1, model.NotificationItemAdded, "item landed"); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	uc := NewNotificationUseCase(repo)
	count, err := uc.MarkAllRead(ctx, 1)
	if err != nil {
		t.Fatalf("mark all returned error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 affected, got %d", count)
	}

	_, unread, err := uc.List(ctx, 1, false)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected zero unread after mark all, got %d", unread)
	}
}
