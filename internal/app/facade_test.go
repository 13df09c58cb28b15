package app

import (
	"context"
	"testing"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/storage/postgres"
	testhelpers "github.com/bluemonkey003/lunchroom/internal/test"
	"github.com/bluemonkey003/lunchroom/internal/usecase"
)

func newFacade() (*LunchFacade, *testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.PublisherStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	orderRepo := &testhelpers.OrderRepositoryStub{}
	itemRepo := testhelpers.NewOrderItemRepositoryStub()
	events := &testhelpers.PublisherStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo, itemRepo, userRepo, events)
	itemUC := usecase.NewItemUseCase(orderRepo, itemRepo, events)

	notificationUC := usecase.NewNotificationUseCase(testhelpers.NewNotificationRepositoryStub())
	restaurantUC := usecase.NewRestaurantUseCase(testhelpers.NewRestaurantRepositoryStub(), userRepo)

	facade := NewLunchFacade(authUC, orderUC, itemUC, notificationUC, restaurantUC, &postgres.Storage{})
	return facade, userRepo, orderRepo, events
}

func TestLunchFacadeAuth(t *testing.T) {
	facade, users, _, _ := newFacade()
	ctx := context.Background()

	user, token, err := facade.Register(ctx, "alice", "alice@corp.io", "pw")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if _, err := users.GetByEmail(ctx, "alice@corp.io"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	verified, err := facade.VerifyToken(ctx, "token")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if verified.ID != user.ID {
		t.Fatalf("verify resolved wrong user: %d", verified.ID)
	}
}

func TestLunchFacadeOrderFlow(t *testing.T) {
	facade, users, orderRepo, events := newFacade()
	ctx := context.Background()
	admin := users.Seed(&model.User{Name: "root", Email: "root@corp.io", Role: model.RoleAdmin})
	worker := users.Seed(&model.User{Name: "erin", Email: "erin@corp.io", Role: model.RoleEmployee})

	view, err := facade.OpenOrder(ctx, admin.ID, 1, nil)
	if err != nil {
		t.Fatalf("open returned error: %v", err)
	}
	orderRepo.Orders = []model.OrderView{*view}

	item, err := facade.AddItem(ctx, view.ID, worker.ID, "pho", nil, nil)
	if err != nil {
		t.Fatalf("add item returned error: %v", err)
	}
	if _, err := facade.AddItem(ctx, view.ID, worker.ID, "more pho", nil, nil); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("second item: expected ErrAlreadyExists, got %v", err)
	}

	if err := facade.RemoveItem(ctx, view.ID, item.ID, admin.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("admin removing another user's item: expected ErrForbidden, got %v", err)
	}

	closed, err := facade.CloseOrder(ctx, admin.ID, view.ID)
	if err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if closed.Status != model.OrderStatusClosed {
		t.Fatalf("expected CLOSED, got %q", closed.Status)
	}
	if len(events.Events) != 3 {
		t.Fatalf("expected open+add+close events, got %d", len(events.Events))
	}
}
