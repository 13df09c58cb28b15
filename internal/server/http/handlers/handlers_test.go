package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
	"github.com/bluemonkey003/lunchroom/internal/server/http/middleware"
	testhelpers "github.com/bluemonkey003/lunchroom/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, userID int64, body any) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.UserIDContextKey, userID)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodPost, "/api/auth/register", "/api/auth/register", h.Register, 0,
		dto.RegisterRequest{Name: "alice", Email: "alice@corp.io", Password: "pw"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" || resp.User.ID == 0 {
		t.Fatalf("incomplete auth response: %+v", resp)
	}
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	})
	w := performRequest(t, http.MethodPost, "/api/auth/register", "/api/auth/register", h.Register, 0,
		dto.RegisterRequest{Name: "", Email: "bad", Password: ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandlerLoginRejected(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	})
	w := performRequest(t, http.MethodPost, "/api/auth/login", "/api/auth/login", h.Login, 0,
		dto.LoginRequest{Email: "alice@corp.io", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandlerSetRoleForbidden(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		ChangeRoleFn: func(context.Context, int64, int64, model.UserRole) (*model.User, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	w := performRequest(t, http.MethodPatch, "/api/users/:id/role", "/api/users/2/role", h.SetRole, 1,
		dto.RoleUpdateRequest{Role: "admin"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAuthHandlerListUsersForbidden(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		UsersFn: func(context.Context, int64, model.UserFilter) ([]model.User, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	w := performRequest(t, http.MethodGet, "/api/users", "/api/users", h.ListUsers, 2, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestAuthHandlerListUsersFilters(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		UsersFn: func(ctx context.Context, actorID int64, filter model.UserFilter) ([]model.User, error) {
			if filter.Active == nil || *filter.Active {
				t.Fatalf("expected active=false filter, got %+v", filter.Active)
			}
			if filter.Role == nil || *filter.Role != model.RoleEmployee {
				t.Fatalf("expected employee role filter, got %+v", filter.Role)
			}
			return nil, nil
		},
	})
	w := performRequest(t, http.MethodGet, "/api/users", "/api/users?active=false&role=employee", h.ListUsers, 1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandlerListUsersBadRoleFilter(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodGet, "/api/users", "/api/users?role=boss", h.ListUsers, 1, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandlerGetUser(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodGet, "/api/users/:id", "/api/users/7", h.GetUser, 1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != 7 || !resp.IsActive {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandlerGetUserBadID(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodGet, "/api/users/:id", "/api/users/abc", h.GetUser, 1, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAuthHandlerUpdateUser(t *testing.T) {
	name := "New Name"
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodPatch, "/api/users/:id", "/api/users/2", h.UpdateUser, 2,
		dto.UserUpdateRequest{Name: &name})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Name != "New Name" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandlerSetStatusOwnAccount(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		SetStatusFn: func(context.Context, int64, int64, bool) (*model.User, error) {
			return nil, domainErrors.ErrOwnAccount
		},
	})
	inactive := false
	w := performRequest(t, http.MethodPatch, "/api/users/:id/status", "/api/users/1/status", h.SetStatus, 1,
		dto.StatusUpdateRequest{IsActive: &inactive})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self-deactivation must map to 400, got %d", w.Code)
	}
}

func TestAuthHandlerSetStatus(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	inactive := false
	w := performRequest(t, http.MethodPatch, "/api/users/:id/status", "/api/users/2/status", h.SetStatus, 1,
		dto.StatusUpdateRequest{IsActive: &inactive})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.IsActive {
		t.Fatalf("expected deactivated user, got %+v", resp)
	}
}

func TestAuthHandlerResetPasswordTooShort(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{
		ResetPasswordFn: func(context.Context, int64, int64, string) error {
			return domainErrors.ErrPasswordTooShort
		},
	})
	w := performRequest(t, http.MethodPost, "/api/users/:id/reset-password", "/api/users/2/reset-password", h.ResetPassword, 1,
		dto.PasswordResetRequest{NewPassword: "tiny"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password must map to 400, got %d", w.Code)
	}
}

func TestAuthHandlerResetPassword(t *testing.T) {
	h := NewAuthHandler(testhelpers.AuthFacadeStub{})
	w := performRequest(t, http.MethodPost, "/api/users/:id/reset-password", "/api/users/2/reset-password", h.ResetPassword, 1,
		dto.PasswordResetRequest{NewPassword: "longenough"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{})
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", h.Create, 1,
		dto.OrderCreateRequest{RestaurantID: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != string(model.OrderStatusOpen) || resp.Day != "2024-03-15" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOrderHandlerCreateConflict(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		OpenFn: func(context.Context, int64, int64, *time.Time) (*model.OrderView, error) {
			return nil, domainErrors.ErrOpenOrderExists
		},
	})
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", h.Create, 1,
		dto.OrderCreateRequest{RestaurantID: 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate open order must map to 400, got %d", w.Code)
	}
}

func TestOrderHandlerCreateBadDay(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{})
	day := "15.03.2024"
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", h.Create, 1,
		dto.OrderCreateRequest{RestaurantID: 1, Day: &day})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestOrderHandlerCreateForbidden(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		OpenFn: func(context.Context, int64, int64, *time.Time) (*model.OrderView, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	w := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", h.Create, 2,
		dto.OrderCreateRequest{RestaurantID: 1})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestOrderHandlerListRejectsBadStatus(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{})
	w := performRequest(t, http.MethodGet, "/api/orders", "/api/orders?status=PENDING", h.List, 1, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestOrderHandlerGetDetail(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		OrderFn: func(ctx context.Context, orderID int64) (*model.OrderView, []model.OrderItemView, error) {
			view := &model.OrderView{
				Order:          model.Order{ID: orderID, Status: model.OrderStatusOpen},
				RestaurantName: "Thai Garden",
			}
			items := []model.OrderItemView{{OrderItem: model.OrderItem{ID: 9, OrderID: orderID, UserID: 2, ItemName: "pho"}, UserName: "bob"}}
			return view, items, nil
		},
	})
	w := performRequest(t, http.MethodGet, "/api/orders/:id", "/api/orders/5", h.Get, 1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.OrderDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].UserName != "bob" {
		t.Fatalf("unexpected detail: %+v", resp)
	}
}

func TestOrderHandlerCloseMissing(t *testing.T) {
	h := NewOrderHandler(testhelpers.OrderFacadeStub{
		CloseFn: func(context.Context, int64, int64) (*model.OrderView, error) {
			return nil, domainErrors.ErrNotFound
		},
	})
	w := performRequest(t, http.MethodPatch, "/api/orders/:id/close", "/api/orders/9/close", h.Close, 1, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestItemHandlerCreateOnClosedOrder(t *testing.T) {
	h := NewItemHandler(testhelpers.ItemFacadeStub{
		AddFn: func(context.Context, int64, int64, string, *string, *float64) (*model.OrderItemView, error) {
			return nil, domainErrors.ErrOrderClosed
		},
	})
	w := performRequest(t, http.MethodPost, "/api/orders/:id/items", "/api/orders/1/items", h.Create, 2,
		dto.ItemCreateRequest{ItemName: "pho"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("closed order must map to 400, got %d", w.Code)
	}
}

func TestItemHandlerCreateDuplicate(t *testing.T) {
	h := NewItemHandler(testhelpers.ItemFacadeStub{
		AddFn: func(context.Context, int64, int64, string, *string, *float64) (*model.OrderItemView, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	})
	w := performRequest(t, http.MethodPost, "/api/orders/:id/items", "/api/orders/1/items", h.Create, 2,
		dto.ItemCreateRequest{ItemName: "pho"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate item must map to 400, got %d", w.Code)
	}
}

func TestItemHandlerUpdateForbidden(t *testing.T) {
	h := NewItemHandler(testhelpers.ItemFacadeStub{
		UpdateFn: func(context.Context, int64, int64, int64, model.OrderItemPatch) (*model.OrderItemView, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	name := "udon"
	w := performRequest(t, http.MethodPatch, "/api/orders/:id/items/:itemId", "/api/orders/1/items/2", h.Update, 3,
		dto.ItemUpdateRequest{ItemName: &name})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestItemHandlerDelete(t *testing.T) {
	h := NewItemHandler(testhelpers.ItemFacadeStub{})
	w := performRequest(t, http.MethodDelete, "/api/orders/:id/items/:itemId", "/api/orders/1/items/2", h.Delete, 2, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestItemHandlerBadItemID(t *testing.T) {
	h := NewItemHandler(testhelpers.ItemFacadeStub{})
	w := performRequest(t, http.MethodDelete, "/api/orders/:id/items/:itemId", "/api/orders/1/items/abc", h.Delete, 2, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestNotificationHandlerList(t *testing.T) {
	h := NewNotificationHandler(testhelpers.NotificationFacadeStub{
		ListFn: func(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, int64, error) {
			if !unreadOnly {
				t.Fatalf("expected unread filter to be passed through")
			}
			return []model.Notification{{ID: 2, UserID: userID, Type: model.NotificationOrderClosed, Message: "closed"}}, 1, nil
		},
	})
	w := performRequest(t, http.MethodGet, "/api/notifications", "/api/notifications?unread=true", h.List, 1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.NotificationListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.UnreadCount != 1 || len(resp.Notifications) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNotificationHandlerMarkReadForbidden(t *testing.T) {
	h := NewNotificationHandler(testhelpers.NotificationFacadeStub{
		MarkReadFn: func(context.Context, int64, int64) (*model.Notification, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	w := performRequest(t, http.MethodPatch, "/api/notifications/:id/read", "/api/notifications/3/read", h.MarkRead, 1, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestNotificationHandlerMarkAllRead(t *testing.T) {
	h := NewNotificationHandler(testhelpers.NotificationFacadeStub{
		MarkAllReadFn: func(context.Context, int64) (int64, error) { return 4, nil },
	})
	w := performRequest(t, http.MethodPatch, "/api/notifications/read-all", "/api/notifications/read-all", h.MarkAllRead, 1, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp dto.MarkAllReadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Updated != 4 {
		t.Fatalf("expected 4 updated, got %d", resp.Updated)
	}
}

func TestRestaurantHandlerCreate(t *testing.T) {
	h := NewRestaurantHandler(testhelpers.RestaurantFacadeStub{})
	w := performRequest(t, http.MethodPost, "/api/restaurants", "/api/restaurants", h.Create, 1,
		dto.RestaurantCreateRequest{Name: "Thai Garden"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestRestaurantHandlerDeleteMissing(t *testing.T) {
	h := NewRestaurantHandler(testhelpers.RestaurantFacadeStub{
		DeleteFn: func(context.Context, int64, int64) error { return domainErrors.ErrNotFound },
	})
	w := performRequest(t, http.MethodDelete, "/api/restaurants/:id", "/api/restaurants/9", h.Delete, 1, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	ok := NewHealthHandler(testhelpers.HealthFacadeStub{})
	w := performRequest(t, http.MethodGet, "/api/health", "/api/health", ok.Check, 0, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	degraded := NewHealthHandler(testhelpers.HealthFacadeStub{Err: errors.New("db down")})
	w = performRequest(t, http.MethodGet, "/api/health", "/api/health", degraded.Check, 0, nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
