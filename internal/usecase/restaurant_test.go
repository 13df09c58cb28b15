package usecase

import (
	"context"
	"testing"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	testhelpers "github.com/bluemonkey003/lunchroom/internal/test"
)

func newRestaurantUseCase() (*RestaurantUseCase, *testhelpers.RestaurantRepositoryStub, *model.User, *model.User) {
	users := testhelpers.NewUserRepositoryStub()
	admin := users.Seed(&model.User{Name: "root", Email: "root@corp.io", Role: model.RoleAdmin})
	worker := users.Seed(&model.User{Name: "erin", Email: "erin@corp.io", Role: model.RoleEmployee})
	repo := testhelpers.NewRestaurantRepositoryStub()
	return NewRestaurantUseCase(repo, users), repo, admin, worker
}

func TestRestaurantUseCaseCreate(t *testing.T) {
	uc, _, admin, worker := newRestaurantUseCase()
	ctx := context.Background()

	if _, err := uc.Create(ctx, worker.ID, "Thai Garden", "https://thai.example", nil, nil); err != domainErrors.ErrForbidden {
		t.Fatalf("non-admin create: expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Create(ctx, admin.ID, "  ", "", nil, nil); err != domainErrors.ErrNameRequired {
		t.Fatalf("blank name: expected ErrNameRequired, got %v", err)
	}

	r, err := uc.Create(ctx, admin.ID, " Thai Garden ", "https://thai.example", nil, nil)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if r.Name != "Thai Garden" {
		t.Fatalf("name not trimmed: %q", r.Name)
	}
	if r.CreatedBy != admin.ID {
		t.Fatalf("creator not recorded: %d", r.CreatedBy)
	}
}

func TestRestaurantUseCaseUpdateAndDelete(t *testing.T) {
	uc, repo, admin, worker := newRestaurantUseCase()
	ctx := context.Background()

	r, err := uc.Create(ctx, admin.ID, "Sushi Ya", "https://sushi.example", nil, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Sushi Ya Honten"
	if _, err := uc.Update(ctx, worker.ID, r.ID, model.RestaurantPatch{Name: &name}); err != domainErrors.ErrForbidden {
		t.Fatalf("non-admin update: expected ErrForbidden, got %v", err)
	}
	updated, err := uc.Update(ctx, admin.ID, r.ID, model.RestaurantPatch{Name: &name})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.WebsiteURL != "https://sushi.example" {
		t.Fatalf("untouched field was lost: %q", updated.WebsiteURL)
	}

	if err := uc.Delete(ctx, worker.ID, r.ID); err != domainErrors.ErrForbidden {
		t.Fatalf("non-admin delete: expected ErrForbidden, got %v", err)
	}
	if err := uc.Delete(ctx, admin.ID, r.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, ok := repo.Items[r.ID]; ok {
		t.Fatalf("vendor still stored after delete")
	}
	if err := uc.Delete(ctx, admin.ID, r.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestRestaurantUseCaseReadsOpenToAll(t *testing.T) {
	uc, _, admin, _ := newRestaurantUseCase()
	ctx := context.Background()

	if _, err := uc.Create(ctx, admin.ID, "Banh Mi Cart", "", nil, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one vendor, got %d", len(list))
	}
	if _, err := uc.Get(ctx, list[0].ID); err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if _, err := uc.Get(ctx, 99); err != domainErrors.ErrNotFound {
		t.Fatalf("missing vendor: expected ErrNotFound, got %v", err)
	}
}
