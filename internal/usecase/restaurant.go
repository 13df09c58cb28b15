package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
)

// RestaurantUseCase manages the vendor catalog. Reads are open to any
// authenticated user, writes are admin-only.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	users       repository.UserRepository
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository, users repository.UserRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants, users: users}
}

func (u *RestaurantUseCase) requireAdmin(ctx context.Context, actorID int64) error {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domainErrors.ErrForbidden
	}
	return nil
}

// Create adds a vendor to the catalog.
func (u *RestaurantUseCase) Create(ctx context.Context, actorID int64, name, websiteURL string, menuURL, imageURL *string) (*model.Restaurant, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrNameRequired
	}
	return u.restaurants.Create(ctx, name, strings.TrimSpace(websiteURL), menuURL, imageURL, actorID)
}

// Get returns a single vendor.
func (u *RestaurantUseCase) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	return u.restaurants.GetByID(ctx, id)
}

// List returns the whole catalog ordered by name.
func (u *RestaurantUseCase) List(ctx context.Context) ([]model.Restaurant, error) {
	return u.restaurants.List(ctx)
}

// Update merges the patch into a vendor record.
func (u *RestaurantUseCase) Update(ctx context.Context, actorID, id int64, patch model.RestaurantPatch) (*model.Restaurant, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if trimmed == "" {
			return nil, domainErrors.ErrNameRequired
		}
		patch.Name = &trimmed
	}
	return u.restaurants.Update(ctx, id, patch)
}

// Delete removes a vendor from the catalog.
func (u *RestaurantUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return u.restaurants.Delete(ctx, id)
}
