package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
	pkgAuth "github.com/bluemonkey003/lunchroom/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management. VerifyToken
// is the single identity-verification capability shared by the HTTP
// middleware and the realtime handshake, so both entry points reject
// the same invalid credentials.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || password == "" || !strings.Contains(email, "@") {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, name, email, hash, model.RoleEmployee)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// VerifyToken resolves a credential to an existing user. A valid
// signature over a deleted user is still rejected.
func (u *AuthUseCase) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, pkgAuth.ErrInvalidToken
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.ErrInvalidToken
		}
		return nil, err
	}
	return usr, nil
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// ListUsers returns registered users, optionally narrowed by active
// status or role. Only admins may list.
func (u *AuthUseCase) ListUsers(ctx context.Context, actorID int64, filter model.UserFilter) ([]model.User, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return u.users.List(ctx, filter)
}

// UpdateProfile edits a user's profile. Users may edit themselves;
// admins may edit anyone. A supplied password replaces the current one.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, actorID, userID int64, name, password *string) (*model.User, error) {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actorID != userID && !actor.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}

	var patch model.UserPatch
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, domainErrors.ErrNameRequired
		}
		patch.Name = &trimmed
	}

	if password != nil && *password != "" {
		hash, err := u.hasher.Hash(*password)
		if err != nil {
			return nil, err
		}
		if err := u.users.UpdatePassword(ctx, userID, hash); err != nil {
			return nil, err
		}
	}

	return u.users.Update(ctx, userID, patch)
}

// SetRole changes a user's role. Only admins may do this, and an admin
// cannot revoke their own admin role.
func (u *AuthUseCase) SetRole(ctx context.Context, actorID, userID int64, role model.UserRole) (*model.User, error) {
	if role != model.RoleEmployee && role != model.RoleAdmin {
		return nil, domainErrors.ErrInvalidRole
	}
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if actorID == userID && role != model.RoleAdmin {
		return nil, domainErrors.ErrOwnAccount
	}
	return u.users.UpdateRole(ctx, userID, role)
}

// SetActive activates or deactivates an account. Only admins may do
// this, and an admin cannot deactivate their own account.
func (u *AuthUseCase) SetActive(ctx context.Context, actorID, userID int64, active bool) (*model.User, error) {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if actorID == userID && !active {
		return nil, domainErrors.ErrOwnAccount
	}
	return u.users.SetActive(ctx, userID, active)
}

// ResetPassword sets a new password on a user's behalf. Admin only.
func (u *AuthUseCase) ResetPassword(ctx context.Context, actorID, userID int64, newPassword string) error {
	if err := u.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if len(newPassword) < 6 {
		return domainErrors.ErrPasswordTooShort
	}
	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, hash)
}

func (u *AuthUseCase) requireAdmin(ctx context.Context, actorID int64) error {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domainErrors.ErrForbidden
	}
	return nil
}
