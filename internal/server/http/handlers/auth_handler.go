package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
	"github.com/bluemonkey003/lunchroom/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and user administration.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, valid email, and password are required"})
		default:
			respondError(c, err)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers handles GET /api/users. Admin only; supports ?active= and
// ?role= filters.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	var filter model.UserFilter
	if raw, ok := c.GetQuery("active"); ok {
		active := raw == "true"
		filter.Active = &active
	}
	if raw, ok := c.GetQuery("role"); ok {
		role := model.UserRole(raw)
		if role != model.RoleEmployee && role != model.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role filter"})
			return
		}
		filter.Role = &role
	}

	users, err := h.facade.Users(c.Request.Context(), CurrentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/users/:id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user, err := h.facade.User(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateUser handles PATCH /api/users/:id.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), CurrentUserID(c), userID, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SetStatus handles PATCH /api/users/:id/status.
func (h *AuthHandler) SetStatus(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, err := h.facade.SetUserStatus(c.Request.Context(), CurrentUserID(c), userID, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ResetPassword handles POST /api/users/:id/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	if err := h.facade.ResetUserPassword(c.Request.Context(), CurrentUserID(c), userID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

// SetRole handles PATCH /api/users/:id/role.
func (h *AuthHandler) SetRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req dto.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	user, err := h.facade.ChangeRole(c.Request.Context(), CurrentUserID(c), userID, model.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
