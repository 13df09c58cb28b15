package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bluemonkey003/lunchroom/internal/domain/errors"
	"github.com/bluemonkey003/lunchroom/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// pathID parses a numeric path parameter; the second result is false
// when the segment is not a number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP statuses. Business-rule
// violations, including conflicts and writes against a closed order,
// are all client errors.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrOpenOrderExists),
		errors.Is(err, domainErrors.ErrOrderClosed),
		errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrNameRequired),
		errors.Is(err, domainErrors.ErrItemNameRequired),
		errors.Is(err, domainErrors.ErrNegativePrice),
		errors.Is(err, domainErrors.ErrInvalidDate),
		errors.Is(err, domainErrors.ErrInvalidRole),
		errors.Is(err, domainErrors.ErrOwnAccount),
		errors.Is(err, domainErrors.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
