package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrOpenOrderExists    = errors.New("an open order already exists for this day")
	ErrOrderClosed        = errors.New("order is closed")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNameRequired       = errors.New("name is required")
	ErrItemNameRequired   = errors.New("item name is required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRole        = errors.New("invalid role")
	ErrOwnAccount         = errors.New("operation not allowed on own account")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)
