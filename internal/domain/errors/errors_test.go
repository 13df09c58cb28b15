package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"open order exists", ErrOpenOrderExists},
		{"order closed", ErrOrderClosed},
		{"forbidden", ErrForbidden},
		{"invalid credentials", ErrInvalidCredentials},
		{"name required", ErrNameRequired},
		{"item name required", ErrItemNameRequired},
		{"negative price", ErrNegativePrice},
		{"invalid date", ErrInvalidDate},
		{"own account", ErrOwnAccount},
		{"password too short", ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if stdErrors.Is(ErrOpenOrderExists, ErrAlreadyExists) {
		t.Fatal("order-per-day conflict must stay distinct from the generic duplicate error")
	}
	if stdErrors.Is(ErrOrderClosed, ErrForbidden) {
		t.Fatal("closed-window violations must stay distinct from authorization failures")
	}
	if stdErrors.Is(ErrNameRequired, ErrItemNameRequired) {
		t.Fatal("vendor name validation must stay distinct from item name validation")
	}
}
