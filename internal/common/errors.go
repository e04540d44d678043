// Package common defines shared sentinel errors used across the Lavka
// storefront layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account errors.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Cart / checkout errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")

	// Form-level validation failures; wrap with the field name.
	ErrValidation = errors.New("validation failed")
)
