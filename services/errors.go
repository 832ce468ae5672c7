package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything else is a 500.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
