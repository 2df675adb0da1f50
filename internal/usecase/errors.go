package usecase

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrInvalidClass       = errors.New("class not offered by this train")
	ErrInvalidSeats       = errors.New("invalid seat selection")
	ErrFareMismatch       = errors.New("total amount does not match the fare")
)
