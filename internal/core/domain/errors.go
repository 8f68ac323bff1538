package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")

	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("access forbidden")

	// ErrInvalidID is returned when a path parameter is not a valid ObjectID hex.
	ErrInvalidID = errors.New("invalid id format")
)
