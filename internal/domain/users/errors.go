package users

import "errors"

// Sentinel errors mapped to gateway response codes by the REST layer.
var (
	// ErrUserNotFound indicates no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates a registration collided with an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed password or API-key check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
