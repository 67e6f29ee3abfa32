package service

import "errors"

// Sentinel errors surfaced by TodoService. Every failure is terminal for
// its operation and leaves stored state unchanged.
var (
	ErrNotFound      = errors.New("todo not found")
	ErrForbidden     = errors.New("operation not allowed")
	ErrValidation    = errors.New("validation failed")
	ErrUserNotFound  = errors.New("user not found")
	ErrSelfShare     = errors.New("cannot share a todo with yourself")
	ErrAlreadyShared = errors.New("todo is already shared with this user")
)
