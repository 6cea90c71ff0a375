package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserExists              = errors.New("user with this email or username already exists")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
