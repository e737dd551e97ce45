package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameExists          = errors.New("username already registered")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidRole             = errors.New("invalid role")
	ErrAdminAccessRequired     = errors.New("admin access required")
	ErrMusyrifAccessRequired   = errors.New("musyrif access required")
	ErrWaliKamarAccessRequired = errors.New("wali kamar access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
