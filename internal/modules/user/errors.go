package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already in use")
	ErrInvalidRole  = errors.New("unknown role")
	ErrSelfDemotion = errors.New("admins cannot demote or deactivate themselves")
)
