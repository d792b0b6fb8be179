package core

import "errors"

var (
	ErrInvalidArgs        = errors.New("invalid arguments")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnavailable        = errors.New("store unavailable")
)
