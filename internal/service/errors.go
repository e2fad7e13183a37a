package service

import "errors"

var (
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrEmptyContent       = errors.New("post cannot be empty")
	ErrContentTooLong     = errors.New("post exceeds maximum length")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)
