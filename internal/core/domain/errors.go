package domain

import "errors"

var (
	ErrValidation         = errors.New("missing or malformed required field")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateTitle     = errors.New("post title already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
	// ErrAnonymous marks the absence of a resolvable session. It is a normal
	// state, not a failure: every route decides for itself whether an
	// anonymous caller may proceed.
	ErrAnonymous = errors.New("no authenticated identity")
)
