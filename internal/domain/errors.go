package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation (username or email taken).
	ErrConflict = errors.New("already exists")
	// ErrForbidden indicates the requester is authenticated but not allowed
	// to act on this entity.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a missing, malformed, or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidInput indicates malformed input that slipped past the
	// request binding layer, e.g. whitespace-only required fields.
	ErrInvalidInput = errors.New("invalid input")
)
