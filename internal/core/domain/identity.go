package domain

import "errors"

var ErrDuplicateIdentity = errors.New("username or email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("authentication required")
var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")
var ErrUserNotFound = errors.New("user not found")

// Identity is the per-request outcome of authentication. The zero value is the
// anonymous identity; a populated UserID marks it authenticated. It is produced
// once per request and never transitions within the request's lifetime.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// Anonymous is the identity of an unauthenticated request.
var Anonymous = Identity{}

// Authenticated reports whether the identity belongs to a verified user.
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}
