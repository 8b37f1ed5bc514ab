package ports

// Claims is the identity payload embedded in a bearer token.
type Claims struct {
	UserID   string
	Username string
	Email    string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verification is pure computation and performs no I/O.
type TokenService interface {
	Issue(userID, username, email string) (string, error)
	// Verify returns the embedded claims, domain.ErrExpiredToken when the token
	// is past its horizon, or domain.ErrInvalidToken for any other defect.
	Verify(token string) (*Claims, error)
}
