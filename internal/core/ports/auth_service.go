package ports

import (
	"context"

	"github.com/booknest/booknest-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult pairs a freshly issued token with the user it belongs to.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
