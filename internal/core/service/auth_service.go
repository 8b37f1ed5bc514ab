package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/booknest/booknest-api/internal/core/domain"
	"github.com/booknest/booknest-api/internal/core/ports"
	"github.com/booknest/booknest-api/internal/metrics"
)

// dummyHash is a valid bcrypt hash of an unguessable string. Login compares
// against it when the email is unknown so that path costs the same as a real
// comparison and the single ErrInvalidCredentials leaks nothing either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and login on top of the user repository
// and the token service.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register creates a new account with a bcrypt-hashed credential and returns a
// freshly issued token alongside the created user. A username or email already
// in use fails with ErrDuplicateIdentity and persists nothing.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		SavedBooks:   []domain.SavedBook{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Username, created.Email)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", created.Username).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// both fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Burn a comparison so a missing user is not distinguishable by timing.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user}, nil
}
