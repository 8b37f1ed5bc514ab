package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/booknest/booknest-api/internal/core/domain"
	"github.com/booknest/booknest-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// stubUserRepo is an in-memory ports.UserRepository with the same set
// semantics the Mongo repository provides.
type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.SavedBooks = append([]domain.SavedBook(nil), u.SavedBooks...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrDuplicateIdentity
		}
	}
	clone := cloneUser(user)
	clone.ID = user.Username + "_id"
	r.users[clone.ID] = cloneUser(clone)
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) AddBook(_ context.Context, userID string, book domain.SavedBook) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if !u.HasBook(book.BookID) {
		u.SavedBooks = append(u.SavedBooks, book)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) RemoveBook(_ context.Context, userID, bookID string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for i, b := range u.SavedBooks {
		if b.BookID == bookID {
			u.SavedBooks = append(u.SavedBooks[:i], u.SavedBooks[i+1:]...)
			break
		}
	}
	return cloneUser(u), nil
}

func newAuthSvc(repo ports.UserRepository) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop()), tokens
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthSvc(repo)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User == nil {
		t.Fatalf("expected user, got nil")
	}
	if result.User.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(result.User.SavedBooks) != 0 {
		t.Fatalf("expected empty saved-books list, got %d entries", len(result.User.SavedBooks))
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(repo)

	input := ports.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "pass1234"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input.Password = "otherpass"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register must not persist a row, have %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthSvc(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "s3cret99",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User == nil || result.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "carol" || claims.Email != "carol@example.com" {
		t.Fatalf("claims do not match registered identity: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Email: "dave@example.com", Password: "goodpass",
	})

	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// failingUserRepo simulates a storage outage on email lookups.
type failingUserRepo struct {
	*stubUserRepo
	findErr error
}

func (r *failingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.findErr
}

func TestAuthService_Login_StorageFailureIsNotInvalidCredentials(t *testing.T) {
	storageErr := errors.New("connection refused")
	repo := &failingUserRepo{stubUserRepo: newStubUserRepo(), findErr: storageErr}
	svc, _ := newAuthSvc(repo)

	_, err := svc.Login(context.Background(), "alice@example.com", "pass1234")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("storage failure must not be reported as invalid credentials: %v", err)
	}
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthSvc(repo)

	// Unknown email and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
