package ports

import (
	"context"

	"github.com/booknest/booknest-api/internal/core/domain"
)

// UserRepository defines persistence operations for users and their saved-book
// lists. AddBook and RemoveBook must be atomic at the list-element granularity:
// two concurrent AddBook calls with the same book id may produce at most one
// entry, and concurrent mutations of different book ids must not lose either.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AddBook inserts the book into the user's list unless an entry with the
	// same book id already exists. The existing entry is never overwritten.
	// Returns the user's record after the operation.
	AddBook(ctx context.Context, userID string, book domain.SavedBook) (*domain.User, error)
	// RemoveBook removes at most one entry matching bookID. Removing an absent
	// id is a no-op. Returns the user's record after the operation.
	RemoveBook(ctx context.Context, userID, bookID string) (*domain.User, error)
}
