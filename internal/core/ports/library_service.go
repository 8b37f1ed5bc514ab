package ports

import (
	"context"

	"github.com/booknest/booknest-api/internal/core/domain"
)

// SaveBookInput is the DTO passed from the transport layer to LibraryService.
type SaveBookInput struct {
	BookID      string
	Title       string
	Authors     []string
	Description string
	Image       string
	Link        string
}

// LibraryService mutates the authenticated caller's saved-books list. Every
// operation acts only on the identity it receives; there is no way to address
// another user's list through this interface.
type LibraryService interface {
	SaveBook(ctx context.Context, identity domain.Identity, input SaveBookInput) (*domain.User, error)
	RemoveBook(ctx context.Context, identity domain.Identity, bookID string) (*domain.User, error)
	Profile(ctx context.Context, identity domain.Identity) (*domain.User, error)
	// PublicProfile looks up a user by username for the public profile view.
	// It requires no identity; the transport layer strips private fields.
	PublicProfile(ctx context.Context, username string) (*domain.User, error)
}
