package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/booknest/booknest-api/internal/core/domain"
	"github.com/booknest/booknest-api/internal/core/ports"
	"github.com/booknest/booknest-api/internal/metrics"
)

// LibraryService is the saved-books mutation engine. Every operation requires
// an authenticated identity and acts only on that identity's own list; the
// repository primitives provide the per-element atomicity.
type LibraryService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewLibraryService(repo ports.UserRepository, log zerolog.Logger) *LibraryService {
	return &LibraryService{repo: repo, log: log}
}

// SaveBook performs a set-insert keyed by book id into the caller's own list.
// Saving an already-present id is a no-op that leaves the stored entry intact.
func (s *LibraryService) SaveBook(ctx context.Context, identity domain.Identity, input ports.SaveBookInput) (*domain.User, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	book := domain.SavedBook{
		BookID:      input.BookID,
		Title:       input.Title,
		Authors:     input.Authors,
		Description: input.Description,
		Image:       input.Image,
		Link:        input.Link,
	}

	user, err := s.repo.AddBook(ctx, identity.UserID, book)
	if err != nil {
		s.log.Error().Err(err).Str("book_id", input.BookID).Msg("failed to save book")
		return nil, err
	}

	metrics.BooksSavedTotal.Inc()
	s.log.Info().
		Str("username", identity.Username).
		Str("book_id", input.BookID).
		Msg("book saved")

	return user, nil
}

// RemoveBook removes at most one entry matching bookID from the caller's own
// list. Removing an absent id is a no-op, not an error.
func (s *LibraryService) RemoveBook(ctx context.Context, identity domain.Identity, bookID string) (*domain.User, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.RemoveBook(ctx, identity.UserID, bookID)
	if err != nil {
		s.log.Error().Err(err).Str("book_id", bookID).Msg("failed to remove book")
		return nil, err
	}

	metrics.BooksRemovedTotal.Inc()
	s.log.Info().
		Str("username", identity.Username).
		Str("book_id", bookID).
		Msg("book removed")

	return user, nil
}

// Profile returns the authenticated caller's own record with the saved-books
// list populated. No other identity's data is reachable through this path.
func (s *LibraryService) Profile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, identity.UserID)
}

// PublicProfile returns the record behind a public profile page.
func (s *LibraryService) PublicProfile(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
