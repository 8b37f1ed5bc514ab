package handler

import (
	"time"

	"github.com/booknest/booknest-api/internal/core/domain"
	"github.com/booknest/booknest-api/internal/core/ports"
)

// errorResponse documents the standard error envelope in swagger annotations;
// the actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type saveBookRequest struct {
	BookID      string   `json:"book_id"     validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image"       validate:"omitempty,url"`
	Link        string   `json:"link"        validate:"omitempty,url"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type savedBookResponse struct {
	BookID      string   `json:"book_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

type userResponse struct {
	ID         string              `json:"id"`
	Username   string              `json:"username"`
	Email      string              `json:"email"`
	SavedBooks []savedBookResponse `json:"saved_books"`
	BookCount  int                 `json:"book_count"`
	CreatedAt  time.Time           `json:"created_at"`
}

// publicUserResponse is the view exposed for other users' profiles. It omits
// the email address.
type publicUserResponse struct {
	Username   string              `json:"username"`
	SavedBooks []savedBookResponse `json:"saved_books"`
	BookCount  int                 `json:"book_count"`
}

// --- Request → Service input ---

func toSaveBookInput(req saveBookRequest) ports.SaveBookInput {
	authors := req.Authors
	if authors == nil {
		authors = []string{}
	}
	return ports.SaveBookInput{
		BookID:      req.BookID,
		Title:       req.Title,
		Authors:     authors,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		SavedBooks: toSavedBookResponses(u.SavedBooks),
		BookCount:  u.BookCount(),
		CreatedAt:  u.CreatedAt.UTC(),
	}
}

func toPublicUserResponse(u *domain.User) publicUserResponse {
	return publicUserResponse{
		Username:   u.Username,
		SavedBooks: toSavedBookResponses(u.SavedBooks),
		BookCount:  u.BookCount(),
	}
}

func toSavedBookResponses(books []domain.SavedBook) []savedBookResponse {
	out := make([]savedBookResponse, len(books))
	for i, b := range books {
		out[i] = savedBookResponse{
			BookID:      b.BookID,
			Title:       b.Title,
			Authors:     b.Authors,
			Description: b.Description,
			Image:       b.Image,
			Link:        b.Link,
		}
	}
	return out
}
