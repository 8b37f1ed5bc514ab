package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booknest/booknest-api/internal/core/ports"
)

// LibraryHandler handles the authenticated user's profile and saved-books
// routes, plus the public profile lookup.
type LibraryHandler struct {
	service ports.LibraryService
}

func NewLibraryHandler(service ports.LibraryService) *LibraryHandler {
	return &LibraryHandler{service: service}
}

// Me handles GET /v1/me: the caller's own record, saved books included.
//
// @Summary      Get the authenticated user's profile
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *LibraryHandler) Me(c echo.Context) error {
	user, err := h.service.Profile(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// SaveBook handles POST /v1/me/books: set-insert into the caller's own list.
//
// @Summary      Save a book to the authenticated user's list
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveBookRequest  true  "Book to save"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/me/books [post]
func (h *LibraryHandler) SaveBook(c echo.Context) error {
	var req saveBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.SaveBook(c.Request().Context(), ctxIdentity(c), toSaveBookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RemoveBook handles DELETE /v1/me/books/:book_id, removing at most one entry.
//
// @Summary      Remove a book from the authenticated user's list
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        book_id  path      string  true  "External book identifier"
// @Success      200      {object}  userResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/me/books/{book_id} [delete]
func (h *LibraryHandler) RemoveBook(c echo.Context) error {
	bookID := c.Param("book_id")
	if bookID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "book_id is required")
	}

	user, err := h.service.RemoveBook(c.Request().Context(), ctxIdentity(c), bookID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetUser handles GET /v1/users/:username, a public profile view.
//
// @Summary      Get a user's public profile
// @Tags         library
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  publicUserResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/users/{username} [get]
func (h *LibraryHandler) GetUser(c echo.Context) error {
	user, err := h.service.PublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicUserResponse(user))
}
