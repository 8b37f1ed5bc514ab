package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/booknest/booknest-api/internal/core/ports"
)

// CatalogHandler handles book catalog searches.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type catalogSearchResponse struct {
	Query string              `json:"query"`
	Books []ports.CatalogBook `json:"books"`
}

// Search handles GET /v1/catalog/search?q=&limit=.
//
// @Summary      Search the external book catalog
// @Tags         catalog
// @Produce      json
// @Param        q      query     string  true   "Search terms"
// @Param        limit  query     int     false  "Maximum number of results"
// @Success      200    {object}  catalogSearchResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/catalog/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	books, err := h.service.Search(c.Request().Context(), query, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalogSearchResponse{Query: query, Books: books})
}
