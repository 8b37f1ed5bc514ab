package ports

import "context"

// CatalogBook is a search result from the external book catalog, trimmed to the
// fields the application consumes.
type CatalogBook struct {
	BookID      string   `json:"book_id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// CatalogClient talks to the external catalog API.
type CatalogClient interface {
	Search(ctx context.Context, query string, limit int) ([]CatalogBook, error)
}

// CatalogService answers catalog searches, caching results where possible.
type CatalogService interface {
	Search(ctx context.Context, query string, limit int) ([]CatalogBook, error)
}
