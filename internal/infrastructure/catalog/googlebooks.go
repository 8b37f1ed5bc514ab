// Package catalog implements the external book-catalog client against the
// Google Books volumes API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/booknest/booknest-api/internal/core/ports"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooksClient queries the volumes endpoint and maps responses down to
// the fields the application consumes.
type GoogleBooksClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleBooksClient(baseURL string) *GoogleBooksClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GoogleBooksClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type volumeInfo struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	ImageLinks  struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
	InfoLink string `json:"infoLink"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumesResponse struct {
	Items []volume `json:"items"`
}

func (c *GoogleBooksClient) Search(ctx context.Context, query string, limit int) ([]ports.CatalogBook, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/volumes?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog search: unexpected status %d", resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog search: decode: %w", err)
	}

	books := make([]ports.CatalogBook, 0, len(payload.Items))
	for _, item := range payload.Items {
		authors := item.VolumeInfo.Authors
		if authors == nil {
			authors = []string{}
		}
		books = append(books, ports.CatalogBook{
			BookID:      item.ID,
			Title:       item.VolumeInfo.Title,
			Authors:     authors,
			Description: item.VolumeInfo.Description,
			Image:       item.VolumeInfo.ImageLinks.Thumbnail,
			Link:        item.VolumeInfo.InfoLink,
		})
	}
	return books, nil
}
