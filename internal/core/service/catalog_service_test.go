package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/booknest/booknest-api/internal/core/ports"
)

type stubCatalogClient struct {
	books []ports.CatalogBook
	err   error
	calls int
	lastQ string
	lastN int
}

func (c *stubCatalogClient) Search(_ context.Context, query string, limit int) ([]ports.CatalogBook, error) {
	c.calls++
	c.lastQ = query
	c.lastN = limit
	return c.books, c.err
}

type stubSearchCache struct {
	entries map[string][]ports.CatalogBook
	getErr  error
	setErr  error
	sets    int
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{entries: make(map[string][]ports.CatalogBook)}
}

func (c *stubSearchCache) Get(_ context.Context, query string, limit int) ([]ports.CatalogBook, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	books, ok := c.entries[query]
	return books, ok, nil
}

func (c *stubSearchCache) Set(_ context.Context, query string, _ int, books []ports.CatalogBook) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[query] = books
	return nil
}

func TestCatalogService_Search_MissThenHit(t *testing.T) {
	client := &stubCatalogClient{books: []ports.CatalogBook{{BookID: "b1", Title: "Book One"}}}
	cache := newStubSearchCache()
	svc := NewCatalogService(client, cache, zerolog.Nop())

	books, err := svc.Search(context.Background(), "golang", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(books) != 1 || books[0].BookID != "b1" {
		t.Fatalf("unexpected results: %+v", books)
	}
	if client.calls != 1 || cache.sets != 1 {
		t.Fatalf("expected one live call and one cache write, got %d/%d", client.calls, cache.sets)
	}

	// Second search is served from the cache.
	if _, err := svc.Search(context.Background(), "golang", 5); err != nil {
		t.Fatalf("cached search failed: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("cache hit still reached the client, calls=%d", client.calls)
	}
}

func TestCatalogService_Search_CacheFailureDegrades(t *testing.T) {
	client := &stubCatalogClient{books: []ports.CatalogBook{{BookID: "b1"}}}
	cache := newStubSearchCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewCatalogService(client, cache, zerolog.Nop())

	books, err := svc.Search(context.Background(), "golang", 5)
	if err != nil {
		t.Fatalf("expected live fallback, got error: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("unexpected results: %+v", books)
	}
}

func TestCatalogService_Search_ClientError(t *testing.T) {
	client := &stubCatalogClient{err: errors.New("upstream 500")}
	svc := NewCatalogService(client, newStubSearchCache(), zerolog.Nop())

	if _, err := svc.Search(context.Background(), "golang", 5); err == nil {
		t.Fatalf("expected error from client")
	}
}

func TestCatalogService_Search_LimitBounds(t *testing.T) {
	client := &stubCatalogClient{}
	svc := NewCatalogService(client, newStubSearchCache(), zerolog.Nop())

	if _, err := svc.Search(context.Background(), "a", 0); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if client.lastN != defaultSearchLimit {
		t.Fatalf("expected default limit %d, got %d", defaultSearchLimit, client.lastN)
	}

	if _, err := svc.Search(context.Background(), "b", 1000); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if client.lastN != maxSearchLimit {
		t.Fatalf("expected capped limit %d, got %d", maxSearchLimit, client.lastN)
	}
}
