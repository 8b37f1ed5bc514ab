package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleVolumes = `{
  "items": [
    {
      "id": "abc123",
      "volumeInfo": {
        "title": "The Go Programming Language",
        "authors": ["Alan A. A. Donovan", "Brian W. Kernighan"],
        "description": "A guide to Go.",
        "imageLinks": {"thumbnail": "http://example.com/thumb.jpg"},
        "infoLink": "http://example.com/info"
      }
    },
    {
      "id": "def456",
      "volumeInfo": {
        "title": "Untitled Draft"
      }
    }
  ]
}`

func TestGoogleBooksClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "golang" {
			t.Fatalf("unexpected query: %s", q)
		}
		if n := r.URL.Query().Get("maxResults"); n != "5" {
			t.Fatalf("unexpected maxResults: %s", n)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleVolumes))
	}))
	defer srv.Close()

	client := NewGoogleBooksClient(srv.URL)
	books, err := client.Search(context.Background(), "golang", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 results, got %d", len(books))
	}

	first := books[0]
	if first.BookID != "abc123" || first.Title != "The Go Programming Language" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if len(first.Authors) != 2 || first.Image != "http://example.com/thumb.jpg" || first.Link != "http://example.com/info" {
		t.Fatalf("field mapping broken: %+v", first)
	}

	// Missing optional fields map to zero values, never nil authors.
	second := books[1]
	if second.Authors == nil || len(second.Authors) != 0 {
		t.Fatalf("expected empty authors slice, got %#v", second.Authors)
	}
}

func TestGoogleBooksClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewGoogleBooksClient(srv.URL)
	if _, err := client.Search(context.Background(), "golang", 5); err == nil {
		t.Fatalf("expected error on upstream 500")
	}
}

func TestGoogleBooksClient_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewGoogleBooksClient(srv.URL)
	books, err := client.Search(context.Background(), "nothing", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected no results, got %d", len(books))
	}
}
