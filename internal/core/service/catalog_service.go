package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/booknest/booknest-api/internal/core/ports"
	"github.com/booknest/booknest-api/internal/metrics"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 40
)

// SearchCache abstracts the catalog result cache (Redis).
type SearchCache interface {
	Get(ctx context.Context, query string, limit int) ([]ports.CatalogBook, bool, error)
	Set(ctx context.Context, query string, limit int, books []ports.CatalogBook) error
}

// CatalogService answers book searches against the external catalog with a
// read-through cache in front of it. Cache failures degrade to a live lookup.
type CatalogService struct {
	client ports.CatalogClient
	cache  SearchCache
	log    zerolog.Logger
}

func NewCatalogService(client ports.CatalogClient, cache SearchCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{client: client, cache: cache, log: log}
}

func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]ports.CatalogBook, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	timer := prometheus.NewTimer(metrics.CatalogSearchDuration)
	defer timer.ObserveDuration()

	if books, ok, err := s.cache.Get(ctx, query, limit); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("cache lookup failed, querying catalog")
	} else if ok {
		metrics.CatalogSearchesTotal.WithLabelValues("hit").Inc()
		return books, nil
	}

	books, err := s.client.Search(ctx, query, limit)
	if err != nil {
		metrics.CatalogSearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.CatalogSearchesTotal.WithLabelValues("miss").Inc()

	if err := s.cache.Set(ctx, query, limit, books); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("failed to cache search results")
	}

	return books, nil
}
