// Package metrics defines and registers all custom Prometheus metrics for the
// booknest API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init and
// are exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booknest"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Library metrics ───────────────────────────────────────────────────────────

// BooksSavedTotal counts save-book operations that reached storage,
// idempotent replays of an already-saved id included.
var BooksSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_saved_total",
		Help:      "Total number of successful save-book operations.",
	},
)

// BooksRemovedTotal counts remove-book operations, including no-op removals.
var BooksRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_removed_total",
		Help:      "Total number of successful remove-book operations.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogSearchesTotal counts catalog searches.
// Label:
//   - result: "hit" (served from cache), "miss" (fetched live), or "error"
var CatalogSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_searches_total",
		Help:      "Total number of catalog searches, by cache result.",
	},
	[]string{"result"},
)

// CatalogSearchDuration measures end-to-end catalog search latency, cache
// lookups included.
var CatalogSearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_search_duration_seconds",
		Help:      "Duration of catalog searches, cache hits included.",
		Buckets:   prometheus.DefBuckets,
	},
)
