// Package metrics defines and registers all custom Prometheus metrics for
// the hero API. It is the single source of truth for metric names and help
// strings.
//
// Metrics register with the default registry at init; the /metrics route is
// wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "herovault"

// HeroesCreatedTotal counts successfully created heroes.
var HeroesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heroes_created_total",
		Help:      "Total number of heroes created.",
	},
)

// HeroesUpdatedTotal counts successful hero updates.
var HeroesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heroes_updated_total",
		Help:      "Total number of heroes updated.",
	},
)

// HeroesDeletedTotal counts successful hero deletions.
var HeroesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heroes_deleted_total",
		Help:      "Total number of heroes deleted.",
	},
)
