/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package pypi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pyready_index_fetch_duration_seconds",
			Help:    "Duration of package index metadata fetches in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pyready_index_fetch_total",
			Help: "Total number of package index metadata fetches by result",
		},
		[]string{"result"},
	)

	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pyready_metadata_cache_hits_total",
			Help: "Total number of metadata cache hits",
		},
	)
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pyready_metadata_cache_misses_total",
			Help: "Total number of metadata cache misses",
		},
	)
)
