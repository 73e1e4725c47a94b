/*
Copyright © 2025 pyready authors
SPDX-License-Identifier: Apache-2.0
*/
package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pyready_check_run_duration_seconds",
			Help:    "Duration of full readiness check runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
	projectChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pyready_project_checks_total",
			Help: "Total number of per-project readiness checks by result",
		},
		[]string{"result"},
	)
)
