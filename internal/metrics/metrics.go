// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchesTotal counts Reddit fetches by outcome: ok, not_found, fetch_error.
	FetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reddit_fetches_total",
		Help: "Number of Reddit API fetches by outcome.",
	}, []string{"outcome"})

	// RateLimitRemaining mirrors the last observed x-ratelimit-remaining header.
	RateLimitRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reddit_ratelimit_remaining",
		Help: "Requests remaining in the current Reddit rate limit window.",
	})

	// RateLimitUsed mirrors the last observed x-ratelimit-used header.
	RateLimitUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reddit_ratelimit_used",
		Help: "Requests used in the current Reddit rate limit window.",
	})

	// RateLimitUpdates counts responses whose headers updated the tracker.
	RateLimitUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reddit_ratelimit_updates_total",
		Help: "Number of responses recorded by the rate limit tracker.",
	})
)
