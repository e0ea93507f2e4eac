package metrics

import "github.com/prometheus/client_golang/prometheus"

// Matchmaking Prometheus metrics.
var (
	MatchPairsScoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "venturebridge",
			Name:      "match_pairs_scored_total",
			Help:      "Total number of startup/investor pairs scored",
		},
	)

	MatchCandidatesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "venturebridge",
			Name:      "match_candidates_returned",
			Help:      "Number of match candidates returned per request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50},
		},
	)
)

var matchMetricsRegistered bool

// RegisterMatchingMetrics registers Prometheus matchmaking metrics. Must be called once from main.
func RegisterMatchingMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchPairsScoredTotal)
	prometheus.MustRegister(MatchCandidatesReturned)
	matchMetricsRegistered = true
}
