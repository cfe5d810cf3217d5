// 18 Oct 2026

// Package metrics counts what the screener does. A screen is a batch
// job, not a server, so there is nothing to scrape. The counters are
// written to a file in the Prometheus text format at the end, which
// node_exporter's textfile collector can pick up.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seqscreen"

var (
	registerOnce sync.Once

	readsScreened = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reads_screened_total",
		Help:      "Number of reads screened against the contaminants",
	})
	readsFlagged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reads_flagged_total",
		Help:      "Number of reads with a local alignment at or above the cutoff",
	})
	comparisons = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comparisons_total",
		Help:      "Read against contaminant comparisons, by strand",
	}, []string{"strand"})
	screenDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "read_duration_seconds",
		Help:      "Time to screen one read against all contaminants",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10), // 10us up to a few seconds
	})
	alignScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "align_score",
		Help:      "Scores from the align command",
		Buckets:   prometheus.LinearBuckets(0, 10, 10),
	})
)

// Register puts the metrics in the default registry. It can be called
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(readsScreened, readsFlagged, comparisons, screenDuration, alignScore)
	})
}

func IncScreened()                        { readsScreened.Inc() }
func IncFlagged()                         { readsFlagged.Inc() }
func AddComparisons(strand string, n int) { comparisons.WithLabelValues(strand).Add(float64(n)) }
func ObserveRead(d time.Duration)         { screenDuration.Observe(d.Seconds()) }
func ObserveScore(s float32)              { alignScore.Observe(float64(s)) }

// WriteFile writes everything in the default registry to fname. The
// file is written under a temporary name and renamed, so a collector
// never sees half of it.
func WriteFile(fname string) error {
	Register()
	return prometheus.WriteToTextfile(fname, prometheus.DefaultGatherer)
}
