package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	histogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "expenses",
			Subsystem: "telegram",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"error"},
	)

	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "telegram",
			Name:      "commands_total",
		},
		[]string{"command"},
	)
)

func observeResponse(elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

// countCommand labels unknown commands together so the series stay bounded.
func countCommand(cmd string, known bool) {
	if !known {
		cmd = "unknown"
	}
	if cmd == "" {
		cmd = "text"
	}
	commandsTotal.WithLabelValues(cmd).Inc()
}
