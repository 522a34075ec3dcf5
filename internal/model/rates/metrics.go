package rates

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var conversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expenses",
		Subsystem: "rates",
		Name:      "conversions_total",
	},
	[]string{"status", "from_cache"},
)

func observeConversion(res Result) {
	conversionsTotal.
		WithLabelValues(res.Status.String(), strconv.FormatBool(res.FromCache)).
		Inc()
}
