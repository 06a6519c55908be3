package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	partCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framing_part_calculations_total",
		Help: "Part price calculations by pricing type and result",
	}, []string{"type", "result"})

	itemCalculationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "framing_item_calculation_seconds",
		Help:    "Time spent pricing every part of an item",
		Buckets: prometheus.DefBuckets,
	})

	moldImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framing_mold_import_rows_total",
		Help: "Mold spreadsheet rows by outcome",
	}, []string{"outcome"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framing_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "path", "status"})
)

// ObservePart records the outcome of one part calculation
func ObservePart(pricingType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	partCalculations.WithLabelValues(pricingType, result).Inc()
}

// ObserveItem records how long an item took to price
func ObserveItem(start time.Time) {
	itemCalculationSeconds.Observe(time.Since(start).Seconds())
}

// AddMoldRows records processed spreadsheet rows
func AddMoldRows(outcome string, n int) {
	if n > 0 {
		moldImports.WithLabelValues(outcome).Add(float64(n))
	}
}

// ObserveRequest records a served HTTP request
func ObserveRequest(method, path string, status int) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
