package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Convert-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Conversion counters
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "conversions_total",
			Help:      "Total conversions by pair and outcome",
		},
		[]string{"conversion", "status"},
	)

	// Conversion duration
	ConversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "conversion_duration_seconds",
			Help:      "Conversion processing duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 15, 60},
		},
		[]string{"conversion"},
	)

	// Upload bytes counter
	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded for conversion",
		},
		[]string{"conversion"},
	)

	// Output bytes counter
	OutputBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "output_bytes_total",
			Help:      "Total bytes produced by conversions",
		},
		[]string{"conversion"},
	)

	// Rate limiter rejections
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "convert",
			Subsystem: "api",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-IP rate limiter",
		},
	)
)

// RecordConversion tracks one conversion attempt.
func RecordConversion(conversion, status string, durationSeconds float64, inputBytes, outputBytes int) {
	ConversionsTotal.WithLabelValues(conversion, status).Inc()
	ConversionDuration.WithLabelValues(conversion).Observe(durationSeconds)
	UploadBytesTotal.WithLabelValues(conversion).Add(float64(inputBytes))
	if outputBytes > 0 {
		OutputBytesTotal.WithLabelValues(conversion).Add(float64(outputBytes))
	}
}
