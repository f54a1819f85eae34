package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textlab_requests_total",
			Help: "Requests handled per mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)
	detectionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textlab_detected_language_total",
			Help: "Detected input languages.",
		},
		[]string{"lang"},
	)
	translationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textlab_translation_seconds",
			Help:    "Latency of translation requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target", "outcome"},
	)
	cacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "textlab_translation_cache_hits_total",
			Help: "Translations served from the cache.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, detectionCounter, translationLatency, cacheHits)
}

// Outcomes of a request.
const (
	OK      = "ok"
	Warning = "warning"
	Failed  = "error"
)

func ObserveRequest(mode, outcome string) {
	requestCounter.WithLabelValues(mode, outcome).Inc()
}

func ObserveDetection(lang string) {
	detectionCounter.WithLabelValues(lang).Inc()
}

func ObserveTranslation(target, outcome string, elapsed time.Duration) {
	translationLatency.WithLabelValues(target, outcome).Observe(elapsed.Seconds())
}

// AddCacheHits records n new translation cache hits.
func AddCacheHits(n int64) {
	if n > 0 {
		cacheHits.Add(float64(n))
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
