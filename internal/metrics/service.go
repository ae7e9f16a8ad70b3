// Package metrics owns the Prometheus registry of the server and the
// collectors recorded by the HTTP layer and the generator service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	prometheus_metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

const (
	namespace           = "passgen"
	derivationSubsystem = "derivation"
	resultLabel         = "result"
)

// Derivation outcomes used as the "result" label value.
const (
	ResultOK           = "ok"
	ResultInvalidInput = "invalid_input"
	ResultNotAdmitted  = "not_admitted"
	ResultError        = "error"
)

// Service holds the registry and every collector exposed on /metrics.
type Service struct {
	Registry *prometheus.Registry

	httpMiddleware     middleware.Middleware
	derivationCounter  *prometheus.CounterVec
	derivationDuration *prometheus.HistogramVec
	derivationInflight prometheus.Gauge
}

func NewService() *Service {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	derivationCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: derivationSubsystem,
			Name:      "total",
			Help:      "Total number of password derivations by result",
		},
		[]string{resultLabel},
	)
	reg.MustRegister(derivationCounter)

	// PBKDF2 at 100k iterations sits around tens of milliseconds per call.
	derivationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: derivationSubsystem,
			Name:      "duration_seconds",
			Help:      "Duration of password derivations by result",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{resultLabel},
	)
	reg.MustRegister(derivationDuration)

	derivationInflight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: derivationSubsystem,
			Name:      "inflight",
			Help:      "Number of derivations currently running or waiting for a slot",
		},
	)
	reg.MustRegister(derivationInflight)

	recorder := prometheus_metrics.NewRecorder(prometheus_metrics.Config{
		Prefix:          namespace,
		Registry:        reg,
		DurationBuckets: []float64{.05, .1, .25, .5, 1, 2.5},
	})

	return &Service{
		Registry: reg,
		httpMiddleware: middleware.New(middleware.Config{
			// this is added as Service label
			Service:            "api",
			DisableMeasureSize: true,
			Recorder:           recorder,
		}),
		derivationCounter:  derivationCounter,
		derivationDuration: derivationDuration,
		derivationInflight: derivationInflight,
	}
}

// Handler wraps h with HTTP metrics under a fixed handlerID. The ID must be a
// route pattern, never the request path: the GET generate route carries
// secrets in its path segments.
func (s *Service) Handler(handlerID string, h http.Handler) http.Handler {
	return std.Handler(handlerID, s.httpMiddleware, h)
}

// HandlerID returns a chi-compatible middleware around Handler.
func (s *Service) HandlerID(handlerID string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return s.Handler(handlerID, h)
	}
}

// ObserveDerivation records one finished derivation.
func (s *Service) ObserveDerivation(result string, elapsed time.Duration) {
	s.derivationCounter.WithLabelValues(result).Inc()
	s.derivationDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// TrackInflight increments the inflight gauge and returns the matching
// decrement.
func (s *Service) TrackInflight() func() {
	s.derivationInflight.Inc()
	return s.derivationInflight.Dec
}

// ExpositionHandler serves the registry in the Prometheus text format.
func (s *Service) ExpositionHandler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{Registry: s.Registry})
}
