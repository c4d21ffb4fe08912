// Package transport builds the http.RoundTripper the command hands to the
// cocktaildb client: an optional client-side rate limit and optional
// Prometheus instrumentation layered over the default transport.
package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jybp/httpthrottle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Options selects the layers New stacks.
type Options struct {
	// RequestsPerMinute throttles outgoing requests; zero disables it.
	RequestsPerMinute float64
	// Registerer receives the request metrics; nil disables them.
	Registerer prometheus.Registerer
}

// New returns the round tripper described by opts.
func New(opts Options) (http.RoundTripper, error) {
	if opts.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("requests per minute %v is negative", opts.RequestsPerMinute)
	}

	rt := http.DefaultTransport
	if opts.RequestsPerMinute > 0 {
		rt = Throttle(opts.RequestsPerMinute)
	}
	if opts.Registerer != nil {
		m, err := NewMetrics(opts.Registerer)
		if err != nil {
			return nil, err
		}
		rt = m.Instrument(rt)
	}
	return rt, nil
}

// Throttle returns a round tripper that waits so no more than rpm requests
// start per minute. Bursts are not allowed.
func Throttle(rpm float64) http.RoundTripper {
	return httpthrottle.Default(rate.NewLimiter(rate.Limit(rpm/60.0), 1))
}

// Metrics are the client-side request collectors.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cocktaildb",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Requests sent to TheCocktailDB by status code and method.",
	}, []string{"code", "method"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cocktaildb",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests sent to TheCocktailDB.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"}))
	if err != nil {
		return nil, err
	}
	inFlight, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cocktaildb",
		Subsystem: "client",
		Name:      "in_flight_requests",
		Help:      "Requests to TheCocktailDB currently waiting for a response.",
	}))
	if err != nil {
		return nil, err
	}
	return &Metrics{Requests: requests, Duration: duration, InFlight: inFlight}, nil
}

// Instrument wraps next with the collectors.
func (m *Metrics) Instrument(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperInFlight(m.InFlight,
		promhttp.InstrumentRoundTripperCounter(m.Requests,
			promhttp.InstrumentRoundTripperDuration(m.Duration, next)))
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metrics: %w", err)
	}
	return c, nil
}
