package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"drinks": null}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, rt http.RoundTripper, url string) {
	t.Helper()
	resp, err := (&http.Client{Transport: rt}).Get(url)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestNew_DefaultsToDefaultTransport(t *testing.T) {
	rt, err := New(Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if rt != http.DefaultTransport {
		t.Fatalf("New(Options{}) = %T, want http.DefaultTransport", rt)
	}
}

func TestNew_RejectsNegativeRate(t *testing.T) {
	if _, err := New(Options{RequestsPerMinute: -1}); err == nil {
		t.Fatalf("New returned nil error, want error")
	}
}

func TestThrottle_SpacesRequests(t *testing.T) {
	server := newServer(t)

	// 600 rpm is one request every 100ms with no burst.
	rt := Throttle(600)
	start := time.Now()
	for i := 0; i < 3; i++ {
		get(t, rt, server.URL)
	}
	if elapsed := time.Since(start); elapsed < 180*time.Millisecond {
		t.Fatalf("3 throttled requests took %v, want >= 180ms", elapsed)
	}
}

func TestMetrics_CountRequests(t *testing.T) {
	server := newServer(t)
	reg := prometheus.NewRegistry()

	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics returned error: %v", err)
	}
	rt := m.Instrument(http.DefaultTransport)
	get(t, rt, server.URL)
	get(t, rt, server.URL)

	if got := testutil.ToFloat64(m.Requests); got != 2 {
		t.Fatalf("requests_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.InFlight); got != 0 {
		t.Fatalf("in_flight_requests = %v, want 0", got)
	}
	if n := testutil.CollectAndCount(m.Duration); n != 1 {
		t.Fatalf("duration series = %d, want 1", n)
	}
}

func TestNewMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("NewMetrics returned error: %v", err)
	}
	second, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("second NewMetrics returned error: %v", err)
	}
	if first.Requests != second.Requests {
		t.Fatalf("second NewMetrics should reuse the registered counter")
	}
}

func TestNew_InstrumentsThroughRegisterer(t *testing.T) {
	server := newServer(t)
	reg := prometheus.NewRegistry()

	rt, err := New(Options{RequestsPerMinute: 6000, Registerer: reg})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	get(t, rt, server.URL)

	n, err := testutil.GatherAndCount(reg, "cocktaildb_client_requests_total")
	if err != nil {
		t.Fatalf("GatherAndCount returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("requests_total series = %d, want 1", n)
	}
}
