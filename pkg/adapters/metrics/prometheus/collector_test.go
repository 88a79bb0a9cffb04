package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("metrics scrape returned %d", w.Code)
	}
	return w.Body.String()
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
	}

	for _, tt := range tests {
		if got := StatusClass(tt.code); got != tt.want {
			t.Errorf("StatusClass(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFamiliesPresentBeforeTraffic(t *testing.T) {
	c := NewCollector()

	body := scrape(t, c)
	if !strings.Contains(body, "request_count") {
		t.Error("exposition should contain the request_count family before any traffic")
	}
	if !strings.Contains(body, "request_latency_seconds") {
		t.Error("exposition should contain the request_latency_seconds family before any traffic")
	}
}

func TestIncRequest(t *testing.T) {
	c := NewCollector()

	c.IncRequest(200, "/health")
	c.IncRequest(200, "/health")
	c.IncRequest(400, "/predict")

	if got := testutil.ToFloat64(c.requestCount.WithLabelValues("2xx", "/health")); got != 2 {
		t.Errorf("(2xx, /health) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestCount.WithLabelValues("4xx", "/predict")); got != 1 {
		t.Errorf("(4xx, /predict) = %v, want 1", got)
	}
}

func TestObserveLatency(t *testing.T) {
	c := NewCollector()

	c.ObserveLatency(30 * time.Millisecond)
	c.ObserveLatency(700 * time.Millisecond)

	body := scrape(t, c)
	if !strings.Contains(body, "request_latency_seconds_count 2") {
		t.Errorf("expected 2 latency samples, exposition:\n%s", body)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	c := NewCollector()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c.IncRequest(200, "/health")
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(c.requestCount.WithLabelValues("2xx", "/health")); got != n {
		t.Errorf("(2xx, /health) = %v after %d concurrent increments, want %d", got, n, n)
	}
}
