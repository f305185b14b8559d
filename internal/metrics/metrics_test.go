package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getGaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	if err := g.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getHistogramCount(hv *prometheus.HistogramVec, labels ...string) uint64 {
	o, err := hv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_CatalogRequestsTotal(t *testing.T) {
	before := getCounterVecValue(CatalogRequestsTotal, "search", "200")
	CatalogRequestsTotal.WithLabelValues("search", "200").Inc()
	after := getCounterVecValue(CatalogRequestsTotal, "search", "200")

	if after != before+1 {
		t.Errorf("Expected search counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_CatalogRequestDuration(t *testing.T) {
	before := getHistogramCount(CatalogRequestDuration, "episodes")
	CatalogRequestDuration.WithLabelValues("episodes").Observe(0.25)
	after := getHistogramCount(CatalogRequestDuration, "episodes")

	if after != before+1 {
		t.Errorf("Expected one more observation, got diff %d", after-before)
	}
}

func TestMetrics_WidgetEventsTotal(t *testing.T) {
	before := getCounterVecValue(WidgetEventsTotal, "search:submit", "error")
	WidgetEventsTotal.WithLabelValues("search:submit", "error").Inc()
	after := getCounterVecValue(WidgetEventsTotal, "search:submit", "error")

	if after != before+1 {
		t.Errorf("Expected error counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_DisplayedShows(t *testing.T) {
	DisplayedShows.Set(4)
	if v := getGaugeValue(DisplayedShows); v != 4 {
		t.Errorf("Expected gauge 4, got %.0f", v)
	}
}

func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer("127.0.0.1", 0)
	if srv.Addr != "127.0.0.1:9090" {
		t.Errorf("Expected default port 9090, got %q", srv.Addr)
	}

	CatalogRequestsTotal.WithLabelValues("search", "200").Inc()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "catalog_requests_total") {
		t.Error("Expected catalog_requests_total in exposition output")
	}
}
