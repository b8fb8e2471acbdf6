package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewHTTPMetrics(t *testing.T) {
	m := newHTTPMetricsWithRegisterer(prometheus.NewRegistry())

	if m == nil {
		t.Fatal("metrics should not be nil")
	}
	if m.requests == nil {
		t.Error("requests counter vec should not be nil")
	}
	if m.duration == nil {
		t.Error("duration histogram vec should not be nil")
	}
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetricsWithRegisterer(registry)

	m.RecordRequest("create_order", 201, 15*time.Millisecond)
	m.RecordRequest("create_order", 201, 5*time.Millisecond)
	m.RecordRequest("create_order", 400, time.Millisecond)

	created := testutil.ToFloat64(m.requests.WithLabelValues("create_order", "201"))
	if created != 2 {
		t.Errorf("expected 2 successful requests, got %v", created)
	}

	rejected := testutil.ToFloat64(m.requests.WithLabelValues("create_order", "400"))
	if rejected != 1 {
		t.Errorf("expected 1 rejected request, got %v", rejected)
	}
}

func TestHTTPMetrics_DoubleRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newHTTPMetricsWithRegisterer(registry)
	second := newHTTPMetricsWithRegisterer(registry)

	// Повторная регистрация переиспользует существующие коллекторы.
	first.RecordRequest("list_products", 200, time.Millisecond)
	second.RecordRequest("list_products", 200, time.Millisecond)

	total := testutil.ToFloat64(first.requests.WithLabelValues("list_products", "200"))
	if total != 2 {
		t.Errorf("expected shared counter with value 2, got %v", total)
	}
}
