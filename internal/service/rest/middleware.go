package rest

import (
	"net/http"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// statusRecorder запоминает статус ответа для метрик.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument оборачивает обработчик сбором метрик запросов.
func instrument(m *metrics.HTTPMetrics, name string, next http.HandlerFunc) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		m.RecordRequest(name, recorder.status, time.Since(start))
	})
}
