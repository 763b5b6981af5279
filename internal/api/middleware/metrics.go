package middleware

import (
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/logos/internal/metrics"
)

// Metrics counts requests by status class and errors on the Prometheus
// collectors.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			m.HTTPRequests.WithLabelValues(strconv.Itoa(rw.statusCode/100) + "xx").Inc()
			if rw.statusCode >= 400 {
				m.HTTPErrors.Inc()
			}
		})
	}
}
