package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_metrics_http_requests_total",
			Help: "Total de requisições HTTP por rota, método e status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_metrics_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// RegisterMetrics registra os coletores da API no registry informado
func RegisterMetrics(registry prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{httpRequestsTotal, httpRequestDuration, recomputeTotal} {
		if err := registry.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// MetricsMiddleware conta requisições e mede a latência de uma rota.
// O label usa o padrão registrado (/v1/campaigns/:id), nunca o caminho concreto.
func MetricsMiddleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(srw, r)

			httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(srw.statusCode)).Inc()
			httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

var recomputeTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "campaign_metrics_recompute_total",
		Help: "Total de recálculos de campos derivados por operação",
	},
	[]string{"operation"},
)

// CountRecompute registra um recálculo feito fora da persistência (preview, rascunho)
func CountRecompute(operation string) {
	recomputeTotal.WithLabelValues(operation).Inc()
}
