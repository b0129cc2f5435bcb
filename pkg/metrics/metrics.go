package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestDuration mede a duração das requisições por rota
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "social_metrics_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route", "status"},
	)

	// ImportRuns conta as importações de planilha por resultado
	ImportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_metrics_import_runs_total",
			Help: "Total de importações de planilha",
		},
		[]string{"platform", "outcome"},
	)

	// ImportedSamples conta as amostras gravadas por importação
	ImportedSamples = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_metrics_imported_samples_total",
			Help: "Total de amostras importadas da planilha",
		},
		[]string{"platform"},
	)

	// MonitorRequests conta as consultas ao monitor de dados
	MonitorRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_metrics_monitor_requests_total",
			Help: "Total de consultas ao monitor de dados",
		},
		[]string{"platform", "outcome"},
	)

	// ChartsRendered conta os gráficos gerados por tipo e formato
	ChartsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "social_metrics_charts_rendered_total",
			Help: "Total de gráficos gerados",
		},
		[]string{"kind", "format"},
	)
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
