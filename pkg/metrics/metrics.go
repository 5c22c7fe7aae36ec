package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Uploads por resultado: success, missing_month, invalid_month, empty_content, no_valid_records
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "protrack_uploads_total",
			Help: "Total de uploads de relatórios mensais por resultado",
		},
		[]string{"result"},
	)

	UploadSkippedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "protrack_upload_skipped_lines_total",
			Help: "Linhas descartadas silenciosamente durante o parse",
		},
	)

	StoredMonths = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "protrack_stored_months",
			Help: "Quantidade de meses armazenados",
		},
	)

	PersistenceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "protrack_persistence_errors_total",
			Help: "Falhas ao ler ou gravar o estado persistido",
		},
		[]string{"operation"},
	)

	// Requisições de insight por resultado: success, cached, fallback
	InsightRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "protrack_insight_requests_total",
			Help: "Requisições de insight por resultado",
		},
		[]string{"outcome"},
	)

	InsightDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "protrack_insight_duration_seconds",
			Help:    "Duração das chamadas ao provedor de insights",
			Buckets: prometheus.DefBuckets,
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "protrack_circuit_breaker_state",
			Help: "Estado do circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "protrack_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	RetentionDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "protrack_retention_deleted_months_total",
			Help: "Meses removidos pela rotina de retenção",
		},
	)
)
