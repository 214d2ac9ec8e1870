package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores e histogramas do núcleo de sincronização.
// Registrados uma única vez no registry default; expostos via /metrics.
type Metrics struct {
	AccountSyncs   *prometheus.CounterVec
	RecordsWritten *prometheus.CounterVec
	UpsertFailures *prometheus.CounterVec
	SyncDuration   *prometheus.HistogramVec
	FleetRuns      prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		AccountSyncs: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ad_state_sync",
			Name:      "account_syncs_total",
			Help:      "Sincronizações de conta concluídas, por plataforma e resultado.",
		}, []string{"platform", "outcome"}),

		RecordsWritten: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ad_state_sync",
			Name:      "records_written_total",
			Help:      "Registros AdState gravados com sucesso, por plataforma.",
		}, []string{"platform"}),

		UpsertFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ad_state_sync",
			Name:      "upsert_failures_total",
			Help:      "Falhas de gravação de registros individuais, por plataforma.",
		}, []string{"platform"}),

		SyncDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ad_state_sync",
			Name:      "account_sync_duration_seconds",
			Help:      "Duração da sincronização de uma conta, por plataforma.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"platform"}),

		FleetRuns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "ad_state_sync",
			Name:      "fleet_runs_total",
			Help:      "Passadas completas da frota iniciadas.",
		}),
	}
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
