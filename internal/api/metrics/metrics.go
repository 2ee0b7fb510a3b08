// Package metrics defines and registers all custom Prometheus metrics for the
// roulette account API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roulette"

// Result label values shared by the account counters.
const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid_password"
	ResultBlocked  = "blocked"
	ResultRefused  = "insufficient_balance"
	ResultError    = "error"
)

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: success, conflict or error
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: success, not_found, invalid_password, blocked or error
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BalanceAdjustmentsTotal counts update-balance calls.
// Labels:
//   - direction: "credit" or "debit"
//   - result: success, not_found, insufficient_balance or error
var BalanceAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "balance_adjustments_total",
		Help:      "Total number of balance adjustments, by direction and result.",
	},
	[]string{"direction", "result"},
)

// ── Spin metrics ──────────────────────────────────────────────────────────────

// SpinsRecordedTotal counts persisted spin outcomes.
var SpinsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "spins_recorded_total",
		Help:      "Total number of spin results saved.",
	},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreQueryDuration measures the latency of individual SQL statements.
// Label:
//   - operation: short statement name (e.g. "users.create", "spins.recent")
var StoreQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_query_duration_seconds",
		Help:      "Duration of SQL statements issued against the relational store.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ObserveQuery starts a timer for operation; call the returned func when the
// statement has finished.
func ObserveQuery(operation string) func() {
	timer := prometheus.NewTimer(StoreQueryDuration.WithLabelValues(operation))
	return func() { timer.ObserveDuration() }
}
