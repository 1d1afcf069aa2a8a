package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// User metrics
	UsersRegistered prometheus.Counter
	Logins          prometheus.Counter
	AuthFailures    *prometheus.CounterVec

	// Bank account metrics
	AccountsCreated  prometheus.Counter
	BalancesComputed prometheus.Counter
	BalanceDuration  prometheus.Histogram

	// Transaction metrics
	TransactionsCreated *prometheus.CounterVec
	TransactionErrors   *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// User metrics
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "myfinances_users_registered_total",
			Help: "Total number of users registered",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "myfinances_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Bank account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "myfinances_bank_accounts_created_total",
			Help: "Total number of bank accounts created",
		}),
		BalancesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "myfinances_balances_computed_total",
			Help: "Total number of balance derivations",
		}),
		BalanceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "myfinances_balance_duration_seconds",
			Help:    "Duration of balance derivations",
			Buckets: prometheus.DefBuckets,
		}),

		// Transaction metrics
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_transactions_created_total",
				Help: "Total transactions created by type",
			},
			[]string{"type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_transaction_errors_total",
				Help: "Total transaction errors by type",
			},
			[]string{"type", "error"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "myfinances_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "myfinances_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "myfinances_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "myfinances_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
