package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "withbliss",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	recordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "withbliss",
			Name:      "records_created_total",
			Help:      "Count of rows created by entity.",
		},
		[]string{"entity"},
	)

	packagesChanged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "withbliss",
			Name:      "packages_changed_total",
			Help:      "Count of package updates and deletes.",
		},
		[]string{"operation"},
	)

	storageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "withbliss",
			Name:      "storage_errors_total",
			Help:      "Count of failed storage operations.",
		},
		[]string{"operation"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, recordsCreated, packagesChanged, storageErrors)
	})
}

func ObserveRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func IncCreated(entity string) {
	recordsCreated.WithLabelValues(entity).Inc()
}

func IncPackageChanged(operation string) {
	packagesChanged.WithLabelValues(operation).Inc()
}

func IncStorageError(operation string) {
	storageErrors.WithLabelValues(operation).Inc()
}
