// Package storage holds what the inventory storage backends share:
// Prometheus counters and the outcome labels they are recorded with.
package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/fridgy/internal/domain"
)

// Operation labels.
const (
	OpRead = "read"
	OpSave = "save"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultEmpty    = "empty"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	// Operations counts storage calls by backend, operation and result.
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fridgy",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Inventory storage operations by backend, operation and result.",
	}, []string{"backend", "op", "result"})

	// RecordsRejected counts reads whose stored data failed conversion.
	RecordsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fridgy",
		Name:      "records_rejected_total",
		Help:      "Stored inventories rejected because a record was invalid or duplicated.",
	}, []string{"backend"})
)

// Observe records the outcome of op on backend and returns err unchanged.
func Observe(backend, op string, err error) error {
	result := Result(err)

	Operations.WithLabelValues(backend, op, result).Inc()

	if result == ResultRejected {
		RecordsRejected.WithLabelValues(backend).Inc()
	}

	return err
}

// Result classifies err into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case domain.IsNotFound(err):
		return ResultEmpty
	case domain.IsValidation(err), domain.IsConflict(err):
		return ResultRejected
	default:
		return ResultError
	}
}
