package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ライフサイクル3操作のカウンタ
type LifecycleMetrics struct {
	OrdersPlaced     prometheus.Counter
	PaymentsRecorded prometheus.Counter
	OrdersCancelled  prometheus.Counter

	//op: place_order / record_payment / cancel_order
	OperationErrors *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *LifecycleMetrics {
	f := promauto.With(reg)

	return &LifecycleMetrics{
		OrdersPlaced: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wholesale",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed successfully.",
		}),
		PaymentsRecorded: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wholesale",
			Subsystem: "orders",
			Name:      "payments_recorded_total",
			Help:      "Payment ledger entries recorded through the lifecycle path.",
		}),
		OrdersCancelled: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wholesale",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Orders cancelled successfully.",
		}),
		OperationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wholesale",
			Subsystem: "orders",
			Name:      "operation_errors_total",
			Help:      "Rejected or failed lifecycle operations.",
		}, []string{"op"}),
	}
}
