package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_gateway_calls_total",
			Help: "Calls to the external book service by action and outcome",
		},
		[]string{"action", "outcome"}, // outcome: ok|backend_error|transport_error
	)
	OrdersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Order submission attempts by result",
		},
		[]string{"result"}, // ok|rejected|backend_error|transport_error
	)
	CartReconciled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_items_reconciled_total",
			Help: "Cart items pruned by availability reconciliation",
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Lookup cache operations",
		},
		[]string{"cache", "op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in each lookup cache",
		},
		[]string{"cache"},
	)
)

var registerOnce sync.Once

// MustRegister — registers the collectors on the default registry.
// Safe to call more than once; the process has a single set of
// collectors regardless of how many times the app is assembled.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(GatewayCalls, OrdersSubmitted, CartReconciled, CacheOps, CacheSize)
	})
}
