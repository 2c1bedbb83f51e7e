package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the tokenswap module
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	RoutedSwapsTotal prometheus.Counter
	LiquidityOps     *prometheus.CounterVec
	PoolsTotal       prometheus.Gauge
	OwnerFeeMints    prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers the module metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "swaps_total",
					Help:      "Total number of swap attempts by curve type and status",
				},
				[]string{"curve_type", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"token_in"},
			),
			RoutedSwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "routed_swaps_total",
					Help:      "Total number of committed routed swaps",
				},
			),
			LiquidityOps: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "liquidity_ops_total",
					Help:      "Total number of committed liquidity operations by kind",
				},
				[]string{"op"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "pools_total",
					Help:      "Number of registered pools",
				},
			),
			OwnerFeeMints: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "tokenswap",
					Subsystem: "engine",
					Name:      "owner_fee_mints_total",
					Help:      "Total number of owner fee settlements minted as pool tokens",
				},
			),
		}
	})
	return metrics
}
