package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the csmm module
type Metrics struct {
	SwapsTotal         *prometheus.CounterVec
	SwapVolume         *prometheus.CounterVec
	LiquidityAdded     *prometheus.CounterVec
	LiquidityRemoved   *prometheus.CounterVec
	SettlementFailures *prometheus.CounterVec
	ShareSupply        *prometheus.GaugeVec
}

var (
	csmmMetricsOnce sync.Once
	csmmMetrics     *Metrics
)

// NewMetrics creates and registers the module metrics (singleton pattern)
func NewMetrics() *Metrics {
	csmmMetricsOnce.Do(func() {
		csmmMetrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "swaps_total",
					Help:      "Number of constant-sum swaps by pool and result",
				},
				[]string{"pool", "result"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "swap_volume",
					Help:      "Swap volume by pool and input asset",
				},
				[]string{"pool", "asset"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "liquidity_added",
					Help:      "Liquidity deposited by pool and asset",
				},
				[]string{"pool", "asset"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "liquidity_removed",
					Help:      "Liquidity withdrawn by pool and asset",
				},
				[]string{"pool", "asset"},
			),
			SettlementFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "settlement_failures_total",
					Help:      "Settlement round-trips rejected by the host ledger",
				},
				[]string{"pool"},
			),
			ShareSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "csmm",
					Subsystem: "pool",
					Name:      "share_supply",
					Help:      "Total share supply by pool",
				},
				[]string{"pool"},
			),
		}
	})
	return csmmMetrics
}

// intToFloat renders an amount for metrics without overflowing int64.
func intToFloat(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
