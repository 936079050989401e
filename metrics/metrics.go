// Package metrics exposes tier pricing and request metrics for Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fargate-cost/core/catalog"
	"fargate-cost/core/pricing"
)

const namespace = "fargate_cost"

// EstimateRequests counts estimate requests by outcome (ok, invalid, error)
var EstimateRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_requests_total",
		Help:      "Number of estimate requests handled, by outcome.",
	},
	[]string{"outcome"},
)

// TierCollector exports the daily cost of every catalog tier as gauges
type TierCollector struct {
	catalog *catalog.Catalog
	model   pricing.Model

	costPerDay *prometheus.Desc
	tierCount  *prometheus.Desc
}

// NewTierCollector creates a collector over the given catalog and model
func NewTierCollector(c *catalog.Catalog, model pricing.Model) *TierCollector {
	return &TierCollector{
		catalog: c,
		model:   model,
		costPerDay: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "tier", "daily_cost"),
			"Daily cost of a Fargate resource tier.",
			[]string{"tier", "vcpu", "memory_gb", "currency"},
			nil,
		),
		tierCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "catalog", "tiers"),
			"Number of tiers in the catalog.",
			nil,
			nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *TierCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.costPerDay
	ch <- c.tierCount
}

// Collect implements prometheus.Collector.
// The catalog and model are immutable, so collection needs no locking.
func (c *TierCollector) Collect(ch chan<- prometheus.Metric) {
	for _, tier := range c.catalog.Tiers() {
		cost, _ := c.model.CostPerDay(tier).Float64()
		ch <- prometheus.MustNewConstMetric(
			c.costPerDay,
			prometheus.GaugeValue,
			cost,
			tier.Label,
			strconv.FormatFloat(tier.CPU, 'f', -1, 64),
			strconv.FormatFloat(tier.Memory, 'f', -1, 64),
			c.model.Currency.String(),
		)
	}
	ch <- prometheus.MustNewConstMetric(c.tierCount, prometheus.GaugeValue, float64(c.catalog.Len()))
}
