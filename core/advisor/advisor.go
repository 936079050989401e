// Package advisor turns a provisioning result into right-sizing advice:
// whether the provisioned tier is exactly optimal and, when it is not, what
// the service should request to land exactly on each candidate tier.
package advisor

import (
	"github.com/shopspring/decimal"

	"fargate-cost/core/pricing"
	"fargate-cost/core/selector"
	"fargate-cost/core/workload"
)

// Advisor prices and ranks provisioning options
type Advisor struct {
	model pricing.Model
}

// New creates an advisor with the given pricing model
func New(model pricing.Model) *Advisor {
	return &Advisor{model: model}
}

// Option is one actionable tier choice
type Option struct {
	// Selection is the underlying tier selection with its surplus
	Selection selector.Selection `json:"selection"`

	// CostPerDay is the tier's daily cost
	CostPerDay decimal.Decimal `json:"cost_per_day"`

	// OptimalRequest is what the service should request so the workload
	// total lands exactly on the tier (service request plus surplus)
	OptimalRequest workload.Requests `json:"optimal_request"`

	// CPUAdjustment is the change to the service CPU request: positive means
	// raise the request, negative means lower it
	CPUAdjustment float64 `json:"cpu_adjustment"`

	// MemoryAdjustment is the change to the service memory request
	MemoryAdjustment float64 `json:"memory_adjustment"`
}

// Evaluation is the right-sizing verdict for one workload
type Evaluation struct {
	// Optimal reports whether the minimal covering tier matches the workload
	// total exactly, leaving nothing to optimize
	Optimal bool `json:"optimal"`

	// Options are the candidate tiers, in presentation order: the minimal
	// covering tier first, then the cost-lowering alternate when it differs
	Options []Option `json:"options"`
}

// Evaluate builds the evaluation for a service request and its provision.
// CPU is roughly 10x more expensive than memory per unit-hour, so when both
// options change cost, growing into memory headroom beats growing into CPU.
func (a *Advisor) Evaluate(service workload.Requests, prov *selector.Provision) Evaluation {
	if prov.Primary.Exact() {
		return Evaluation{
			Optimal: true,
			Options: []Option{a.option(service, prov.Primary)},
		}
	}

	options := []Option{a.option(service, prov.Primary)}
	if prov.Alternate.Tier != prov.Primary.Tier {
		options = append(options, a.option(service, prov.Alternate))
	}

	return Evaluation{Optimal: false, Options: options}
}

func (a *Advisor) option(service workload.Requests, sel selector.Selection) Option {
	return Option{
		Selection:  sel,
		CostPerDay: a.model.CostPerDay(sel.Tier),
		OptimalRequest: workload.Requests{
			CPU:    service.CPU + sel.CPUSurplus,
			Memory: service.Memory + sel.MemorySurplus,
		},
		CPUAdjustment:    sel.CPUSurplus,
		MemoryAdjustment: sel.MemorySurplus,
	}
}
