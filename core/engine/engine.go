// Package engine orchestrates tier selection, pricing and right-sizing advice
// for workloads. The engine owns no mutable state after construction and is
// safe for concurrent use.
package engine

import (
	"time"

	"fargate-cost/core/advisor"
	"fargate-cost/core/catalog"
	"fargate-cost/core/output"
	"fargate-cost/core/pricing"
	"fargate-cost/core/selector"
	"fargate-cost/core/workload"
)

// Engine ties the catalog, selector, pricing model and advisor together
type Engine struct {
	catalog  *catalog.Catalog
	selector *selector.Selector
	advisor  *advisor.Advisor
	model    pricing.Model
	version  string
}

// New creates an engine over the given catalog and pricing model
func New(c *catalog.Catalog, model pricing.Model, version string) *Engine {
	return &Engine{
		catalog:  c,
		selector: selector.New(c),
		advisor:  advisor.New(model),
		model:    model,
		version:  version,
	}
}

// Catalog returns the engine's tier catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Pricing returns the engine's pricing model
func (e *Engine) Pricing() pricing.Model {
	return e.model
}

// Estimate runs the full sizing pipeline for one workload
func (e *Engine) Estimate(w workload.Workload) (*output.Report, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	total := w.Total()
	prov, err := e.selector.Evaluate(total.CPU, total.Memory)
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Workload:   w,
		Total:      total,
		Provision:  prov,
		Evaluation: e.advisor.Evaluate(w.Service, prov),
		Currency:   e.model.Currency,
		Metadata: output.ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   e.version,
		},
	}, nil
}
