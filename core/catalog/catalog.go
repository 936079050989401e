// Package catalog - Authoritative Fargate resource tier catalog
// Defines the canonical ordered list of (vCPU, memory) combinations a Fargate
// pod can be provisioned with. This is the source of truth for tier selection.
package catalog

import (
	"fmt"
	"strconv"
)

// Tier is one fixed (vCPU, memory) resource size Fargate can allocate
type Tier struct {
	// Label is the human-readable name, e.g. "0.5 vCPU, 2 GB"
	Label string `json:"label"`

	// CPU is the vCPU allocation
	CPU float64 `json:"cpu"`

	// Memory is the memory allocation in GB
	Memory float64 `json:"memory"`
}

// IsZero reports whether the tier is the zero value
func (t Tier) IsZero() bool {
	return t.CPU == 0 && t.Memory == 0
}

// String returns the tier label
func (t Tier) String() string {
	return t.Label
}

// Catalog is the complete ordered set of tiers.
// The order is part of the selection contract: CPU bands ascending, memory
// ascending within a band. First-match scans over Tiers depend on it, so the
// sequence is built once and never mutated.
type Catalog struct {
	tiers []Tier
}

// band is one CPU band's valid memory values
type band struct {
	cpu      float64
	memories []float64
}

// Default builds the catalog from the published Fargate pod configuration
// bands. Generation is deterministic; two calls produce identical catalogs.
func Default() *Catalog {
	bands := []band{
		{cpu: 0.25, memories: []float64{0.5, 1, 2}},
		{cpu: 0.5, memories: []float64{1, 2, 3, 4}},
		// 1 vCPU: 2 to 8 GB in 1-GB increments
		{cpu: 1, memories: memoryRange(2, 8, 1)},
		// 2 vCPU: 4 to 16 GB in 1-GB increments
		{cpu: 2, memories: memoryRange(4, 16, 1)},
		// 4 vCPU: 8 to 30 GB in 1-GB increments
		{cpu: 4, memories: memoryRange(8, 30, 1)},
		// 8 vCPU: 16 to 60 GB in 4-GB increments
		{cpu: 8, memories: memoryRange(16, 60, 4)},
		// 16 vCPU: 32 to 120 GB in 8-GB increments
		{cpu: 16, memories: memoryRange(32, 120, 8)},
	}

	var tiers []Tier
	for _, b := range bands {
		for _, memory := range b.memories {
			tiers = append(tiers, newTier(b.cpu, memory))
		}
	}

	return &Catalog{tiers: tiers}
}

// memoryRange enumerates min..max inclusive with the given step
func memoryRange(min, max, step float64) []float64 {
	var values []float64
	for v := min; v <= max; v += step {
		values = append(values, v)
	}
	return values
}

func newTier(cpu, memory float64) Tier {
	return Tier{
		Label:  fmt.Sprintf("%s vCPU, %s GB", formatValue(cpu), formatValue(memory)),
		CPU:    cpu,
		Memory: memory,
	}
}

// formatValue renders a resource value without trailing zeros
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tiers returns the tiers in generation order.
// The returned slice is shared and must not be modified.
func (c *Catalog) Tiers() []Tier {
	return c.tiers
}

// Len returns the number of tiers
func (c *Catalog) Len() int {
	return len(c.tiers)
}

// MaxCPU returns the largest vCPU value in the catalog
func (c *Catalog) MaxCPU() float64 {
	return c.tiers[len(c.tiers)-1].CPU
}

// MaxMemory returns the largest memory value in the catalog
func (c *Catalog) MaxMemory() float64 {
	return c.tiers[len(c.tiers)-1].Memory
}
