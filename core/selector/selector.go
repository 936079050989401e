// Package selector implements covering-tier selection over the catalog.
//
// Selection is a first-match scan in catalog order, which yields the smallest
// covering CPU band and, within it, the smallest covering memory. The
// alternate selection is a cost-lowering heuristic that may deliberately
// under-provision; see SelectAlternate.
package selector

import (
	"fargate-cost/core/catalog"
	"fargate-cost/internal/errors"
)

// Selector picks tiers from an immutable catalog
type Selector struct {
	catalog *catalog.Catalog
}

// New creates a selector over the given catalog
func New(c *catalog.Catalog) *Selector {
	return &Selector{catalog: c}
}

// SelectMinimal returns the first tier in catalog order that covers both the
// requested CPU and memory. Catalog order makes the first match the cheapest
// covering tier: smallest CPU band, then smallest memory within the band.
//
// Returns a RESOURCE_EXCEEDED error when no tier covers the request. Inputs
// are assumed positive and finite; range validation is the caller's job.
func (s *Selector) SelectMinimal(cpuReq, memReq float64) (catalog.Tier, error) {
	for _, tier := range s.catalog.Tiers() {
		if tier.CPU >= cpuReq && tier.Memory >= memReq {
			return tier, nil
		}
	}
	return catalog.Tier{}, errors.ResourceExceeded(cpuReq, memReq)
}

// SelectAlternate derives a cheaper tier from the minimal covering tier for
// the same request. Two disjoint cases, tried in order:
//
//  1. The primary tier's CPU matches the request exactly: shave memory by
//     taking the largest same-CPU tier strictly below the requested memory.
//  2. The primary tier over-provisions CPU while covering memory: drop to the
//     next lower CPU band and take the largest memory within 1 GB of the
//     request (open interval).
//
// If neither case yields a candidate, the primary tier is returned unchanged.
// The returned tier may be smaller than the request in either dimension; a
// caller accepting it must lower its request to the tier's capacity.
func (s *Selector) SelectAlternate(primary catalog.Tier, cpuReq, memReq float64) catalog.Tier {
	switch {
	case primary.CPU == cpuReq:
		// Same CPU band, tightest memory strictly below the request.
		if best, ok := s.largestMemoryBelow(cpuReq, memReq); ok {
			return best
		}

	case primary.CPU > cpuReq && primary.Memory >= memReq:
		lowerCPU, ok := s.nextLowerBand(primary.CPU)
		if !ok {
			break
		}
		if best, ok := s.largestMemoryInWindow(lowerCPU, memReq); ok {
			return best
		}
	}

	return primary
}

// largestMemoryBelow finds the tier with the given CPU and the largest memory
// strictly below memReq
func (s *Selector) largestMemoryBelow(cpu, memReq float64) (catalog.Tier, bool) {
	var best catalog.Tier
	found := false
	for _, tier := range s.catalog.Tiers() {
		if tier.CPU == cpu && tier.Memory < memReq {
			if !found || tier.Memory > best.Memory {
				best = tier
				found = true
			}
		}
	}
	return best, found
}

// nextLowerBand finds the largest CPU value in the catalog strictly below cpu
func (s *Selector) nextLowerBand(cpu float64) (float64, bool) {
	var lower float64
	found := false
	for _, tier := range s.catalog.Tiers() {
		if tier.CPU < cpu && tier.CPU > lower {
			lower = tier.CPU
			found = true
		}
	}
	return lower, found
}

// largestMemoryInWindow finds the tier in the given CPU band whose memory
// falls in the open interval (memReq-1, memReq+1), preferring the largest
func (s *Selector) largestMemoryInWindow(cpu, memReq float64) (catalog.Tier, bool) {
	var best catalog.Tier
	found := false
	for _, tier := range s.catalog.Tiers() {
		if tier.CPU != cpu {
			continue
		}
		diff := tier.Memory - memReq
		if diff > -1 && diff < 1 {
			if !found || tier.Memory > best.Memory {
				best = tier
				found = true
			}
		}
	}
	return best, found
}
