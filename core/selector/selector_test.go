package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fargate-cost/core/catalog"
	"fargate-cost/internal/errors"
)

func newTestSelector() *Selector {
	return New(catalog.Default())
}

func TestSelectMinimalExamples(t *testing.T) {
	s := newTestSelector()

	tests := []struct {
		cpu, memory         float64
		wantCPU, wantMemory float64
	}{
		{0.1, 0.1, 0.25, 0.5},
		{0.25, 2, 0.25, 2},
		{0.3, 1, 0.5, 1},
		// first 2-vCPU entry with memory >= 3.75
		{2.0, 3.75, 2, 4},
		{1.5, 5, 2, 5},
		{16, 120, 16, 120},
		{9, 20, 16, 32},
	}

	for _, tt := range tests {
		tier, err := s.SelectMinimal(tt.cpu, tt.memory)
		if err != nil {
			t.Fatalf("SelectMinimal(%g, %g) returned error: %v", tt.cpu, tt.memory, err)
		}
		if tier.CPU != tt.wantCPU || tier.Memory != tt.wantMemory {
			t.Errorf("SelectMinimal(%g, %g) = %q, expected %g vCPU / %g GB",
				tt.cpu, tt.memory, tier.Label, tt.wantCPU, tt.wantMemory)
		}
	}
}

func TestSelectMinimalIsFirstMatch(t *testing.T) {
	s := newTestSelector()
	tiers := catalog.Default().Tiers()

	// Over a grid of valid requests, the result must cover the request and no
	// earlier tier in catalog order may also cover it.
	for cpu := 0.25; cpu <= 16; cpu += 1.25 {
		for memory := 0.5; memory <= 120; memory += 7.5 {
			tier, err := s.SelectMinimal(cpu, memory)
			if err != nil {
				t.Fatalf("SelectMinimal(%g, %g) returned error: %v", cpu, memory, err)
			}
			if tier.CPU < cpu || tier.Memory < memory {
				t.Fatalf("SelectMinimal(%g, %g) = %q does not cover the request", cpu, memory, tier.Label)
			}
			for _, earlier := range tiers {
				if earlier == tier {
					break
				}
				if earlier.CPU >= cpu && earlier.Memory >= memory {
					t.Fatalf("SelectMinimal(%g, %g) = %q but earlier tier %q also covers",
						cpu, memory, tier.Label, earlier.Label)
				}
			}
		}
	}
}

func TestSelectMinimalResourceExceeded(t *testing.T) {
	s := newTestSelector()

	for _, req := range [][2]float64{{16.01, 1}, {1, 121}, {17, 130}} {
		_, err := s.SelectMinimal(req[0], req[1])
		if err == nil {
			t.Fatalf("SelectMinimal(%g, %g) expected error, got none", req[0], req[1])
		}
		if !errors.IsType(err, errors.TypeResourceExceeded) {
			t.Errorf("SelectMinimal(%g, %g) error type = %v, expected RESOURCE_EXCEEDED", req[0], req[1], err)
		}
	}
}

func TestSelectAlternateExactCPUShavesMemory(t *testing.T) {
	s := newTestSelector()

	primary, err := s.SelectMinimal(1.0, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if primary.CPU != 1 || primary.Memory != 4 {
		t.Fatalf("primary = %q, expected 1 vCPU / 4 GB", primary.Label)
	}

	alt := s.SelectAlternate(primary, 1.0, 4.0)
	if alt.CPU != 1 || alt.Memory != 3 {
		t.Fatalf("alternate = %q, expected 1 vCPU / 3 GB", alt.Label)
	}
	if alt.Memory >= 4.0 {
		t.Errorf("alternate memory %g should under-provision the 4 GB request", alt.Memory)
	}
}

func TestSelectAlternateLowerBand(t *testing.T) {
	s := newTestSelector()

	primary, err := s.SelectMinimal(1.5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if primary.CPU != 2 || primary.Memory != 5 {
		t.Fatalf("primary = %q, expected 2 vCPU / 5 GB", primary.Label)
	}

	// Lower band is 1 vCPU; memory window is the open interval (4, 6), and 5
	// is the largest catalog memory inside it.
	alt := s.SelectAlternate(primary, 1.5, 5)
	if alt.CPU != 1 || alt.Memory != 5 {
		t.Fatalf("alternate = %q, expected 1 vCPU / 5 GB", alt.Label)
	}
}

func TestSelectAlternateFallsBackToPrimary(t *testing.T) {
	s := newTestSelector()

	tests := []struct {
		name        string
		cpu, memory float64
	}{
		// exact CPU, nothing below the smallest memory in the band
		{"no smaller memory", 0.25, 0.5},
		// over-provisioned CPU but no band below 0.25
		{"no lower band", 0.2, 0.5},
		// lower band exists but its memory range misses the window entirely
		{"empty window", 1.5, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, err := s.SelectMinimal(tt.cpu, tt.memory)
			if err != nil {
				t.Fatal(err)
			}
			alt := s.SelectAlternate(primary, tt.cpu, tt.memory)
			if alt != primary {
				t.Errorf("alternate = %q, expected primary %q unchanged", alt.Label, primary.Label)
			}
		})
	}
}

func TestEvaluateSurplus(t *testing.T) {
	s := newTestSelector()

	prov, err := s.Evaluate(1.5, 5)
	if err != nil {
		t.Fatal(err)
	}

	if prov.Primary.CPUSurplus != 0.5 || prov.Primary.MemorySurplus != 0 {
		t.Errorf("primary surplus = (%g, %g), expected (0.5, 0)",
			prov.Primary.CPUSurplus, prov.Primary.MemorySurplus)
	}
	if prov.Primary.UnderProvisioned {
		t.Error("primary selection must never be under-provisioned")
	}

	if prov.Alternate.CPUSurplus != -0.5 || prov.Alternate.MemorySurplus != 0 {
		t.Errorf("alternate surplus = (%g, %g), expected (-0.5, 0)",
			prov.Alternate.CPUSurplus, prov.Alternate.MemorySurplus)
	}
	if !prov.Alternate.UnderProvisioned {
		t.Error("alternate selection with negative CPU surplus must be flagged under-provisioned")
	}
}

func TestEvaluateUnderProvisionedMemory(t *testing.T) {
	s := newTestSelector()

	prov, err := s.Evaluate(1.0, 4.0)
	if err != nil {
		t.Fatal(err)
	}

	if prov.Alternate.Tier.Memory != 3 {
		t.Fatalf("alternate tier = %q, expected 1 vCPU / 3 GB", prov.Alternate.Tier.Label)
	}
	if prov.Alternate.MemorySurplus != -1 {
		t.Errorf("alternate memory surplus = %g, expected -1", prov.Alternate.MemorySurplus)
	}
	if !prov.Alternate.UnderProvisioned {
		t.Error("alternate selection must be flagged under-provisioned")
	}
}

func TestSelectionIsIdempotent(t *testing.T) {
	s := newTestSelector()

	first, err := s.Evaluate(2.5, 7.25)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Evaluate(2.5, 7.25)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated evaluation differs (-first +second):\n%s", diff)
	}
}
