package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalogSize(t *testing.T) {
	c := Default()
	// 3 + 4 + 7 + 13 + 23 + 12 + 12 entries across the seven bands
	if c.Len() != 74 {
		t.Fatalf("expected 74 tiers, got %d", c.Len())
	}
}

func TestDefaultCatalogIsDeterministic(t *testing.T) {
	a := Default()
	b := Default()
	if diff := cmp.Diff(a.Tiers(), b.Tiers()); diff != "" {
		t.Fatalf("catalogs differ between runs (-first +second):\n%s", diff)
	}
}

func TestBandMembership(t *testing.T) {
	expected := map[float64]struct {
		min, max, step float64
		count          int
	}{
		0.25: {0.5, 2, 0, 3},
		0.5:  {1, 4, 0, 4},
		1:    {2, 8, 1, 7},
		2:    {4, 16, 1, 13},
		4:    {8, 30, 1, 23},
		8:    {16, 60, 4, 12},
		16:   {32, 120, 8, 12},
	}

	counts := make(map[float64]int)
	for _, tier := range Default().Tiers() {
		band, ok := expected[tier.CPU]
		if !ok {
			t.Fatalf("tier %q has CPU outside the defined bands", tier.Label)
		}
		if tier.Memory < band.min || tier.Memory > band.max {
			t.Errorf("tier %q memory outside band range [%g, %g]", tier.Label, band.min, band.max)
		}
		counts[tier.CPU]++
	}

	for cpu, band := range expected {
		if counts[cpu] != band.count {
			t.Errorf("band %g vCPU: expected %d tiers, got %d", cpu, band.count, counts[cpu])
		}
	}
}

func TestCatalogOrder(t *testing.T) {
	tiers := Default().Tiers()
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.CPU < prev.CPU {
			t.Fatalf("CPU order violated at index %d: %q after %q", i, cur.Label, prev.Label)
		}
		if cur.CPU == prev.CPU && cur.Memory <= prev.Memory {
			t.Fatalf("memory order violated at index %d: %q after %q", i, cur.Label, prev.Label)
		}
	}
}

func TestTierLabels(t *testing.T) {
	tiers := Default().Tiers()

	if got := tiers[0].Label; got != "0.25 vCPU, 0.5 GB" {
		t.Errorf("first tier label = %q", got)
	}
	if got := tiers[len(tiers)-1].Label; got != "16 vCPU, 120 GB" {
		t.Errorf("last tier label = %q", got)
	}
}

func TestMaxValues(t *testing.T) {
	c := Default()
	if c.MaxCPU() != 16 {
		t.Errorf("MaxCPU = %g, expected 16", c.MaxCPU())
	}
	if c.MaxMemory() != 120 {
		t.Errorf("MaxMemory = %g, expected 120", c.MaxMemory())
	}
}
