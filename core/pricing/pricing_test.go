package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"fargate-cost/core/catalog"
	"fargate-cost/internal/errors"
)

func findTier(t *testing.T, cpu, memory float64) catalog.Tier {
	t.Helper()
	for _, tier := range catalog.Default().Tiers() {
		if tier.CPU == cpu && tier.Memory == memory {
			return tier
		}
	}
	t.Fatalf("no catalog tier with %g vCPU / %g GB", cpu, memory)
	return catalog.Tier{}
}

func TestCostPerDayExact(t *testing.T) {
	model := Default()
	tier := findTier(t, 1, 2)

	// (1 * 0.05056 + 2 * 0.00553) * 24
	want := decimal.RequireFromString("1.47888")
	got := model.CostPerDay(tier)
	if !got.Equal(want) {
		t.Errorf("CostPerDay(1 vCPU, 2 GB) = %s, expected %s", got, want)
	}
}

func TestCostPerHour(t *testing.T) {
	model := Default()
	tier := findTier(t, 0.25, 0.5)

	// 0.25 * 0.05056 + 0.5 * 0.00553
	want := decimal.RequireFromString("0.015405")
	got := model.CostPerHour(tier)
	if !got.Equal(want) {
		t.Errorf("CostPerHour(0.25 vCPU, 0.5 GB) = %s, expected %s", got, want)
	}
}

func TestCostPerMonthUses730Hours(t *testing.T) {
	model := Default()
	tier := findTier(t, 4, 8)

	hourly := model.CostPerHour(tier)
	want := hourly.Mul(decimal.NewFromInt(730))
	if got := model.CostPerMonth(tier); !got.Equal(want) {
		t.Errorf("CostPerMonth = %s, expected %s", got, want)
	}
}

func TestParse(t *testing.T) {
	model, err := Parse("0.04048", "0.004445", CurrencyUSD)
	if err != nil {
		t.Fatal(err)
	}
	if model.PerVCPUHour.String() != "0.04048" {
		t.Errorf("PerVCPUHour = %s", model.PerVCPUHour)
	}
	if model.Currency != CurrencyUSD {
		t.Errorf("Currency = %s", model.Currency)
	}
}

func TestParseDefaultsCurrency(t *testing.T) {
	model, err := Parse("0.05", "0.005", "")
	if err != nil {
		t.Fatal(err)
	}
	if model.Currency != CurrencyUSD {
		t.Errorf("Currency = %s, expected USD default", model.Currency)
	}
}

func TestParseInvalidPrice(t *testing.T) {
	_, err := Parse("not-a-price", "0.005", CurrencyUSD)
	if err == nil {
		t.Fatal("expected error for invalid price")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %v, expected CONFIG_ERROR", err)
	}
}
