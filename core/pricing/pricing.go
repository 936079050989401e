// Package pricing - Fargate pricing model and cost computation
// The model is two per-unit hourly rates, fixed at initialization and injected
// into whatever needs to price a tier. No live price lookup happens here.
package pricing

import (
	"github.com/shopspring/decimal"

	"fargate-cost/core/catalog"
	"fargate-cost/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Billing period lengths in hours. Months use the 730-hour convention.
const (
	HoursPerDay   = 24
	HoursPerMonth = 730
)

// Default prices: Fargate Linux/x86 for Asia Pacific (Singapore),
// https://aws.amazon.com/fargate/pricing/
const (
	defaultPerVCPUHour = "0.05056"
	defaultPerGBHour   = "0.00553"
)

// Model holds the per-unit hourly rates used to price a tier
type Model struct {
	// PerVCPUHour is the price of one vCPU for one hour
	PerVCPUHour decimal.Decimal `json:"per_vcpu_hour"`

	// PerGBHour is the price of one GB of memory for one hour
	PerGBHour decimal.Decimal `json:"per_gb_hour"`

	// Currency is the price currency
	Currency Currency `json:"currency"`
}

// Default returns the model built from the published default rates
func Default() Model {
	return Model{
		PerVCPUHour: decimal.RequireFromString(defaultPerVCPUHour),
		PerGBHour:   decimal.RequireFromString(defaultPerGBHour),
		Currency:    CurrencyUSD,
	}
}

// Parse builds a model from decimal price strings
func Parse(perVCPUHour, perGBHour string, currency Currency) (Model, error) {
	cpu, err := decimal.NewFromString(perVCPUHour)
	if err != nil {
		return Model{}, errors.Config("invalid per-vCPU price: "+perVCPUHour, err)
	}
	gb, err := decimal.NewFromString(perGBHour)
	if err != nil {
		return Model{}, errors.Config("invalid per-GB price: "+perGBHour, err)
	}
	if currency == "" {
		currency = CurrencyUSD
	}
	return Model{PerVCPUHour: cpu, PerGBHour: gb, Currency: currency}, nil
}

// CostPerHour returns the hourly cost of a tier.
// No rounding is performed; presentation rounding is the caller's concern.
func (m Model) CostPerHour(tier catalog.Tier) decimal.Decimal {
	cpu := decimal.NewFromFloat(tier.CPU).Mul(m.PerVCPUHour)
	memory := decimal.NewFromFloat(tier.Memory).Mul(m.PerGBHour)
	return cpu.Add(memory)
}

// CostPerDay returns the daily cost of a tier
func (m Model) CostPerDay(tier catalog.Tier) decimal.Decimal {
	return m.CostPerHour(tier).Mul(decimal.NewFromInt(HoursPerDay))
}

// CostPerMonth returns the monthly cost of a tier (730 hours)
func (m Model) CostPerMonth(tier catalog.Tier) decimal.Decimal {
	return m.CostPerHour(tier).Mul(decimal.NewFromInt(HoursPerMonth))
}
