// Package costmodel estimates the monthly cost of owning a property:
// mortgage interest, energy and (for houses) maintenance.
package costmodel

import (
	"fmt"
	"math"

	"housing-market/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultInterestRate is the yearly mortgage interest used when nothing else is configured
const DefaultInterestRate = 0.04

var (
	monthsPerYear   = decimal.NewFromInt(12)
	maintenanceRate = decimal.RequireFromString("0.01")
	plotCostPerM2   = decimal.NewFromInt(5)

	maxEstimate = decimal.NewFromInt(math.MaxInt)
	minEstimate = decimal.NewFromInt(math.MinInt)
)

// Rates carries the market-wide parameters an estimate depends on.
// It is read at estimation time, so changing it affects every later estimate.
type Rates struct {
	InterestRate decimal.Decimal
}

// NewRates builds Rates from a plain interest rate, e.g. 0.04 for 4%
func NewRates(interestRate float64) Rates {
	return Rates{InterestRate: decimal.NewFromFloat(interestRate)}
}

// DefaultRates returns Rates using DefaultInterestRate
func DefaultRates() Rates {
	return NewRates(DefaultInterestRate)
}

// Attributes is the read-only view of a property the estimate is computed from
type Attributes struct {
	PriceAsked *int
	LivingArea int
	Variant    models.Variant
}

// EnergyFactor returns the yearly energy cost per m2 of living area for a variant
func EnergyFactor(v models.Variant) float64 {
	return energyFactor(v).InexactFloat64()
}

func energyFactor(v models.Variant) decimal.Decimal {
	switch v := v.(type) {
	case models.Garage:
		return decimal.Zero
	case models.Apartment:
		return decimal.NewFromInt(9)
	case models.House:
		switch v.Type {
		case models.Detached, models.Bungalow:
			return decimal.NewFromInt(15)
		case models.SemiDetached:
			return decimal.NewFromInt(13)
		case models.Terraced:
			return decimal.NewFromInt(11)
		default:
			panic(fmt.Sprintf("costmodel: unknown housing type %q", v.Type))
		}
	default:
		panic(fmt.Sprintf("costmodel: unknown property variant %T", v))
	}
}

// Estimate returns the estimated monthly cost in whole currency units.
// The second result is false when the asking price is absent ("price on request").
// The yearly total is divided by 12 and truncated toward zero, not rounded.
// A result outside the int range saturates at math.MaxInt or math.MinInt.
func Estimate(a Attributes, r Rates) (int, bool) {
	if a.PriceAsked == nil {
		return 0, false
	}

	price := decimal.NewFromInt(int64(*a.PriceAsked))
	mortgage := price.Mul(r.InterestRate)
	energy := decimal.NewFromInt(int64(a.LivingArea)).Mul(energyFactor(a.Variant))

	var yearly decimal.Decimal
	switch v := a.Variant.(type) {
	case models.Garage:
		yearly = mortgage
	case models.Apartment:
		fees := decimal.NewFromInt(int64(v.PaymentVVE)).Mul(monthsPerYear)
		yearly = mortgage.Add(energy).Add(fees)
	case models.House:
		maintenance := price.Mul(maintenanceRate).Add(decimal.NewFromInt(int64(v.PlotArea)).Mul(plotCostPerM2))
		yearly = mortgage.Add(maintenance).Add(energy)
	default:
		panic(fmt.Sprintf("costmodel: unknown property variant %T", v))
	}

	monthly := yearly.Div(monthsPerYear).Truncate(0)
	switch {
	case monthly.GreaterThan(maxEstimate):
		return math.MaxInt, true
	case monthly.LessThan(minEstimate):
		return math.MinInt, true
	}
	return int(monthly.IntPart()), true
}
