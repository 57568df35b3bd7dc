package bookingservice

import (
	"math"

	"github.com/StayNestPH/staynest/internal/domain"
)

const (
	serviceFeeRate = 0.10
	taxRate        = 0.12
	cleaningFee    = 50.0
)

// round2 rounds to the cent, half away from zero. Every monetary value in
// the engine goes through this one helper so that re-rounding a sum of
// already-rounded components never drifts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputePricing turns a nightly rate and stay length into the full fee
// breakdown. guestCount is validated but does not change the result; there
// is no per-guest pricing.
func ComputePricing(basePrice float64, nights int, guestCount int) (domain.PriceBreakdown, error) {
	var errs domain.ValidationErrors
	if basePrice < 0 {
		errs.Add("base price must not be negative")
	}
	if nights <= 0 {
		errs.Add("nights must be positive")
	}
	if guestCount < 1 {
		errs.Add("guest count must be at least 1")
	}
	if len(errs) > 0 {
		return domain.PriceBreakdown{}, errs
	}

	subtotal := round2(basePrice * float64(nights))
	serviceFee := round2(subtotal * serviceFeeRate)
	taxes := round2(subtotal * taxRate)
	total := round2(subtotal + serviceFee + cleaningFee + taxes)

	return domain.PriceBreakdown{
		BasePrice:   basePrice,
		Nights:      nights,
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		CleaningFee: cleaningFee,
		Taxes:       taxes,
		TotalAmount: total,
	}, nil
}
