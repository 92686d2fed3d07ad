package utils

import (
	"math"
)

// ToCents converts a major-unit amount to the minor units Stripe expects.
func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FromCents converts Stripe minor units back to major units.
func FromCents(v int64) float64 {
	return float64(v) / 100
}
