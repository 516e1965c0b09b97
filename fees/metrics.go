package fees

import (
	"github.com/weighbridge/go-weighbridge/metrics"
	"github.com/weighbridge/go-weighbridge/ratio"
)

const subsystem = "fees"

var (
	currentMultiplier = metrics.NewGauge(
		"multiplier",
		subsystem,
		"fee multiplier in effect, as a signed factor",
		nil,
	).WithLabelValues()

	blocksOverIdeal = metrics.NewCounter(
		"blocks_over_ideal",
		subsystem,
		"number of blocks heavier than the ideal block weight",
		nil,
	).WithLabelValues()

	blocksUnderIdeal = metrics.NewCounter(
		"blocks_under_ideal",
		subsystem,
		"number of blocks lighter than the ideal block weight",
		nil,
	).WithLabelValues()
)

// multiplierValue renders a multiplier as a float factor, for metrics only.
func multiplierValue(m Multiplier) float64 {
	frac := float64(m.Fraction.Parts()) / float64(ratio.Unit)
	if m.Sign == Negative {
		return -frac
	}
	return float64(m.Carry) + frac
}
