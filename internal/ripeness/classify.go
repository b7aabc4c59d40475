package ripeness

import "math"

// FullyRipeBrix is the Brix value reported as 100% ripe.
const FullyRipeBrix = 30.0

// Assessment is the classifier output for one Brix value.
type Assessment struct {
	Tier       int     `json:"tier" yaml:"tier"`
	Label      string  `json:"label" yaml:"label"`
	Advice     string  `json:"advice" yaml:"advice"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Lookup returns the tier for brix. Values at or below 5.0, negatives and
// NaN included, fall into tier 1; everything above 25.0 is tier 7.
func Lookup(brix float64) Tier {
	if math.IsNaN(brix) {
		return Tiers[0]
	}
	for _, t := range Tiers {
		if brix <= t.Max {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// Percentage maps brix linearly onto [0, 100] with FullyRipeBrix as 100%.
// It is independent of the tier boundaries.
func Percentage(brix float64) float64 {
	if math.IsNaN(brix) {
		return 0
	}
	return math.Min(100.0, math.Max(0.0, brix/FullyRipeBrix*100.0))
}

// Classify returns tier, label, advice and ripeness percentage for brix.
func Classify(brix float64) Assessment {
	t := Lookup(brix)
	return Assessment{
		Tier:       t.Level,
		Label:      t.Label,
		Advice:     t.Advice,
		Percentage: Percentage(brix),
	}
}
