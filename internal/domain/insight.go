package domain

import "fmt"

// warmingTarget is the policy target against which warming is judged, °C.
const warmingTarget = 1.5

// insightRule pairs an independent predicate with a message builder. Rules
// are evaluated strictly in table order; the order is presentational but is
// part of the output contract, so tests pin it.
type insightRule struct {
	applies func(ClimateResult) bool
	message func(ClimateResult) string
}

func always(ClimateResult) bool { return true }

var insightRules = []insightRule{
	{
		applies: always,
		message: func(r ClimateResult) string {
			return fmt.Sprintf("Estimated warming is %.2f°C from %.2f W/m² of total radiative forcing.",
				r.DeltaT, r.TotalForcing)
		},
	},
	{
		applies: func(r ClimateResult) bool { return r.DeltaT > warmingTarget },
		message: func(r ClimateResult) string {
			reduction := max(0, (r.DeltaT-warmingTarget)/climateSensitivity)
			return fmt.Sprintf("Forcing must fall by %.2f W/m² to hold warming at the %.1f°C target.",
				reduction, warmingTarget)
		},
	},
	{
		applies: func(r ClimateResult) bool { return r.DeltaT <= warmingTarget },
		message: func(r ClimateResult) string {
			return fmt.Sprintf("Warming stays within the %.1f°C target.", warmingTarget)
		},
	},
	{
		applies: always,
		message: func(r ClimateResult) string {
			top := r.Breakdown.TopContributor()
			return fmt.Sprintf("Largest forcing contributor: %s at %.2f W/m².", top.Source, top.Forcing)
		},
	},
	{
		applies: func(r ClimateResult) bool { return r.Inputs.RenewableShare >= 60 },
		message: func(ClimateResult) string {
			return "High renewable share cuts CO2 emissions and clears urban air."
		},
	},
	{
		applies: func(r ClimateResult) bool { return r.Inputs.WasteReduction >= 30 },
		message: func(ClimateResult) string {
			return "Waste reduction at this level meaningfully curbs landfill methane."
		},
	},
	{
		applies: func(r ClimateResult) bool { return r.Inputs.Deforestation >= 1 },
		message: func(ClimateResult) string {
			return "Deforestation pressure is eroding the land carbon sink."
		},
	},
	{
		applies: always,
		message: func(r ClimateResult) string {
			return fmt.Sprintf("Projected sea-level rise: %.2f m.", r.SeaLevelRise)
		},
	},
}

// Insights runs the rule table over a result and returns the matching
// messages in table order. Every call produces a fresh slice.
func Insights(r ClimateResult) []string {
	lines := make([]string, 0, len(insightRules))
	for _, rule := range insightRules {
		if rule.applies(r) {
			lines = append(lines, rule.message(r))
		}
	}
	return lines
}
