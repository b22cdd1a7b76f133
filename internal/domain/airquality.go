package domain

// AirQualityLevel is the ordinal tier of the air-quality classification.
type AirQualityLevel int

// Classification tiers, lowest to highest.
const (
	AirQualityLow AirQualityLevel = iota
	AirQualityMedium
	AirQualityHigh
)

// AirQuality is the qualitative air-quality outcome for a scenario.
type AirQuality struct {
	Label string          `json:"label"`
	Level AirQualityLevel `json:"level"`
	Score float64         `json:"score"`
}

// ClassifyAirQuality scores the two policy levers and maps the score to a
// three-level category. The waste term is normalized by 60 rather than 100 —
// the asymmetry weights waste reduction more steeply and is part of the
// model, not a mistake. Thresholds are strict: a score of exactly 0.75 or
// 0.4 falls to the lower tier. The score itself is not capped, so extreme
// inputs can exceed 1.
func ClassifyAirQuality(renewableShare, wasteReduction float64) AirQuality {
	score := 0.6*(renewableShare/100) + 0.4*(wasteReduction/60)

	switch {
	case score > 0.75:
		return AirQuality{Label: "High", Level: AirQualityHigh, Score: score}
	case score > 0.4:
		return AirQuality{Label: "Medium", Level: AirQualityMedium, Score: score}
	default:
		return AirQuality{Label: "Low", Level: AirQualityLow, Score: score}
	}
}
