package domain

import "math"

// Myhre et al. (1998) simplified-expression coefficients. Fixed empirical
// constants — changing any of them changes the model.
const (
	co2ScalingFactor = 5.35  // W/m² per unit ln(C/C₀)
	ch4ScalingFactor = 0.036 // W/m² per √ppb
	n2oScalingFactor = 0.12  // W/m² per √ppb

	overlapScale  = 0.47
	overlapCoefA  = 2.01e-5
	overlapExpA   = 0.75
	overlapCoefB  = 5.31e-15
	overlapExpB   = 1.52
)

// ForcingCO2 returns the radiative forcing from a CO₂ concentration c (ppm)
// relative to the baseline c0. Both arguments are assumed strictly positive;
// the logarithm is undefined otherwise (callers validate, see Evaluate).
func ForcingCO2(c, c0 float64) float64 {
	return co2ScalingFactor * math.Log(c/c0)
}

// bandOverlap is the CH₄/N₂O absorption-band overlap term f(M,N).
// Not symmetric: the second summand carries an extra factor of m.
func bandOverlap(m, n float64) float64 {
	mn := m * n
	return overlapScale * math.Log(1+overlapCoefA*math.Pow(mn, overlapExpA)+overlapCoefB*m*math.Pow(mn, overlapExpB))
}

// ForcingCH4 returns the CH₄ forcing for concentration m (ppb) against
// baseline m0, corrected for band overlap with N₂O at its baseline n0.
func ForcingCH4(m, m0, n0 float64) float64 {
	return ch4ScalingFactor*(math.Sqrt(m)-math.Sqrt(m0)) - (bandOverlap(m, n0) - bandOverlap(m0, n0))
}

// ForcingN2O returns the N₂O forcing for concentration n (ppb) against
// baseline n0, corrected for band overlap with CH₄ at its baseline m0.
func ForcingN2O(n, n0, m0 float64) float64 {
	return n2oScalingFactor*(math.Sqrt(n)-math.Sqrt(n0)) - (bandOverlap(m0, n) - bandOverlap(m0, n0))
}
