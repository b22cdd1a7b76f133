package domain

// Policy lever attenuation slopes.
const (
	renewableSlope = 0.6
	wasteSlope     = 0.25
)

// RenewableFactor maps a renewable generation share (percent) to a
// multiplicative attenuation on fossil-driven forcing. 0% → 1.0, 100% → 0.4.
// Out-of-range shares extrapolate linearly; validation belongs to the caller.
func RenewableFactor(renewableShare float64) float64 {
	return 1 - renewableSlope*(renewableShare/100)
}

// WasteFactor maps a waste reduction percentage to a multiplicative
// attenuation on methane forcing. 0% → 1.0, 100% → 0.75.
// Out-of-range values extrapolate linearly, same as RenewableFactor.
func WasteFactor(wasteReduction float64) float64 {
	return 1 - wasteSlope*(wasteReduction/100)
}
