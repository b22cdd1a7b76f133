package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Aggregation coefficients. Fixed constants of the model.
const (
	co2GridEfficiency  = 0.95 // residual grid losses on the CO₂ term
	n2oRenewableWeight = 0.9  // share of N₂O forcing affected by the renewable factor
	n2oResidualWeight  = 0.1  // share unaffected by policy
	landUseCoefficient = 0.12 // W/m² per unit deforestation intensity

	climateSensitivity = 0.8 // °C per W/m²
	seaLevelSlope      = 0.3 // m per °C
)

// ErrNonPositiveConcentration rejects scenarios whose gas concentrations (or
// baseline) would put the logarithmic forcing terms outside their domain.
var ErrNonPositiveConcentration = errors.New("concentration must be strictly positive")

// ParseRawEvent deserializes a RawEvent's value into a ScenarioInput.
// It expects the flat JSON request produced by the UI gateway.
func ParseRawEvent(raw RawEvent) (ScenarioInput, error) {
	var in ScenarioInput
	if err := json.Unmarshal(raw.Value, &in); err != nil {
		return ScenarioInput{}, fmt.Errorf("parse raw scenario: %w", err)
	}
	return in, nil
}

// Evaluate runs the full model for one scenario: validation, per-gas forcing,
// policy scaling, aggregation, insight generation, and air-quality
// classification. It is deterministic apart from EvaluatedAt, which comes
// from the package clock.
func Evaluate(in ScenarioInput, base Baseline) (Evaluation, error) {
	if err := validateConcentrations(in, base); err != nil {
		return Evaluation{}, err
	}

	renewableFactor := RenewableFactor(in.RenewableShare)
	wasteFactor := WasteFactor(in.WasteReduction)

	breakdown := ForcingBreakdown{
		CO2:  ForcingCO2(in.CO2, base.CO2) * renewableFactor * co2GridEfficiency,
		CH4:  ForcingCH4(in.CH4, base.CH4, base.N2O) * wasteFactor,
		N2O:  ForcingN2O(in.N2O, base.N2O, base.CH4) * (n2oRenewableWeight*renewableFactor + n2oResidualWeight),
		Land: landUseCoefficient * in.Deforestation,
	}

	// Zero floor: no cooling below pre-industrial. DeltaT and SeaLevelRise
	// inherit non-negativity from the floored total.
	total := max(0, breakdown.CO2+breakdown.CH4+breakdown.N2O+breakdown.Land)
	deltaT := total * climateSensitivity

	result := ClimateResult{
		TotalForcing: total,
		DeltaT:       deltaT,
		SeaLevelRise: deltaT * seaLevelSlope,
		Breakdown:    breakdown,
		Inputs:       in,
	}

	return Evaluation{
		ID:          generateID(in),
		Result:      result,
		Insights:    Insights(result),
		AirQuality:  ClassifyAirQuality(in.RenewableShare, in.WasteReduction),
		EvaluatedAt: clock.Now(),
	}, nil
}

// validateConcentrations fails fast on inputs that would drive the
// logarithmic forcing terms into NaN territory.
func validateConcentrations(in ScenarioInput, base Baseline) error {
	gases := []struct {
		name    string
		current float64
		ref     float64
	}{
		{"co2", in.CO2, base.CO2},
		{"ch4", in.CH4, base.CH4},
		{"n2o", in.N2O, base.N2O},
	}
	for _, g := range gases {
		if g.current <= 0 {
			return fmt.Errorf("%s: %w (got %g)", g.name, ErrNonPositiveConcentration, g.current)
		}
		if g.ref <= 0 {
			return fmt.Errorf("%s baseline: %w (got %g)", g.name, ErrNonPositiveConcentration, g.ref)
		}
	}
	return nil
}

// generateID produces a deterministic ID from the six scenario inputs.
// The same scenario always hashes to the same ID, enabling idempotent
// upserts downstream and safe replay from the source topic.
func generateID(in ScenarioInput) string {
	input := fmt.Sprintf("%g|%g|%g|%g|%g|%g",
		in.CO2, in.CH4, in.N2O, in.RenewableShare, in.WasteReduction, in.Deforestation)
	hash := sha256.Sum256([]byte(input))
	return "scn-" + hex.EncodeToString(hash[:8])
}

// SerializeEvaluation marshals an evaluation into an OutputEvent for the
// sink topic. Headers carry the air-quality label and evaluation timestamp
// so consumers can filter without deserializing the body.
func SerializeEvaluation(ev Evaluation) (OutputEvent, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize evaluation: %w", err)
	}
	return OutputEvent{
		Key:   []byte(ev.ID),
		Value: data,
		Headers: map[string]string{
			"air_quality":  ev.AirQuality.Label,
			"evaluated_at": ev.EvaluatedAt.Format(time.RFC3339),
		},
	}, nil
}
