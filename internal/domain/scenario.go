package domain

import (
	"context"
	"time"
)

// Baseline holds pre-industrial reference concentrations. It is immutable
// configuration: construct once, pass by value, never mutate at runtime.
type Baseline struct {
	CO2 float64 `json:"co2"` // ppm
	CH4 float64 `json:"ch4"` // ppb
	N2O float64 `json:"n2o"` // ppb
}

// DefaultBaseline is the standard pre-industrial reference used by the model.
var DefaultBaseline = Baseline{CO2: 280, CH4: 722, N2O: 270}

// ScenarioInput is the six-field request supplied by the UI (or the source
// topic) on every recompute. No cross-field invariants; gas concentrations
// must be strictly positive, policy fields are nominally 0–100 but are not
// clamped here.
type ScenarioInput struct {
	CO2            float64 `json:"co2"`             // ppm
	CH4            float64 `json:"ch4"`             // ppb
	N2O            float64 `json:"n2o"`             // ppb
	RenewableShare float64 `json:"renewable_share"` // percent
	WasteReduction float64 `json:"waste_reduction"` // percent
	Deforestation  float64 `json:"deforestation"`   // unitless intensity, >= 0
}

// DefaultScenario returns the reset-to-defaults input set.
func DefaultScenario() ScenarioInput {
	return ScenarioInput{
		CO2:            420,
		CH4:            1900,
		N2O:            335,
		RenewableShare: 20,
		WasteReduction: 0,
		Deforestation:  0.3,
	}
}

// RawEvent represents an unprocessed scenario request from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized evaluation destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Source identifies a forcing contributor in the breakdown.
type Source string

// Breakdown sources, in their fixed presentation and tie-break order.
const (
	SourceCO2  Source = "CO2"
	SourceCH4  Source = "CH4"
	SourceN2O  Source = "N2O"
	SourceLand Source = "Land"
)

// ForcingBreakdown holds the effective (post-policy) forcing per source in
// W/m². The per-source values sum to the un-floored total.
type ForcingBreakdown struct {
	CO2  float64 `json:"co2"`
	CH4  float64 `json:"ch4"`
	N2O  float64 `json:"n2o"`
	Land float64 `json:"land"`
}

// Contribution pairs a source with its effective forcing.
type Contribution struct {
	Source  Source  `json:"source"`
	Forcing float64 `json:"forcing"`
}

// Contributions returns the breakdown in fixed order: CO2, CH4, N2O, Land.
func (b ForcingBreakdown) Contributions() []Contribution {
	return []Contribution{
		{Source: SourceCO2, Forcing: b.CO2},
		{Source: SourceCH4, Forcing: b.CH4},
		{Source: SourceN2O, Forcing: b.N2O},
		{Source: SourceLand, Forcing: b.Land},
	}
}

// TopContributor returns the source with the largest effective forcing.
// Ties keep the earlier source in the fixed CO2, CH4, N2O, Land order.
func (b ForcingBreakdown) TopContributor() Contribution {
	contributions := b.Contributions()
	top := contributions[0]
	for _, c := range contributions[1:] {
		if c.Forcing > top.Forcing {
			top = c
		}
	}
	return top
}

// ClimateResult is the aggregated model output for one scenario. It echoes
// the inputs so downstream rule evaluation needs no side channel.
type ClimateResult struct {
	TotalForcing float64          `json:"total_forcing"`  // W/m², >= 0
	DeltaT       float64          `json:"delta_t"`        // °C
	SeaLevelRise float64          `json:"sea_level_rise"` // m
	Breakdown    ForcingBreakdown `json:"breakdown"`
	Inputs       ScenarioInput    `json:"inputs"`
}

// Evaluation is the complete record published for one scenario: the climate
// result plus its derived narrative and classification.
type Evaluation struct {
	ID          string        `json:"id"`
	Result      ClimateResult `json:"result"`
	Insights    []string      `json:"insights"`
	AirQuality  AirQuality    `json:"air_quality"`
	EvaluatedAt time.Time     `json:"evaluated_at"`

	RawPayload []byte `json:"-"`
}
