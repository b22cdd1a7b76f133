// Package domain implements the climate scenario model: a deterministic,
// closed-form evaluation that maps six user-controlled inputs to a radiative
// forcing breakdown, derived climate metrics, narrative insights, and an
// air-quality category.
//
// # Model Structure
//
// Evaluation is a pure pipeline with no I/O and no cross-call state:
//
//	ScenarioInput → forcing model → policy scaling → aggregation →
//	  ClimateResult → insight rules + air-quality classifier → Evaluation
//
// Every invocation constructs a fresh result; nothing is cached or diffed
// against a prior run. The only shared value is the read-only [Baseline].
//
// # Forcing Formulas
//
// Per-gas radiative forcing (W/m²) uses the simplified expressions of
// Myhre et al. (1998), as adopted by the IPCC Third Assessment Report:
//
//	CO₂:  F = 5.35 · ln(C/C₀)
//	CH₄:  F = 0.036 · (√M − √M₀) − (f(M,N₀) − f(M₀,N₀))
//	N₂O:  F = 0.12  · (√N − √N₀) − (f(M₀,N) − f(M₀,N₀))
//
// where f is the CH₄/N₂O band overlap term
//
//	f(M,N) = 0.47 · ln(1 + 2.01e-5·(MN)^0.75 + 5.31e-15·M·(MN)^1.52)
//
// subtracted because the two gases absorb in overlapping infrared bands and
// naive addition would double-count. Concentrations are in ppm for CO₂ and
// ppb for CH₄ and N₂O; the coefficients are fixed empirical constants, not
// tunables. The logarithmic and square-root terms require strictly positive
// concentrations — [Evaluate] rejects non-positive values up front rather
// than letting NaN propagate through the pipeline.
//
// # Policy Levers
//
// Two percentage sliders attenuate effective forcing multiplicatively:
//
//	renewableFactor = 1 − 0.6·(renewableShare/100)   nominal range [0.4, 1.0]
//	wasteFactor     = 1 − 0.25·(wasteReduction/100)  nominal range [0.75, 1.0]
//
// Values outside [0, 100] are not rejected; the factors extrapolate linearly.
// Input validation, if any, belongs to the caller.
//
// # Aggregation
//
// Effective forcings combine with a land-use term into the total:
//
//	total = max(0, F_CO₂·rf·0.95 + F_CH₄·wf + F_N₂O·(0.9·rf + 0.1) + 0.12·deforestation)
//
// The zero floor is deliberate: net negative forcing (extreme renewable
// adoption pushing the CO₂ term below zero) is clamped to "no cooling below
// pre-industrial". Temperature and sea level follow linearly:
//
//	ΔT  = 0.8 · total    (climate sensitivity λ, °C per W/m²)
//	SLR = 0.3 · ΔT       (m per °C)
//
// Both inherit non-negativity from the floored total.
//
// # ID Generation
//
// Evaluation IDs are deterministic SHA-256 hashes of the six inputs. The same
// scenario always produces the same ID, which enables idempotent upserts
// downstream and replay safety when requests are re-consumed from the source
// topic. See [generateID].
package domain
