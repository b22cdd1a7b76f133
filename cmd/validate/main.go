// Command validate performs integrity checks over the scenario sweep
// fixtures: it re-evaluates every request through the domain model and
// verifies counts, ID determinism, numeric agreement, model invariants, and
// insight/air-quality consistency. Run it after regenerating fixtures with
// cmd/gensweep.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -requests data/mock/scenario_sweep_requests.json \
//	  -results data/mock/scenario_sweep_results.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/couchcryptid/climate-scenario-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// tolerance for comparing recomputed floats against fixture values.
const epsilon = 1e-9

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	requestsPath := flag.String("requests", "data/mock/scenario_sweep_requests.json", "path to the raw request fixture")
	resultsPath := flag.String("results", "data/mock/scenario_sweep_results.json", "path to the evaluated result fixture")
	flag.Parse()

	if code := run(*requestsPath, *resultsPath); code != 0 {
		os.Exit(code)
	}
}

func run(requestsPath, resultsPath string) int {
	// Fixture EvaluatedAt values were produced under gensweep's frozen
	// clock; match it so recomputed evaluations line up exactly.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Scenario Sweep Integrity Validation ===")
	fmt.Println()

	requests, err := loadJSON[domain.ScenarioInput](requestsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load requests: %v\n", err)
		return 1
	}

	results, err := loadJSON[domain.Evaluation](resultsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load results: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkCounts(requests, results),
		checkIdentity(requests, results),
		checkNumericAgreement(requests, results),
		checkInvariants(results),
		checkNarrative(results),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("all %d phases passed (%d scenarios)\n", len(phases), len(requests))
	return 0
}

func checkCounts(requests []domain.ScenarioInput, results []domain.Evaluation) *phase {
	p := &phase{name: "fixture counts"}
	if len(requests) == 0 {
		p.errorf("request fixture is empty")
	}
	if len(requests) != len(results) {
		p.errorf("request/result count mismatch: %d vs %d", len(requests), len(results))
	}
	return p
}

// checkIdentity re-evaluates each request and verifies the fixture carries
// the same deterministic ID, and that IDs are unique across the sweep.
func checkIdentity(requests []domain.ScenarioInput, results []domain.Evaluation) *phase {
	p := &phase{name: "deterministic identity"}
	seen := make(map[string]int, len(results))
	for i := range min(len(requests), len(results)) {
		ev, err := domain.Evaluate(requests[i], domain.DefaultBaseline)
		if err != nil {
			p.errorf("scenario %d: %v", i, err)
			continue
		}
		if ev.ID != results[i].ID {
			p.errorf("scenario %d: ID mismatch: recomputed %s, fixture %s", i, ev.ID, results[i].ID)
		}
		if prev, dup := seen[results[i].ID]; dup {
			p.errorf("scenario %d: duplicate ID %s (also at %d)", i, results[i].ID, prev)
		}
		seen[results[i].ID] = i
	}
	return p
}

func checkNumericAgreement(requests []domain.ScenarioInput, results []domain.Evaluation) *phase {
	p := &phase{name: "numeric agreement"}
	for i := range min(len(requests), len(results)) {
		ev, err := domain.Evaluate(requests[i], domain.DefaultBaseline)
		if err != nil {
			continue // reported by the identity phase
		}
		want := results[i].Result
		got := ev.Result
		for _, c := range []struct {
			field     string
			want, got float64
		}{
			{"total_forcing", want.TotalForcing, got.TotalForcing},
			{"delta_t", want.DeltaT, got.DeltaT},
			{"sea_level_rise", want.SeaLevelRise, got.SeaLevelRise},
			{"breakdown.co2", want.Breakdown.CO2, got.Breakdown.CO2},
			{"breakdown.ch4", want.Breakdown.CH4, got.Breakdown.CH4},
			{"breakdown.n2o", want.Breakdown.N2O, got.Breakdown.N2O},
			{"breakdown.land", want.Breakdown.Land, got.Breakdown.Land},
		} {
			if math.Abs(c.want-c.got) > epsilon {
				p.errorf("scenario %d: %s: fixture %.12f, recomputed %.12f", i, c.field, c.want, c.got)
			}
		}
	}
	return p
}

// checkInvariants verifies the model guarantees hold for every fixture entry:
// non-negative total, linear ΔT and sea-level derivation, breakdown summing
// to the un-floored total.
func checkInvariants(results []domain.Evaluation) *phase {
	p := &phase{name: "model invariants"}
	for i, ev := range results {
		r := ev.Result
		if r.TotalForcing < 0 {
			p.errorf("scenario %d: negative total forcing %.12f", i, r.TotalForcing)
		}
		if math.Abs(r.DeltaT-0.8*r.TotalForcing) > epsilon {
			p.errorf("scenario %d: delta_t is not 0.8·total", i)
		}
		if math.Abs(r.SeaLevelRise-0.3*r.DeltaT) > epsilon {
			p.errorf("scenario %d: sea_level_rise is not 0.3·delta_t", i)
		}
		sum := r.Breakdown.CO2 + r.Breakdown.CH4 + r.Breakdown.N2O + r.Breakdown.Land
		if sum > 0 && math.Abs(sum-r.TotalForcing) > epsilon {
			p.errorf("scenario %d: breakdown sums to %.12f, total is %.12f", i, sum, r.TotalForcing)
		}
	}
	return p
}

// checkNarrative verifies insight-line counts and air-quality consistency.
func checkNarrative(results []domain.Evaluation) *phase {
	p := &phase{name: "narrative consistency"}
	for i, ev := range results {
		// Three always-on lines plus the target line, plus up to three
		// conditional policy notes.
		if n := len(ev.Insights); n < 4 || n > 7 {
			p.errorf("scenario %d: %d insight lines, expected 4-7", i, n)
		}
		aq := domain.ClassifyAirQuality(ev.Result.Inputs.RenewableShare, ev.Result.Inputs.WasteReduction)
		if aq.Label != ev.AirQuality.Label || aq.Level != ev.AirQuality.Level {
			p.errorf("scenario %d: air quality %s/%d, recomputed %s/%d",
				i, ev.AirQuality.Label, ev.AirQuality.Level, aq.Label, aq.Level)
		}
	}
	return p
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}
