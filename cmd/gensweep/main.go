// Command gensweep generates the scenario sweep fixtures used by the pipeline
// tests and cmd/validate. It crosses a fixed grid of slider positions, runs
// each combination through the actual domain model under a frozen clock, and
// writes both the raw requests and the evaluated results as JSON.
//
// Usage:
//
//	go run ./cmd/gensweep \
//	  -requests-out data/mock/scenario_sweep_requests.json \
//	  -results-out data/mock/scenario_sweep_results.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/couchcryptid/climate-scenario-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Grid of slider positions crossed into sweep scenarios. Chosen to straddle
// every threshold in the model: the baseline crossings, the 1.5°C target,
// and the insight and air-quality cutoffs.
var (
	co2Grid    = []float64{300, 420, 560}
	ch4Grid    = []float64{1000, 1900}
	n2oGrid    = []float64{270, 335}
	renewGrid  = []float64{0, 60}
	wasteGrid  = []float64{0, 40}
	deforGrid  = []float64{0, 1.5}
	sweepClock = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	requestsOut := flag.String("requests-out", "data/mock/scenario_sweep_requests.json", "output path for the raw request fixture")
	resultsOut := flag.String("results-out", "data/mock/scenario_sweep_results.json", "output path for the evaluated result fixture")
	flag.Parse()

	// Freeze the clock so EvaluatedAt is reproducible across runs.
	domain.SetClock(clockwork.NewFakeClockAt(sweepClock))
	defer domain.SetClock(nil)

	requests := buildSweep()
	results := make([]domain.Evaluation, 0, len(requests))
	for _, in := range requests {
		ev, err := domain.Evaluate(in, domain.DefaultBaseline)
		if err != nil {
			return fmt.Errorf("evaluating %+v: %w", in, err)
		}
		results = append(results, ev)
	}
	log.Printf("evaluated %d sweep scenarios", len(results))

	if err := writeJSON(*requestsOut, requests); err != nil {
		return fmt.Errorf("writing request fixture: %w", err)
	}
	log.Printf("wrote request fixture: %s", *requestsOut)

	if err := writeJSON(*resultsOut, results); err != nil {
		return fmt.Errorf("writing result fixture: %w", err)
	}
	log.Printf("wrote result fixture: %s", *resultsOut)

	return nil
}

// buildSweep crosses the grids in a fixed nesting order so fixture indices
// are stable between regenerations.
func buildSweep() []domain.ScenarioInput {
	sweep := make([]domain.ScenarioInput, 0,
		len(co2Grid)*len(ch4Grid)*len(n2oGrid)*len(renewGrid)*len(wasteGrid)*len(deforGrid))
	for _, co2 := range co2Grid {
		for _, ch4 := range ch4Grid {
			for _, n2o := range n2oGrid {
				for _, renew := range renewGrid {
					for _, waste := range wasteGrid {
						for _, defor := range deforGrid {
							sweep = append(sweep, domain.ScenarioInput{
								CO2:            co2,
								CH4:            ch4,
								N2O:            n2o,
								RenewableShare: renew,
								WasteReduction: waste,
								Deforestation:  defor,
							})
						}
					}
				}
			}
		}
	}
	return sweep
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
