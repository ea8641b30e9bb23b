package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/config"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/lp"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/results"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/scenario"
)

// size:
// - load a scenario YAML (storage params, renewable fleet, load)
// - build the sizing LP and run the pre-solve input checks
// - solve, print the design results, optionally write the operation CSV
func main() {
	cfgPath := flag.String("config", "scenario.yaml", "Path to scenario YAML config")
	outCSV := flag.String("out", "", "Optional path to write the operation CSV (e.g. results/operation.csv)")
	tol := flag.Float64("tol", 0, "Simplex tolerance (0 = solver default)")
	verifyOnly := flag.Bool("verify-only", false, "Run input verification and exit without solving")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	inputs, err := cfg.ToScenarioInputs()
	if err != nil {
		log.Fatalf("build inputs: %v", err)
	}

	mgr, err := scenario.New(inputs, lp.Simplex{})
	if err != nil {
		log.Fatalf("build scenario: %v", err)
	}
	if err := mgr.VerifyInputs(); err != nil {
		log.Fatalf("verify inputs: %v", err)
	}
	if *verifyOnly {
		fmt.Printf("%s: inputs OK (%d steps, %d constraints)\n",
			inputs.Name, len(inputs.TimeIndex), mgr.Problem().NumConstraints())
		return
	}

	if err := mgr.Solve(lp.Options{Tol: *tol}); err != nil {
		log.Fatalf("solve: %v", err)
	}
	if err := mgr.VerifySolve(); err != nil {
		log.Fatalf("solve did not reach optimal status")
	}

	design, err := results.DesignResults(mgr)
	if err != nil {
		log.Fatalf("extract design results: %v", err)
	}
	objective, _ := mgr.Objective()

	fmt.Printf("%s\n", inputs.Name)
	fmt.Printf("  power:     %.2f MW\n", design.Power)
	fmt.Printf("  capacity:  %.2f MWh\n", design.Capacity)
	fmt.Printf("  capex:     %.2f\n", objective)

	if *outCSV != "" {
		rows, err := results.FullOperation(mgr)
		if err != nil {
			log.Fatalf("extract operation: %v", err)
		}
		if err := results.WriteOperationCSV(*outCSV, rows); err != nil {
			log.Fatalf("write %s: %v", *outCSV, err)
		}
		fmt.Printf("  operation: %s (%d rows)\n", *outCSV, len(rows))
	}
}
