package model

import "fmt"

// TotalColumn is the synthetic generation column holding the row-wise sum
// across all technologies. It is reserved and may not be used as a
// technology name.
const TotalColumn = "Total"

// Renewables bundles the installed renewable fleet.
// Units:
// - Capacities: MW per technology
// - Profiles: capacity factor in [0,1] per time step
// - Generation: MW per time step, one column per technology plus TotalColumn
type Renewables struct {
	Names      []string
	Capacities map[string]float64
	Profiles   map[string][]float64
	Generation map[string][]float64
}

// NewRenewables validates the inputs and derives the generation table.
// The name set must exactly equal the capacity map's key set, every name
// must have a profile column, and TotalColumn is reserved.
func NewRenewables(names []string, capacities map[string]float64, profiles map[string][]float64) (Renewables, error) {
	if len(names) == 0 {
		return Renewables{}, fmt.Errorf("renewables: no technologies given")
	}
	if len(names) != len(capacities) {
		return Renewables{}, fmt.Errorf("renewables: %d names but %d capacities", len(names), len(capacities))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == TotalColumn {
			return Renewables{}, fmt.Errorf("renewables: %q is a reserved column name", TotalColumn)
		}
		if seen[name] {
			return Renewables{}, fmt.Errorf("renewables: duplicate technology %q", name)
		}
		seen[name] = true
		if _, ok := capacities[name]; !ok {
			return Renewables{}, fmt.Errorf("renewables: no capacity for technology %q", name)
		}
		if _, ok := profiles[name]; !ok {
			return Renewables{}, fmt.Errorf("renewables: no profile column for technology %q", name)
		}
	}

	gen, err := calculateGeneration(names, capacities, profiles)
	if err != nil {
		return Renewables{}, err
	}
	return Renewables{
		Names:      names,
		Capacities: capacities,
		Profiles:   profiles,
		Generation: gen,
	}, nil
}

// calculateGeneration scales each profile column by its installed capacity
// and appends the TotalColumn row-wise sum. All profile columns must share
// one length.
func calculateGeneration(names []string, capacities map[string]float64, profiles map[string][]float64) (map[string][]float64, error) {
	steps := len(profiles[names[0]])
	for _, name := range names {
		if len(profiles[name]) != steps {
			return nil, fmt.Errorf("renewables: profile %q has %d steps, want %d", name, len(profiles[name]), steps)
		}
	}

	gen := make(map[string][]float64, len(names)+1)
	total := make([]float64, steps)
	for _, name := range names {
		col := make([]float64, steps)
		for t, cf := range profiles[name] {
			col[t] = cf * capacities[name]
			total[t] += col[t]
		}
		gen[name] = col
	}
	gen[TotalColumn] = total
	return gen, nil
}

// Total returns the combined generation series.
func (r Renewables) Total() []float64 {
	return r.Generation[TotalColumn]
}

// Steps returns the number of time steps in the generation table.
func (r Renewables) Steps() int {
	return len(r.Generation[TotalColumn])
}
