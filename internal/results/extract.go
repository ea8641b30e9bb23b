// Package results reads solved variable values back out of a scenario
// manager and reshapes them into tabular time series. It is a consumer of
// the formulation, not part of it: everything here works off the public
// (variable name, value) list and the scenario inputs.
package results

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/scenario"
)

// Design holds the sizing outcome.
// Units: Capacity MWh, Power MW.
type Design struct {
	Capacity float64
	Power    float64
}

// OperationRow is the storage dispatch at one time step.
type OperationRow struct {
	Step int
	Time time.Time

	StorageLevel float64
	Charge       float64
	Discharge    float64
}

// FullOperationRow joins the dispatch with the scenario's generation and
// load, plus derived cumulative flows and curtailment.
type FullOperationRow struct {
	OperationRow

	Generation map[string]float64 // per technology
	Total      float64
	Load       float64

	ChargeCumulative    float64
	DischargeCumulative float64
	Curtailment         float64
}

// DesignResults extracts the two sizing variables. Fails with the
// unsolved-model error unless the manager solved to optimality.
func DesignResults(m *scenario.Manager) (Design, error) {
	values, err := m.Values()
	if err != nil {
		return Design{}, err
	}
	var d Design
	for _, nv := range values {
		switch nv.Name {
		case "capacity":
			d.Capacity = nv.Value
		case "power":
			d.Power = nv.Value
		}
	}
	return d, nil
}

// Operation reconstructs the time-indexed variable families from the
// variable name list. Names follow the "<family>_<t>" convention with
// family in storagelevel/charge/discharge; the trailing integer maps to
// the timestamp start_date + t hours. Rows come back sorted by step.
// Calling this twice on the same solved manager yields identical output.
func Operation(m *scenario.Manager) ([]OperationRow, error) {
	values, err := m.Values()
	if err != nil {
		return nil, err
	}
	inputs := m.Inputs()

	rows := make(map[int]*OperationRow)
	for _, nv := range values {
		family, step, ok := splitTimeVariable(nv.Name)
		if !ok {
			continue
		}
		row, exists := rows[step]
		if !exists {
			row = &OperationRow{Step: step, Time: inputs.TimeAt(step)}
			rows[step] = row
		}
		switch family {
		case "storagelevel":
			row.StorageLevel = nv.Value
		case "charge":
			row.Charge = nv.Value
		case "discharge":
			row.Discharge = nv.Value
		}
	}

	out := make([]OperationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Step < out[j].Step })
	return out, nil
}

// FullOperation joins the dispatch series with the scenario inputs.
// Curtailment is recovered as total + discharge - charge - load.
func FullOperation(m *scenario.Manager) ([]FullOperationRow, error) {
	op, err := Operation(m)
	if err != nil {
		return nil, err
	}
	inputs := m.Inputs()
	gen := inputs.Renewables.Generation
	total := inputs.Renewables.Total()
	load := inputs.Load.Series

	out := make([]FullOperationRow, len(op))
	chargeCum, dischargeCum := 0.0, 0.0
	for i, row := range op {
		t := row.Step
		if t < 0 || t >= len(total) {
			return nil, fmt.Errorf("results: step %d outside the scenario horizon", t)
		}
		chargeCum += row.Charge
		dischargeCum += row.Discharge

		perTech := make(map[string]float64, len(inputs.Renewables.Names))
		for _, name := range inputs.Renewables.Names {
			perTech[name] = gen[name][t]
		}
		out[i] = FullOperationRow{
			OperationRow: row,
			Generation:   perTech,
			Total:        total[t],
			Load:         load[t],

			ChargeCumulative:    chargeCum,
			DischargeCumulative: dischargeCum,
			Curtailment:         total[t] + row.Discharge - row.Charge - load[t],
		}
	}
	return out, nil
}

// splitTimeVariable parses "<family>_<t>" names around the last
// underscore: the family is everything before it, the step the trailing
// integer. Scalar names like "capacity" carry neither and report
// ok=false, as does anything whose family is not a known time-indexed
// one.
func splitTimeVariable(name string) (family string, step int, ok bool) {
	sep := strings.LastIndex(name, "_")
	if sep < 0 {
		return "", 0, false
	}
	family = name[:sep]
	switch family {
	case "storagelevel", "charge", "discharge":
	default:
		return "", 0, false
	}
	step, err := strconv.Atoi(name[sep+1:])
	if err != nil {
		return "", 0, false
	}
	return family, step, true
}
