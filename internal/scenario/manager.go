// Package scenario owns the sizing formulation: it turns scenario inputs
// into a linear program whose optimum is the minimum-capex storage power
// and energy rating that keeps the load continuously served.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/lp"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/model"
)

// ErrNotSolved is returned when results are requested before an optimal
// solve.
var ErrNotSolved = errors.New("model has not solved")

// Variables holds the decision variables of one scenario. The scalar pair
// sizes the plant; the time-indexed families describe its operation, one
// variable per time step.
type Variables struct {
	Capacity *lp.Variable
	Power    *lp.Variable

	Level     []*lp.Variable
	Charge    []*lp.Variable
	Discharge []*lp.Variable
}

// Manager owns the optimization problem for one scenario. Construction
// runs the build phases in order (problem, variables, objective,
// constraints); the phases close over the variable set, so the order is
// fixed. Each manager is independent: no state is shared across instances.
type Manager struct {
	inputs model.ScenarioInputs
	vars   Variables

	problem  *lp.Problem
	solver   lp.Solver
	solution *lp.Solution
	solved   bool
}

// New builds the full LP for the given inputs. The solver is only invoked
// later, by Solve.
func New(inputs model.ScenarioInputs, solver lp.Solver) (*Manager, error) {
	if solver == nil {
		return nil, fmt.Errorf("scenario %q: solver is nil", inputs.Name)
	}
	m := &Manager{inputs: inputs, solver: solver}
	m.setupProblem()
	if err := m.defineVariables(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", inputs.Name, err)
	}
	if err := m.defineObjective(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", inputs.Name, err)
	}
	if err := m.defineConstraints(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", inputs.Name, err)
	}
	return m, nil
}

func (m *Manager) setupProblem() {
	m.problem = lp.NewProblem(m.inputs.Name)
}

// defineVariables creates the scalar sizing pair and the three
// time-indexed families. Consumers rely on the exact names: "capacity",
// "power" and "<family>_<t>" with family in storagelevel/charge/discharge.
func (m *Manager) defineVariables() error {
	var err error
	if m.vars.Capacity, err = m.problem.NewVariable("capacity"); err != nil {
		return err
	}
	if m.vars.Power, err = m.problem.NewVariable("power"); err != nil {
		return err
	}

	n := len(m.inputs.TimeIndex)
	m.vars.Level = make([]*lp.Variable, n)
	m.vars.Charge = make([]*lp.Variable, n)
	m.vars.Discharge = make([]*lp.Variable, n)
	for _, t := range m.inputs.TimeIndex {
		if m.vars.Level[t], err = m.problem.NewVariable(fmt.Sprintf("storagelevel_%d", t)); err != nil {
			return err
		}
		if m.vars.Charge[t], err = m.problem.NewVariable(fmt.Sprintf("charge_%d", t)); err != nil {
			return err
		}
		if m.vars.Discharge[t], err = m.problem.NewVariable(fmt.Sprintf("discharge_%d", t)); err != nil {
			return err
		}
	}
	return nil
}

// defineObjective minimizes total capital cost. There is no operating cost
// term.
func (m *Manager) defineObjective() error {
	s := m.inputs.Storage
	return m.problem.SetObjective(lp.Expr{
		lp.T(s.CapexCapacity, m.vars.Capacity),
		lp.T(s.CapexPower, m.vars.Power),
	})
}

func (m *Manager) defineConstraints() error {
	s := m.inputs.Storage
	idx := m.inputs.TimeIndex
	tMax := idx[len(idx)-1]
	gen := m.inputs.Renewables.Total()
	load := m.inputs.Load.Series

	// capacity >= minimum_duration * power
	if err := m.problem.AddConstraint(lp.Constraint{
		Label: "duration is at least the configured minimum",
		Expr: lp.Expr{
			lp.T(1, m.vars.Capacity),
			lp.T(-s.MinimumDurationHours, m.vars.Power),
		},
		Op: lp.GreaterEq,
	}); err != nil {
		return err
	}

	// Cyclic boundary: the level at the start of the horizon is whatever
	// is consistent with ending the horizon at that same level after the
	// final step. With a single step this degenerates to
	// discharge[0] == efficiency * charge[0].
	if err := m.problem.AddConstraint(lp.Constraint{
		Label: "storage level at start is determined by the end",
		Expr: lp.Expr{
			lp.T(1, m.vars.Level[0]),
			lp.T(-1, m.vars.Level[tMax]),
			lp.T(1, m.vars.Discharge[tMax]),
			lp.T(-s.Efficiency, m.vars.Charge[tMax]),
		},
		Op: lp.Equal,
	}); err != nil {
		return err
	}

	for _, t := range idx[:len(idx)-1] {
		// level[t+1] = level[t] - discharge[t] + efficiency*charge[t].
		// Losses apply on charge only.
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("storage level follows charge and discharge (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Level[t+1]),
				lp.T(-1, m.vars.Level[t]),
				lp.T(1, m.vars.Discharge[t]),
				lp.T(-s.Efficiency, m.vars.Charge[t]),
			},
			Op: lp.Equal,
		}); err != nil {
			return err
		}

		// Implied by the level lower bound and the balance row, but kept
		// to guard the formulation against degenerate bases.
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("cannot dispatch more than available energy (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Level[t]),
				lp.T(-1, m.vars.Discharge[t]),
			},
			Op: lp.GreaterEq,
		}); err != nil {
			return err
		}
	}

	for _, t := range idx {
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("charge is limited by power rating (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Charge[t]),
				lp.T(-1, m.vars.Power),
			},
			Op: lp.LessEq,
		}); err != nil {
			return err
		}
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("discharge is limited by power rating (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Discharge[t]),
				lp.T(-1, m.vars.Power),
			},
			Op: lp.LessEq,
		}); err != nil {
			return err
		}
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("storage level is limited by capacity (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Level[t]),
				lp.T(-1, m.vars.Capacity),
			},
			Op: lp.LessEq,
		}); err != nil {
			return err
		}
		// generation + discharge - charge >= load; surplus is curtailed
		// implicitly rather than tracked as a variable.
		if err := m.problem.AddConstraint(lp.Constraint{
			Label: fmt.Sprintf("load is supplied (t=%d)", t),
			Expr: lp.Expr{
				lp.T(1, m.vars.Discharge[t]),
				lp.T(-1, m.vars.Charge[t]),
			},
			Op:  lp.GreaterEq,
			RHS: load[t] - gen[t],
		}); err != nil {
			return err
		}
	}
	return nil
}

// VerifyInputs runs pre-solve sanity checks: average demand must stay
// below average supply (storage cannot create energy, so sizing is
// structurally infeasible otherwise), and no missing values may appear in
// the generation table or the load series. Violations are raised here, not
// handed to the solver.
func (m *Manager) VerifyInputs() error {
	gen := m.inputs.Renewables.Generation
	load := m.inputs.Load.Series

	if meanOf(load) >= meanOf(gen[model.TotalColumn]) {
		return fmt.Errorf("scenario %q: mean load %.3f is not below mean generation %.3f",
			m.inputs.Name, meanOf(load), meanOf(gen[model.TotalColumn]))
	}
	for name, col := range gen {
		for t, v := range col {
			if math.IsNaN(v) {
				return fmt.Errorf("scenario %q: generation %q has a missing value at t=%d", m.inputs.Name, name, t)
			}
		}
	}
	for t, v := range load {
		if math.IsNaN(v) {
			return fmt.Errorf("scenario %q: load has a missing value at t=%d", m.inputs.Name, t)
		}
	}
	return nil
}

// Solve invokes the solver once, passing the options through opaquely. The
// solved flag is set true iff the solver reports optimal; any other status
// leaves it false. The manager never inspects why a solve fell short.
func (m *Manager) Solve(opts lp.Options) error {
	m.solved = false
	sol, err := m.solver.Solve(m.problem, opts)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", m.inputs.Name, err)
	}
	m.solution = sol
	m.solved = sol.IsOptimal()
	return nil
}

// Solved reports whether the most recent solve reached optimal status.
func (m *Manager) Solved() bool {
	return m.solved
}

// VerifySolve fails unless the most recent solve reached optimal status.
func (m *Manager) VerifySolve() error {
	if !m.solved {
		return ErrNotSolved
	}
	return nil
}

// Inputs returns the read-only inputs the manager was built from.
func (m *Manager) Inputs() model.ScenarioInputs {
	return m.inputs
}

// Problem exposes the underlying LP, primarily for inspection and tests.
func (m *Manager) Problem() *lp.Problem {
	return m.problem
}

// Vars exposes the decision variable set.
func (m *Manager) Vars() Variables {
	return m.vars
}

// Objective returns the solved objective value.
func (m *Manager) Objective() (float64, error) {
	if err := m.VerifySolve(); err != nil {
		return 0, err
	}
	return m.solution.Objective, nil
}

// Value returns the solved value of one variable.
func (m *Manager) Value(v *lp.Variable) (float64, error) {
	if err := m.VerifySolve(); err != nil {
		return 0, err
	}
	return m.solution.Value(v), nil
}

// Values returns the full (variable name, value) list in problem order.
func (m *Manager) Values() ([]lp.NamedValue, error) {
	if err := m.VerifySolve(); err != nil {
		return nil, err
	}
	return m.solution.Named(m.problem), nil
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
