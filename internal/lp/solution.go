package lp

// Status is the outcome reported by a solver.
type Status int

const (
	StatusNotSolved Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "not solved"
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "undefined"
	}
}

// Solution holds the results of a solve.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// Values contains the solved value of each variable, in problem order.
	// Only populated when Status is StatusOptimal.
	Values []float64

	// Objective is the value of the objective function at the solution.
	Objective float64
}

// IsOptimal returns true if the solver proved optimality.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// Value returns the solved value for a variable. Returns 0 for a nil
// variable or one outside the solved problem.
func (s *Solution) Value(v *Variable) float64 {
	if v == nil || v.index < 0 || v.index >= len(s.Values) {
		return 0
	}
	return s.Values[v.index]
}

// NamedValue pairs a variable name with its solved value.
type NamedValue struct {
	Name  string
	Value float64
}

// Named returns the full (name, value) list in problem order. This is the
// surface result consumers parse family/step series back out of.
func (s *Solution) Named(p *Problem) []NamedValue {
	out := make([]NamedValue, 0, len(s.Values))
	for _, v := range p.Variables() {
		out = append(out, NamedValue{Name: v.Name, Value: s.Value(v)})
	}
	return out
}

// Options is opaque solver configuration, passed through uninterpreted by
// the formulation layer.
type Options struct {
	// Tol is the simplex tolerance; zero selects the backend default.
	Tol float64
}

// Solver accepts a problem description and returns a status plus
// per-variable values. A non-optimal status is a result, not an error;
// errors are reserved for backend failures.
type Solver interface {
	Solve(p *Problem, opts Options) (*Solution, error)
}
