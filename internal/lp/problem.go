// Package lp describes linear programs as named non-negative variables, a
// minimize objective and labeled constraints, and solves them through a
// narrow Solver interface so the formulation stays independent of any
// particular backend.
package lp

import "fmt"

// Variable is a continuous decision variable with lower bound zero and no
// upper bound. Variables are created through Problem.NewVariable and are
// only meaningful within the problem that created them.
type Variable struct {
	Name  string
	index int
}

// Term is one coefficient*variable entry of a linear expression.
type Term struct {
	Coeff float64
	Var   *Variable
}

// Expr is a linear expression, the sum of its terms. Constant offsets are
// not represented; constraints carry them on the right-hand side.
type Expr []Term

// T is shorthand for building a term.
func T(coeff float64, v *Variable) Term {
	return Term{Coeff: coeff, Var: v}
}

// Op is a constraint comparison operator.
type Op int

const (
	LessEq Op = iota
	GreaterEq
	Equal
)

func (o Op) String() string {
	switch o {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "=="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Constraint is one labeled row of the problem: Expr Op RHS.
type Constraint struct {
	Label string
	Expr  Expr
	Op    Op
	RHS   float64
}

// Problem is a minimization LP under construction. The zero value is not
// usable; create one with NewProblem.
type Problem struct {
	Name string

	vars        []*Variable
	byName      map[string]*Variable
	objective   Expr
	constraints []Constraint
	labels      map[string]bool
}

func NewProblem(name string) *Problem {
	return &Problem{
		Name:   name,
		byName: make(map[string]*Variable),
		labels: make(map[string]bool),
	}
}

// NewVariable registers a variable. Names must be unique within the
// problem; result consumers rely on them to reconstruct time series.
func (p *Problem) NewVariable(name string) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("lp: variable name is required")
	}
	if _, ok := p.byName[name]; ok {
		return nil, fmt.Errorf("lp: duplicate variable %q", name)
	}
	v := &Variable{Name: name, index: len(p.vars)}
	p.vars = append(p.vars, v)
	p.byName[name] = v
	return v, nil
}

// SetObjective sets the expression to minimize, replacing any previous one.
func (p *Problem) SetObjective(e Expr) error {
	if err := p.checkExpr(e); err != nil {
		return fmt.Errorf("lp: objective: %w", err)
	}
	p.objective = e
	return nil
}

// AddConstraint appends a constraint. Labels must be unique and every
// referenced variable must belong to this problem.
func (p *Problem) AddConstraint(c Constraint) error {
	if c.Label == "" {
		return fmt.Errorf("lp: constraint label is required")
	}
	if p.labels[c.Label] {
		return fmt.Errorf("lp: duplicate constraint label %q", c.Label)
	}
	if err := p.checkExpr(c.Expr); err != nil {
		return fmt.Errorf("lp: constraint %q: %w", c.Label, err)
	}
	p.labels[c.Label] = true
	p.constraints = append(p.constraints, c)
	return nil
}

func (p *Problem) checkExpr(e Expr) error {
	for _, term := range e {
		if term.Var == nil {
			return fmt.Errorf("term has no variable")
		}
		if got, ok := p.byName[term.Var.Name]; !ok || got != term.Var {
			return fmt.Errorf("variable %q does not belong to this problem", term.Var.Name)
		}
	}
	return nil
}

// Variables returns the problem's variables in creation order.
func (p *Problem) Variables() []*Variable {
	return p.vars
}

// Var looks up a variable by name, or nil.
func (p *Problem) Var(name string) *Variable {
	return p.byName[name]
}

// Objective returns the expression being minimized.
func (p *Problem) Objective() Expr {
	return p.objective
}

// Constraints returns the constraints in insertion order.
func (p *Problem) Constraints() []Constraint {
	return p.constraints
}

func (p *Problem) NumVariables() int   { return len(p.vars) }
func (p *Problem) NumConstraints() int { return len(p.constraints) }

// Coefficients folds an expression into a per-variable coefficient vector
// in problem order, summing repeated terms for the same variable.
func (p *Problem) Coefficients(e Expr) []float64 {
	coeffs := make([]float64, len(p.vars))
	for _, term := range e {
		coeffs[term.Var.index] += term.Coeff
	}
	return coeffs
}

// Evaluate computes the value of an expression under a full assignment in
// problem order.
func (p *Problem) Evaluate(e Expr, values []float64) float64 {
	sum := 0.0
	for _, term := range e {
		sum += term.Coeff * values[term.Var.index]
	}
	return sum
}
