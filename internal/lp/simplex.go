package lp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex solves problems with gonum's dense simplex method. The zero
// value is ready to use.
type Simplex struct{}

// Solve converts the problem to gonum's general form (minimize c^T x
// subject to G*x <= h, A*x = b), rewrites it to standard form and runs
// the simplex method. Variable lower bounds become explicit -x <= 0 rows
// so the conversion stays uniform.
func (Simplex) Solve(p *Problem, opts Options) (*Solution, error) {
	n := p.NumVariables()
	if n == 0 {
		return nil, fmt.Errorf("lp: problem %q has no variables", p.Name)
	}

	c := p.Coefficients(p.Objective())

	var ineqRows, eqRows [][]float64
	var h, b []float64
	for _, con := range p.Constraints() {
		row := p.Coefficients(con.Expr)
		switch con.Op {
		case LessEq:
			ineqRows = append(ineqRows, row)
			h = append(h, con.RHS)
		case GreaterEq:
			ineqRows = append(ineqRows, negate(row))
			h = append(h, -con.RHS)
		case Equal:
			eqRows = append(eqRows, row)
			b = append(b, con.RHS)
		default:
			return nil, fmt.Errorf("lp: constraint %q has unknown operator", con.Label)
		}
	}
	// Lower bounds: -x_i <= 0.
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		row[i] = -1
		ineqRows = append(ineqRows, row)
		h = append(h, 0)
	}

	g := denseFromRows(ineqRows, n)
	var a mat.Matrix
	if len(eqRows) > 0 {
		a = denseFromRows(eqRows, n)
	}

	tol := opts.Tol
	if tol == 0 {
		tol = 1e-10
	}

	cStd, aStd, bStd := gonumlp.Convert(c, g, h, a, b)
	obj, xStd, err := gonumlp.Simplex(cStd, aStd, bStd, tol, nil)
	switch {
	case errors.Is(err, gonumlp.ErrInfeasible):
		return &Solution{Status: StatusInfeasible}, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return &Solution{Status: StatusUnbounded}, nil
	case err != nil:
		return nil, fmt.Errorf("lp: simplex on %q: %w", p.Name, err)
	}

	// Convert splits each original variable into positive and negative
	// parts; recover x_i = xStd[i] - xStd[n+i].
	values := make([]float64, n)
	for i := range values {
		values[i] = xStd[i] - xStd[n+i]
	}
	return &Solution{Status: StatusOptimal, Values: values, Objective: obj}, nil
}

func negate(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}

func denseFromRows(rows [][]float64, cols int) *mat.Dense {
	m := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
