package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblem_DuplicateVariableName(t *testing.T) {
	p := NewProblem("dup")
	_, err := p.NewVariable("x")
	require.NoError(t, err)
	_, err = p.NewVariable("x")
	assert.Error(t, err)
}

func TestProblem_DuplicateConstraintLabel(t *testing.T) {
	p := NewProblem("dup")
	x, err := p.NewVariable("x")
	require.NoError(t, err)

	c := Constraint{Label: "bound", Expr: Expr{T(1, x)}, Op: LessEq, RHS: 1}
	require.NoError(t, p.AddConstraint(c))
	assert.Error(t, p.AddConstraint(c))
}

func TestProblem_RejectsForeignVariable(t *testing.T) {
	p := NewProblem("a")
	q := NewProblem("b")
	x, err := q.NewVariable("x")
	require.NoError(t, err)

	err = p.AddConstraint(Constraint{Label: "bound", Expr: Expr{T(1, x)}, Op: LessEq, RHS: 1})
	assert.Error(t, err)
	assert.Error(t, p.SetObjective(Expr{T(1, x)}))
}

func TestProblem_CoefficientsSumRepeatedTerms(t *testing.T) {
	p := NewProblem("sum")
	x, err := p.NewVariable("x")
	require.NoError(t, err)
	y, err := p.NewVariable("y")
	require.NoError(t, err)

	// x appears twice with +1 and -1; the folded coefficient is 0.
	coeffs := p.Coefficients(Expr{T(1, x), T(-1, x), T(2, y)})
	assert.Equal(t, []float64{0, 2}, coeffs)
}

func TestProblem_Evaluate(t *testing.T) {
	p := NewProblem("eval")
	x, err := p.NewVariable("x")
	require.NoError(t, err)
	y, err := p.NewVariable("y")
	require.NoError(t, err)

	got := p.Evaluate(Expr{T(2, x), T(3, y)}, []float64{5, 7})
	assert.Equal(t, 31.0, got)
}

func TestProblem_VariablesInCreationOrder(t *testing.T) {
	p := NewProblem("order")
	for _, name := range []string{"capacity", "power", "storagelevel_0"} {
		_, err := p.NewVariable(name)
		require.NoError(t, err)
	}
	vars := p.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, "capacity", vars[0].Name)
	assert.Equal(t, "power", vars[1].Name)
	assert.Equal(t, "storagelevel_0", vars[2].Name)
}
