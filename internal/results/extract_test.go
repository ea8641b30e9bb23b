package results

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/lp"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/model"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/scenario"
)

var resultsStart = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func solvedManager(t *testing.T) *scenario.Manager {
	t.Helper()

	renewables, err := model.NewRenewables(
		[]string{"Solar"},
		map[string]float64{"Solar": 100},
		map[string][]float64{"Solar": {1, 1, 1}},
	)
	require.NoError(t, err)
	storage, err := model.NewStorage(0.9, 2, 1, 1)
	require.NoError(t, err)
	inputs, err := model.NewScenarioInputs(
		"extract-test", resultsStart, model.TimeIndexFor(3),
		renewables, model.NewLoad(50, []float64{0.5, 0.5, 0.5}), storage,
	)
	require.NoError(t, err)

	m, err := scenario.New(inputs, lp.Simplex{})
	require.NoError(t, err)
	require.NoError(t, m.VerifyInputs())
	require.NoError(t, m.Solve(lp.Options{}))
	require.True(t, m.Solved())
	return m
}

func TestDesignResults(t *testing.T) {
	m := solvedManager(t)
	d, err := DesignResults(m)
	require.NoError(t, err)
	// Generation always covers load, so no storage gets built.
	assert.InDelta(t, 0, d.Capacity, 1e-6)
	assert.InDelta(t, 0, d.Power, 1e-6)
}

func TestDesignResults_Unsolved(t *testing.T) {
	renewables, err := model.NewRenewables(
		[]string{"Solar"},
		map[string]float64{"Solar": 100},
		map[string][]float64{"Solar": {1, 1}},
	)
	require.NoError(t, err)
	storage, err := model.NewStorage(0.9, 2, 1, 1)
	require.NoError(t, err)
	inputs, err := model.NewScenarioInputs(
		"unsolved", resultsStart, model.TimeIndexFor(2),
		renewables, model.NewLoad(50, []float64{0.5, 0.5}), storage,
	)
	require.NoError(t, err)
	m, err := scenario.New(inputs, lp.Simplex{})
	require.NoError(t, err)

	_, err = DesignResults(m)
	assert.ErrorIs(t, err, scenario.ErrNotSolved)
	_, err = Operation(m)
	assert.ErrorIs(t, err, scenario.ErrNotSolved)
	_, err = FullOperation(m)
	assert.ErrorIs(t, err, scenario.ErrNotSolved)
}

func TestOperation_StepsAndTimestamps(t *testing.T) {
	m := solvedManager(t)
	rows, err := Operation(m)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, i, row.Step)
		assert.Equal(t, resultsStart.Add(time.Duration(i)*time.Hour), row.Time)
	}
}

func TestOperation_Idempotent(t *testing.T) {
	m := solvedManager(t)

	first, err := FullOperation(m)
	require.NoError(t, err)
	second, err := FullOperation(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFullOperation_JoinsInputsAndCurtailment(t *testing.T) {
	m := solvedManager(t)
	rows, err := FullOperation(m)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.InDelta(t, 100, row.Total, 1e-9)
		assert.InDelta(t, 100, row.Generation["Solar"], 1e-9)
		assert.InDelta(t, 25, row.Load, 1e-9)
		// No storage was built, so the surplus is all curtailed.
		assert.InDelta(t, 75, row.Curtailment+row.Charge-row.Discharge, 1e-6)
	}
}

func TestSplitTimeVariable(t *testing.T) {
	family, step, ok := splitTimeVariable("storagelevel_42")
	require.True(t, ok)
	assert.Equal(t, "storagelevel", family)
	assert.Equal(t, 42, step)

	family, step, ok = splitTimeVariable("charge_0")
	require.True(t, ok)
	assert.Equal(t, "charge", family)
	assert.Equal(t, 0, step)

	_, _, ok = splitTimeVariable("capacity")
	assert.False(t, ok)
	_, _, ok = splitTimeVariable("power")
	assert.False(t, ok)
	_, _, ok = splitTimeVariable("discharge_x")
	assert.False(t, ok)

	// The family and the step must split at the same separator: an
	// unknown family with an extra segment is rejected, not partially
	// matched from the front.
	_, _, ok = splitTimeVariable("charge_x_1")
	assert.False(t, ok)
}
