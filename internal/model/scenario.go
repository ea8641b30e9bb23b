package model

import (
	"fmt"
	"time"
)

// ScenarioInputs is the read-only bundle a scenario manager is built from.
// The time index is the discrete step sequence of the horizon; step t maps
// to the timestamp StartDate + t hours.
type ScenarioInputs struct {
	Name       string
	StartDate  time.Time
	TimeIndex  []int
	Renewables Renewables
	Load       Load
	Storage    Storage
}

// NewScenarioInputs validates cross-component consistency: the time index
// must be a contiguous run starting at 0, and the generation table and load
// series must cover exactly that horizon.
func NewScenarioInputs(name string, startDate time.Time, timeIndex []int, renewables Renewables, load Load, storage Storage) (ScenarioInputs, error) {
	if name == "" {
		return ScenarioInputs{}, fmt.Errorf("scenario: name is required")
	}
	if len(timeIndex) == 0 {
		return ScenarioInputs{}, fmt.Errorf("scenario %q: time index is empty", name)
	}
	for i, t := range timeIndex {
		if t != i {
			return ScenarioInputs{}, fmt.Errorf("scenario %q: time index must be contiguous from 0, got %d at position %d", name, t, i)
		}
	}
	if err := storage.Validate(); err != nil {
		return ScenarioInputs{}, fmt.Errorf("scenario %q: %w", name, err)
	}
	if got := renewables.Steps(); got != len(timeIndex) {
		return ScenarioInputs{}, fmt.Errorf("scenario %q: generation has %d steps, time index has %d", name, got, len(timeIndex))
	}
	if got := len(load.Series); got != len(timeIndex) {
		return ScenarioInputs{}, fmt.Errorf("scenario %q: load has %d steps, time index has %d", name, got, len(timeIndex))
	}
	return ScenarioInputs{
		Name:       name,
		StartDate:  startDate,
		TimeIndex:  timeIndex,
		Renewables: renewables,
		Load:       load,
		Storage:    storage,
	}, nil
}

// TimeIndexFor builds the contiguous time index for a horizon of n steps.
func TimeIndexFor(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// TimeAt maps a step of the time index to its timestamp.
func (s ScenarioInputs) TimeAt(t int) time.Time {
	return s.StartDate.Add(time.Duration(t) * time.Hour)
}
