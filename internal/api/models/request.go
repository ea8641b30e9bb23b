package models

import "time"

// SizeRequest represents the request body for running a sizing scenario.
// Profiles are inline; the API performs no file or network I/O on behalf
// of the caller.
type SizeRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date"`

	Storage    StorageParams     `json:"storage" binding:"required"`
	Renewables []RenewableSeries `json:"renewables" binding:"required"`
	Load       LoadSeries        `json:"load" binding:"required"`

	Options SizeOptions `json:"options,omitempty"`
}

// StorageParams defines the storage technology under consideration.
type StorageParams struct {
	Efficiency           float64 `json:"efficiency"`
	MinimumDurationHours float64 `json:"minimum_duration_hours"`
	CapexPower           float64 `json:"capex_power"`
	CapexCapacity        float64 `json:"capex_capacity"`
}

// RenewableSeries is one technology's installed capacity and
// capacity-factor profile.
type RenewableSeries struct {
	Name       string    `json:"name" binding:"required"`
	CapacityMW float64   `json:"capacity_mw"`
	Profile    []float64 `json:"profile" binding:"required"`
}

// LoadSeries is the demand side: capacity times a normalized profile.
type LoadSeries struct {
	CapacityMW float64   `json:"capacity_mw"`
	Profile    []float64 `json:"profile" binding:"required"`
}

// SizeOptions contains optional run parameters.
type SizeOptions struct {
	IncludeOperation bool    `json:"include_operation,omitempty"` // default: false
	Tol              float64 `json:"tol,omitempty"`               // solver tolerance, 0 = backend default
}
