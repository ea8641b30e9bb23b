package model

import "errors"

// Storage defines the storage technology under consideration.
// Units:
// - Efficiency: round-trip, applied on charge only, (0,1]
// - MinimumDurationHours: hours of energy capacity required per MW of power
// - CapexPower: cost per MW of power rating
// - CapexCapacity: cost per MWh of energy capacity
//
// Immutable once constructed.
type Storage struct {
	Efficiency           float64
	MinimumDurationHours float64
	CapexPower           float64
	CapexCapacity        float64
}

func NewStorage(efficiency, minimumDurationHours, capexPower, capexCapacity float64) (Storage, error) {
	s := Storage{
		Efficiency:           efficiency,
		MinimumDurationHours: minimumDurationHours,
		CapexPower:           capexPower,
		CapexCapacity:        capexCapacity,
	}
	if err := s.Validate(); err != nil {
		return Storage{}, err
	}
	return s, nil
}

func (s Storage) Validate() error {
	if s.Efficiency <= 0 || s.Efficiency > 1 {
		return errors.New("Efficiency must be in (0, 1]")
	}
	if s.MinimumDurationHours < 0 {
		return errors.New("MinimumDurationHours must be >= 0")
	}
	if s.CapexPower < 0 {
		return errors.New("CapexPower must be >= 0")
	}
	if s.CapexCapacity < 0 {
		return errors.New("CapexCapacity must be >= 0")
	}
	return nil
}
