package models

import "time"

// SizeResponse is the result of a sizing run.
type SizeResponse struct {
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Objective float64 `json:"objective"`

	Design DesignResult `json:"design"`

	// Operation is included when options.include_operation is set.
	Operation []OperationPoint `json:"operation,omitempty"`
}

// DesignResult is the sizing outcome: the two scalar decision variables.
type DesignResult struct {
	CapacityMWh float64 `json:"capacity_mwh"`
	PowerMW     float64 `json:"power_mw"`
}

// OperationPoint is the storage dispatch at one time step.
type OperationPoint struct {
	Step int       `json:"step"`
	Time time.Time `json:"time"`

	StorageLevelMWh float64 `json:"storagelevel_mwh"`
	ChargeMW        float64 `json:"charge_mw"`
	DischargeMW     float64 `json:"discharge_mw"`
	CurtailmentMW   float64 `json:"curtailment_mw"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
