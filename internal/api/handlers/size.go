package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/api/models"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/lp"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/model"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/results"
	"github.com/andy-moore-energy/energy-storage-optimiser/internal/scenario"
)

// SizeHandler handles sizing requests.
type SizeHandler struct {
	solver lp.Solver
}

// NewSizeHandler creates a size handler. A nil solver defaults to the
// simplex backend.
func NewSizeHandler(solver lp.Solver) *SizeHandler {
	if solver == nil {
		solver = lp.Simplex{}
	}
	return &SizeHandler{solver: solver}
}

// RunSize handles POST /api/v1/size.
func (h *SizeHandler) RunSize(c *gin.Context) {
	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	inputs, err := buildInputs(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_INPUTS", err.Error()))
		return
	}

	mgr, err := scenario.New(inputs, h.solver)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_INPUTS", err.Error()))
		return
	}
	if err := mgr.VerifyInputs(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INFEASIBLE_INPUTS", err.Error()))
		return
	}

	log.Printf("sizing scenario %q: %d steps, %d constraints",
		inputs.Name, len(inputs.TimeIndex), mgr.Problem().NumConstraints())

	if err := mgr.Solve(lp.Options{Tol: req.Options.Tol}); err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("SOLVER_ERROR", err.Error()))
		return
	}
	if !mgr.Solved() {
		c.JSON(http.StatusUnprocessableEntity, models.NewError("NOT_OPTIMAL", "solver did not reach optimal status"))
		return
	}

	resp, err := buildResponse(mgr, req.Options.IncludeOperation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func buildInputs(req models.SizeRequest) (model.ScenarioInputs, error) {
	names := make([]string, 0, len(req.Renewables))
	capacities := make(map[string]float64, len(req.Renewables))
	profiles := make(map[string][]float64, len(req.Renewables))
	// The horizon is the shortest series supplied; longer ones truncate.
	steps := len(req.Load.Profile)
	for _, r := range req.Renewables {
		if len(r.Profile) < steps {
			steps = len(r.Profile)
		}
	}
	for _, r := range req.Renewables {
		names = append(names, r.Name)
		capacities[r.Name] = r.CapacityMW
		profiles[r.Name] = r.Profile[:steps]
	}

	renewables, err := model.NewRenewables(names, capacities, profiles)
	if err != nil {
		return model.ScenarioInputs{}, err
	}
	load := model.NewLoad(req.Load.CapacityMW, req.Load.Profile[:steps])

	return model.NewScenarioInputs(
		req.Name,
		req.StartDate,
		model.TimeIndexFor(steps),
		renewables,
		load,
		model.Storage{
			Efficiency:           req.Storage.Efficiency,
			MinimumDurationHours: req.Storage.MinimumDurationHours,
			CapexPower:           req.Storage.CapexPower,
			CapexCapacity:        req.Storage.CapexCapacity,
		},
	)
}

func buildResponse(mgr *scenario.Manager, includeOperation bool) (models.SizeResponse, error) {
	design, err := results.DesignResults(mgr)
	if err != nil {
		return models.SizeResponse{}, err
	}
	objective, err := mgr.Objective()
	if err != nil {
		return models.SizeResponse{}, err
	}

	resp := models.SizeResponse{
		Name:      mgr.Inputs().Name,
		Status:    "optimal",
		Objective: objective,
		Design: models.DesignResult{
			CapacityMWh: design.Capacity,
			PowerMW:     design.Power,
		},
	}

	if includeOperation {
		rows, err := results.FullOperation(mgr)
		if err != nil {
			return models.SizeResponse{}, err
		}
		resp.Operation = make([]models.OperationPoint, len(rows))
		for i, row := range rows {
			resp.Operation[i] = models.OperationPoint{
				Step:            row.Step,
				Time:            row.Time,
				StorageLevelMWh: row.StorageLevel,
				ChargeMW:        row.Charge,
				DischargeMW:     row.Discharge,
				CurtailmentMW:   row.Curtailment,
			}
		}
	}
	return resp, nil
}
