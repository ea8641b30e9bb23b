package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy-moore-energy/energy-storage-optimiser/internal/api/models"
)

func sizeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/size", NewSizeHandler(nil).RunSize)
	return router
}

func postSize(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/size", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func feasibleRequest() models.SizeRequest {
	return models.SizeRequest{
		Name: "api-test",
		Storage: models.StorageParams{
			Efficiency:           0.9,
			MinimumDurationHours: 2,
			CapexPower:           1,
			CapexCapacity:        1,
		},
		Renewables: []models.RenewableSeries{
			{Name: "Solar", CapacityMW: 100, Profile: []float64{1, 1, 1}},
		},
		Load: models.LoadSeries{CapacityMW: 50, Profile: []float64{0.5, 0.5, 0.5}},
	}
}

func TestRunSize_Feasible(t *testing.T) {
	rec := postSize(t, sizeRouter(), feasibleRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "api-test", resp.Name)
	assert.Equal(t, "optimal", resp.Status)
	assert.InDelta(t, 0, resp.Design.CapacityMWh, 1e-6)
	assert.InDelta(t, 0, resp.Design.PowerMW, 1e-6)
	assert.Empty(t, resp.Operation)
}

func TestRunSize_IncludeOperation(t *testing.T) {
	req := feasibleRequest()
	req.Options.IncludeOperation = true
	rec := postSize(t, sizeRouter(), req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Operation, 3)
	for i, point := range resp.Operation {
		assert.Equal(t, i, point.Step)
	}
}

func TestRunSize_InfeasibleInputs(t *testing.T) {
	req := feasibleRequest()
	// Demand structurally exceeds supply; verification rejects this
	// before any solve.
	req.Load = models.LoadSeries{CapacityMW: 150, Profile: []float64{1, 1, 1}}

	rec := postSize(t, sizeRouter(), req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INFEASIBLE_INPUTS", resp.Error.Code)
}

func TestRunSize_ReservedTechnologyName(t *testing.T) {
	req := feasibleRequest()
	req.Renewables[0].Name = "Total"

	rec := postSize(t, sizeRouter(), req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUTS", resp.Error.Code)
}

func TestRunSize_MalformedBody(t *testing.T) {
	router := sizeRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/size", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
