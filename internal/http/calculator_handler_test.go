package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/service"
)

func TestCalculateEvent(t *testing.T) {
	h, _ := newTestHandler()
	router := newTestRouter(h)

	t.Run("estimates event consumption", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/calculators/event", dto.EventCalculationRequest{
			PeoplePerDay:   100,
			Days:           2,
			AttendanceRate: 60,
			HoursPerDay:    8,
			MlPerCup:       70,
			WasteFactor:    10,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result model.CalculationResult
		decodeData(t, w, &result)
		assert.InDelta(t, 0.924, result.TotalKg, 1e-9)
		assert.Equal(t, 4, result.PackagesOf250g)
		assert.InDelta(t, 0.462, result.KgPerDay, 1e-9)
	})

	t.Run("invalid input", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/calculators/event", map[string]interface{}{
			"people_per_day":  100,
			"days":            0,
			"attendance_rate": 60,
			"hours_per_day":   8,
			"ml_per_cup":      70,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCalculateInternalUse(t *testing.T) {
	h, _ := newTestHandler()
	router := newTestRouter(h)

	w := performRequest(t, router, http.MethodPost, "/api/calculators/internal-use", dto.InternalUseCalculationRequest{
		EmployeeCount: 10,
		Days:          30,
		CupsPerDay:    3,
		CupSizeMl:     100,
		WasteFactor:   10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result model.CalculationResult
	decodeData(t, w, &result)
	assert.InDelta(t, 9.9, result.TotalKg, 1e-9)
	assert.Equal(t, 40, result.PackagesOf250g)
	assert.Zero(t, result.KgPerHour)
}

func TestReconcileSelection(t *testing.T) {
	h, _ := newTestHandler()
	router := newTestRouter(h)

	t.Run("reports the advisory delta", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/selections/reconcile", dto.ReconcileRequest{
			Result: model.CalculationResult{TotalKg: 0.924, PackagesOf250g: 4},
			Lines: []model.SelectionLine{
				{ProductID: primitive.NewObjectID(), PackagingSize: model.Packaging250g, Quantity: 6},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var reconciliation service.Reconciliation
		decodeData(t, w, &reconciliation)
		assert.Equal(t, 6, reconciliation.SelectedPackages250)
		assert.Equal(t, 4, reconciliation.TargetPackages250)
		assert.Equal(t, 2, reconciliation.DeltaPackages)
	})

	t.Run("unknown packaging size", func(t *testing.T) {
		w := performRequest(t, router, http.MethodPost, "/api/selections/reconcile", dto.ReconcileRequest{
			Result: model.CalculationResult{PackagesOf250g: 4},
			Lines: []model.SelectionLine{
				{ProductID: primitive.NewObjectID(), PackagingSize: "2kg", Quantity: 1},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
