package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/service"
)

func TestConsumptionCalculator_Event(t *testing.T) {
	calculator := service.NewConsumptionCalculator()

	t.Run("reference two day event", func(t *testing.T) {
		// 100 people/day over 2 days, 60% drink one 70ml cup, 10% waste:
		// 120 consumers x 7g x 1.1 = 924g.
		result, err := calculator.Event(dto.EventCalculationRequest{
			PeoplePerDay:   100,
			Days:           2,
			AttendanceRate: 60,
			HoursPerDay:    8,
			MlPerCup:       70,
			WasteFactor:    10,
		})
		require.NoError(t, err)

		assert.InDelta(t, 0.924, result.TotalKg, 1e-9)
		assert.Equal(t, 4, result.PackagesOf250g)
		assert.InDelta(t, 0.462, result.KgPerDay, 1e-9)
		assert.InDelta(t, 0.05775, result.KgPerHour, 1e-9)
	})

	t.Run("no waste", func(t *testing.T) {
		result, err := calculator.Event(dto.EventCalculationRequest{
			PeoplePerDay:   50,
			Days:           1,
			AttendanceRate: 100,
			HoursPerDay:    4,
			MlPerCup:       100,
			WasteFactor:    0,
		})
		require.NoError(t, err)

		// 50 consumers x 10g = 500g.
		assert.InDelta(t, 0.5, result.TotalKg, 1e-9)
		assert.Equal(t, 2, result.PackagesOf250g)
	})

	t.Run("attendance rounds to nearest consumer", func(t *testing.T) {
		// 3 people x 50% = 1.5, rounds to 2 consumers.
		result, err := calculator.Event(dto.EventCalculationRequest{
			PeoplePerDay:   3,
			Days:           1,
			AttendanceRate: 50,
			HoursPerDay:    1,
			MlPerCup:       100,
			WasteFactor:    0,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.02, result.TotalKg, 1e-9)
	})

	invalid := []struct {
		name  string
		req   dto.EventCalculationRequest
		field string
	}{
		{
			name:  "zero people",
			req:   dto.EventCalculationRequest{Days: 1, AttendanceRate: 50, HoursPerDay: 1, MlPerCup: 70},
			field: "people_per_day",
		},
		{
			name:  "zero days",
			req:   dto.EventCalculationRequest{PeoplePerDay: 10, AttendanceRate: 50, HoursPerDay: 1, MlPerCup: 70},
			field: "days",
		},
		{
			name:  "attendance above 100",
			req:   dto.EventCalculationRequest{PeoplePerDay: 10, Days: 1, AttendanceRate: 120, HoursPerDay: 1, MlPerCup: 70},
			field: "attendance_rate",
		},
		{
			name:  "zero hours",
			req:   dto.EventCalculationRequest{PeoplePerDay: 10, Days: 1, AttendanceRate: 50, MlPerCup: 70},
			field: "hours_per_day",
		},
		{
			name:  "negative waste",
			req:   dto.EventCalculationRequest{PeoplePerDay: 10, Days: 1, AttendanceRate: 50, HoursPerDay: 1, MlPerCup: 70, WasteFactor: -5},
			field: "waste_factor",
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.Event(tt.req)
			require.Error(t, err)

			var vErr *dto.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestConsumptionCalculator_InternalUse(t *testing.T) {
	calculator := service.NewConsumptionCalculator()

	t.Run("reference office month", func(t *testing.T) {
		// 10 employees x 30 days x 3 cups x 100ml = 90L, 10% waste: 9.9kg.
		result, err := calculator.InternalUse(dto.InternalUseCalculationRequest{
			EmployeeCount: 10,
			Days:          30,
			CupsPerDay:    3,
			CupSizeMl:     100,
			WasteFactor:   10,
		})
		require.NoError(t, err)

		assert.InDelta(t, 9.9, result.TotalKg, 1e-9)
		assert.Equal(t, 40, result.PackagesOf250g)
		assert.InDelta(t, 0.33, result.KgPerDay, 1e-9)
		assert.Zero(t, result.KgPerHour)
	})

	t.Run("single employee single day", func(t *testing.T) {
		result, err := calculator.InternalUse(dto.InternalUseCalculationRequest{
			EmployeeCount: 1,
			Days:          1,
			CupsPerDay:    2,
			CupSizeMl:     50,
			WasteFactor:   0,
		})
		require.NoError(t, err)

		// 100ml -> 10g.
		assert.InDelta(t, 0.01, result.TotalKg, 1e-9)
		assert.Equal(t, 1, result.PackagesOf250g)
	})

	invalid := []struct {
		name  string
		req   dto.InternalUseCalculationRequest
		field string
	}{
		{
			name:  "zero employees",
			req:   dto.InternalUseCalculationRequest{Days: 30, CupsPerDay: 3, CupSizeMl: 100},
			field: "employee_count",
		},
		{
			name:  "zero days",
			req:   dto.InternalUseCalculationRequest{EmployeeCount: 10, CupsPerDay: 3, CupSizeMl: 100},
			field: "days",
		},
		{
			name:  "zero cups",
			req:   dto.InternalUseCalculationRequest{EmployeeCount: 10, Days: 30, CupSizeMl: 100},
			field: "cups_per_day",
		},
		{
			name:  "zero cup size",
			req:   dto.InternalUseCalculationRequest{EmployeeCount: 10, Days: 30, CupsPerDay: 3},
			field: "cup_size_ml",
		},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.InternalUse(tt.req)
			require.Error(t, err)

			var vErr *dto.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
