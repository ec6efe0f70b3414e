package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cafelagoa/stock-service/internal/domain/model"
)

func validEventRequest() EventCalculationRequest {
	return EventCalculationRequest{
		PeoplePerDay:   100,
		Days:           2,
		AttendanceRate: 60,
		HoursPerDay:    8,
		MlPerCup:       70,
		WasteFactor:    10,
	}
}

func TestEventCalculationRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EventCalculationRequest)
		field  string
	}{
		{"valid", func(r *EventCalculationRequest) {}, ""},
		{"zero waste factor is valid", func(r *EventCalculationRequest) { r.WasteFactor = 0 }, ""},
		{"zero people", func(r *EventCalculationRequest) { r.PeoplePerDay = 0 }, "people_per_day"},
		{"negative days", func(r *EventCalculationRequest) { r.Days = -1 }, "days"},
		{"attendance above 100", func(r *EventCalculationRequest) { r.AttendanceRate = 101 }, "attendance_rate"},
		{"zero attendance", func(r *EventCalculationRequest) { r.AttendanceRate = 0 }, "attendance_rate"},
		{"zero hours", func(r *EventCalculationRequest) { r.HoursPerDay = 0 }, "hours_per_day"},
		{"zero ml per cup", func(r *EventCalculationRequest) { r.MlPerCup = 0 }, "ml_per_cup"},
		{"negative waste", func(r *EventCalculationRequest) { r.WasteFactor = -5 }, "waste_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEventRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestInternalUseCalculationRequest_Validate(t *testing.T) {
	valid := InternalUseCalculationRequest{
		EmployeeCount: 10,
		Days:          30,
		CupsPerDay:    3,
		CupSizeMl:     100,
		WasteFactor:   10,
	}

	tests := []struct {
		name   string
		mutate func(*InternalUseCalculationRequest)
		field  string
	}{
		{"valid", func(r *InternalUseCalculationRequest) {}, ""},
		{"zero employees", func(r *InternalUseCalculationRequest) { r.EmployeeCount = 0 }, "employee_count"},
		{"zero days", func(r *InternalUseCalculationRequest) { r.Days = 0 }, "days"},
		{"zero cups", func(r *InternalUseCalculationRequest) { r.CupsPerDay = 0 }, "cups_per_day"},
		{"zero cup size", func(r *InternalUseCalculationRequest) { r.CupSizeMl = 0 }, "cup_size_ml"},
		{"negative waste", func(r *InternalUseCalculationRequest) { r.WasteFactor = -1 }, "waste_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCreateReservationRequest_Validate(t *testing.T) {
	line := model.SelectionLine{
		ProductID:     primitive.NewObjectID(),
		PackagingSize: model.Packaging250g,
		Quantity:      2,
	}

	t.Run("valid", func(t *testing.T) {
		req := CreateReservationRequest{ClientName: "Padaria Santa Clara", Lines: []model.SelectionLine{line}}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing client name", func(t *testing.T) {
		req := CreateReservationRequest{Lines: []model.SelectionLine{line}}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "client_name", vErr.Field)
	})

	t.Run("no lines", func(t *testing.T) {
		req := CreateReservationRequest{ClientName: "Padaria Santa Clara"}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "lines", vErr.Field)
	})

	t.Run("zero quantity", func(t *testing.T) {
		bad := line
		bad.Quantity = 0
		req := CreateReservationRequest{ClientName: "Padaria Santa Clara", Lines: []model.SelectionLine{bad}}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "lines.quantity", vErr.Field)
	})

	t.Run("unknown packaging size", func(t *testing.T) {
		bad := line
		bad.PackagingSize = "2kg"
		req := CreateReservationRequest{ClientName: "Padaria Santa Clara", Lines: []model.SelectionLine{bad}}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "lines.packaging_size", vErr.Field)
	})
}

func TestUpdateReservationStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateReservationStatusRequest{Status: model.ReservationDelivered}).Validate())
	assert.NoError(t, (&UpdateReservationStatusRequest{Status: model.ReservationCancelled}).Validate())

	var vErr *ValidationError
	require.ErrorAs(t, (&UpdateReservationStatusRequest{Status: "shipped"}).Validate(), &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestCreateProductRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateProductRequest{
			Name:           "Geisha",
			TotalPackages:  20,
			AvailableSizes: []model.PackagingSize{model.Packaging100g, model.Packaging250g},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("negative stock", func(t *testing.T) {
		req := CreateProductRequest{Name: "Geisha", TotalPackages: -1}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "total_packages_in_stock", vErr.Field)
	})

	t.Run("unknown size", func(t *testing.T) {
		req := CreateProductRequest{
			Name:           "Geisha",
			AvailableSizes: []model.PackagingSize{model.Packaging250g, "5kg"},
		}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "available_sizes", vErr.Field)
	})
}

func TestSubmitEventRequestRequest_Validate(t *testing.T) {
	inputs := map[string]float64{"people_per_day": 100}

	t.Run("valid", func(t *testing.T) {
		req := SubmitEventRequestRequest{Kind: model.KindEvent, ClientName: "TechConf", Inputs: inputs}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		req := SubmitEventRequestRequest{Kind: "wedding", ClientName: "TechConf", Inputs: inputs}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "kind", vErr.Field)
	})

	t.Run("missing client name", func(t *testing.T) {
		req := SubmitEventRequestRequest{Kind: model.KindInternalUse, Inputs: inputs}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "client_name", vErr.Field)
	})

	t.Run("empty inputs", func(t *testing.T) {
		req := SubmitEventRequestRequest{Kind: model.KindEvent, ClientName: "TechConf"}
		var vErr *ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "inputs", vErr.Field)
	})
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusUnprocessableEntity, ErrCodeOverstock},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}
