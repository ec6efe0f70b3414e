package service

import (
	"context"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/repository"
)

// EventRequestService persists calculator submissions for logistics follow-up.
type EventRequestService interface {
	// Submit recomputes the result from the submitted inputs, reconciles the
	// selection when present, and persists the record. Client-supplied results
	// are never trusted.
	Submit(ctx context.Context, req dto.SubmitEventRequestRequest) (*model.EventRequest, error)
	// List returns submissions, newest first.
	List(ctx context.Context, limit int) ([]model.EventRequest, error)
}

// EventRequestServiceImpl implements EventRequestService.
type EventRequestServiceImpl struct {
	requests   repository.EventRequestsRepositoryInterface
	calculator ConsumptionCalculator
	engine     StockEngine
}

// NewEventRequestService creates a new event request service.
func NewEventRequestService(
	requests repository.EventRequestsRepositoryInterface,
	calculator ConsumptionCalculator,
	engine StockEngine,
) *EventRequestServiceImpl {
	return &EventRequestServiceImpl{
		requests:   requests,
		calculator: calculator,
		engine:     engine,
	}
}

// Submit recomputes the calculation server-side and persists the submission.
func (s *EventRequestServiceImpl) Submit(ctx context.Context, req dto.SubmitEventRequestRequest) (*model.EventRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.compute(req.Kind, req.Inputs)
	if err != nil {
		return nil, err
	}

	record := &model.EventRequest{
		Kind:       req.Kind,
		ClientName: req.ClientName,
		EventDate:  req.EventDate,
		Location:   req.Location,
		Inputs:     req.Inputs,
		Result:     result,
		Lines:      req.Lines,
	}

	if len(req.Lines) > 0 {
		reconciliation, err := s.engine.Reconcile(result, req.Lines)
		if err != nil {
			return nil, err
		}
		record.DeltaPackages = reconciliation.DeltaPackages
	}

	if err := s.requests.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns submissions, newest first.
func (s *EventRequestServiceImpl) List(ctx context.Context, limit int) ([]model.EventRequest, error) {
	return s.requests.List(ctx, limit)
}

// compute rebuilds the calculator request from the raw inputs map and runs
// the matching variant. Missing keys surface as validation errors from the
// calculator itself.
func (s *EventRequestServiceImpl) compute(kind model.EventRequestKind, inputs map[string]float64) (model.CalculationResult, error) {
	switch kind {
	case model.KindEvent:
		return s.calculator.Event(dto.EventCalculationRequest{
			PeoplePerDay:   int(inputs["people_per_day"]),
			Days:           int(inputs["days"]),
			AttendanceRate: inputs["attendance_rate"],
			HoursPerDay:    inputs["hours_per_day"],
			MlPerCup:       inputs["ml_per_cup"],
			WasteFactor:    inputs["waste_factor"],
		})
	case model.KindInternalUse:
		return s.calculator.InternalUse(dto.InternalUseCalculationRequest{
			EmployeeCount: int(inputs["employee_count"]),
			Days:          int(inputs["days"]),
			CupsPerDay:    int(inputs["cups_per_day"]),
			CupSizeMl:     inputs["cup_size_ml"],
			WasteFactor:   inputs["waste_factor"],
		})
	default:
		return model.CalculationResult{}, &dto.ValidationError{Field: "kind", Message: "must be event or internal_use"}
	}
}
