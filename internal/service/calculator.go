package service

import (
	"math"
	"time"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/metrics"
)

// mlPerGram is the fixed brewing rule: 10ml of liquid coffee per 1g of ground coffee.
const mlPerGram = 10.0

// ConsumptionCalculator estimates coffee consumption for events and for
// internal (office) use.
type ConsumptionCalculator interface {
	Event(req dto.EventCalculationRequest) (model.CalculationResult, error)
	InternalUse(req dto.InternalUseCalculationRequest) (model.CalculationResult, error)
}

// ConsumptionCalculatorService implements ConsumptionCalculator.
type ConsumptionCalculatorService struct{}

// NewConsumptionCalculator creates a new consumption calculator.
func NewConsumptionCalculator() *ConsumptionCalculatorService {
	return &ConsumptionCalculatorService{}
}

// Event estimates consumption for a sponsored event.
//
// totalPeople = peoplePerDay × days
// expectedConsumers = round(totalPeople × attendanceRate/100)
// totalGrams = expectedConsumers × (mlPerCup/10) × (1 + wasteFactor/100)
func (s *ConsumptionCalculatorService) Event(req dto.EventCalculationRequest) (model.CalculationResult, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		metrics.RecordCalculation("event", "validation_error", time.Since(start))
		return model.CalculationResult{}, err
	}

	totalPeople := req.PeoplePerDay * req.Days
	expectedConsumers := math.Round(float64(totalPeople) * req.AttendanceRate / 100)
	gramsPerCup := req.MlPerCup / mlPerGram
	totalGrams := expectedConsumers * gramsPerCup * (1 + req.WasteFactor/100)

	totalKg := totalGrams / 1000
	kgPerDay := totalKg / float64(req.Days)

	result := model.CalculationResult{
		TotalKg:        totalKg,
		PackagesOf250g: model.Base250Ceil(totalKg),
		KgPerDay:       kgPerDay,
		KgPerHour:      kgPerDay / req.HoursPerDay,
	}

	metrics.RecordCalculation("event", "success", time.Since(start))
	return result, nil
}

// InternalUse estimates office consumption for a client company.
//
// totalMl = employeeCount × days × cupsPerDay × cupSizeMl
// totalGrams = (totalMl/10) × (1 + wasteFactor/100)
//
// KgPerHour is zero: internal-use requests carry no hours-per-day input.
func (s *ConsumptionCalculatorService) InternalUse(req dto.InternalUseCalculationRequest) (model.CalculationResult, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		metrics.RecordCalculation("internal_use", "validation_error", time.Since(start))
		return model.CalculationResult{}, err
	}

	dailyMlPerPerson := float64(req.CupsPerDay) * req.CupSizeMl
	totalMl := float64(req.EmployeeCount*req.Days) * dailyMlPerPerson
	totalGrams := (totalMl / mlPerGram) * (1 + req.WasteFactor/100)

	totalKg := totalGrams / 1000

	result := model.CalculationResult{
		TotalKg:        totalKg,
		PackagesOf250g: model.Base250Ceil(totalKg),
		KgPerDay:       totalKg / float64(req.Days),
	}

	metrics.RecordCalculation("internal_use", "success", time.Since(start))
	return result, nil
}
