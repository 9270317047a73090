// Package summary projects a commute comparison into what a reader acts on:
// an ordered scenario list, the cheapest option, stacked chart data and a
// recommendation.
package summary

import (
	"math"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// Scenario keys, matching the JSON names of the comparison result.
const (
	KeyDrivingOnly   = "drivingOnly"
	KeyTransitOnly   = "dartOnly"
	KeyPrepaidDaily  = "prepaidDaily"
	KeyHybrid        = "hybrid"
	KeyHybridPrepaid = "hybridPrepaid"
)

// Scenario is one named strategy of a comparison.
type Scenario struct {
	Key  string                `json:"key"`
	Name string                `json:"name"`
	Cost commute.CostBreakdown `json:"cost"`
}

// ChartPoint is one stacked bar: vehicle running costs, fixed driving costs
// and the net transit cost, each rounded to whole dollars.
type ChartPoint struct {
	Name         string  `json:"name"`
	FuelMaint    float64 `json:"fuelAndMaint"`
	ParkingTolls float64 `json:"parkingAndTolls"`
	TransitNet   float64 `json:"transitNet"`
}

// Recommendation compares the headline strategies.
type Recommendation struct {
	Headline           string   `json:"headline"`
	AnnualSavings      float64  `json:"annualSavings"`
	SavingsPercent     float64  `json:"savingsPercent"`
	TransitCheaper     bool     `json:"transitCheaper"`
	HybridSavings      float64  `json:"hybridSavings"`
	HybridBeatsDriving bool     `json:"hybridBeatsDriving"`
	TicketSavings      *float64 `json:"ticketSavings,omitempty"`
	Cheapest           string   `json:"cheapest"`
	CheapestTotal      float64  `json:"cheapestTotal"`
}

// Report bundles a comparison with every projection of it.
type Report struct {
	Result         commute.ComparisonResult `json:"result"`
	Variant        commute.Variant          `json:"variant"`
	PeriodLabel    string                   `json:"periodLabel"`
	Scenarios      []Scenario               `json:"scenarios"`
	Chart          []ChartPoint             `json:"chart"`
	Cheapest       *Scenario                `json:"cheapest,omitempty"`
	Recommendation Recommendation           `json:"recommendation"`
}

// Scenarios lists the strategies of a result in display order. Prepaid
// scenarios appear only when the result carries them.
func Scenarios(result commute.ComparisonResult) []Scenario {
	scenarios := []Scenario{
		{Key: KeyDrivingOnly, Name: "Driving Only", Cost: result.DrivingOnly},
		{Key: KeyTransitOnly, Name: "DART Annual Pass", Cost: result.TransitOnly},
	}
	if result.PrepaidDaily != nil {
		scenarios = append(scenarios, Scenario{Key: KeyPrepaidDaily, Name: "Prepaid Daily Tickets", Cost: *result.PrepaidDaily})
	}
	scenarios = append(scenarios, Scenario{Key: KeyHybrid, Name: "Hybrid (Pass + Driving)", Cost: result.Hybrid})
	if result.HybridPrepaid != nil {
		scenarios = append(scenarios, Scenario{Key: KeyHybridPrepaid, Name: "Hybrid (Tickets + Driving)", Cost: *result.HybridPrepaid})
	}
	return scenarios
}

// Cheapest returns the scenario with the lowest total. On an exact tie the
// first listed wins. ok is false for an empty list.
func Cheapest(scenarios []Scenario) (cheapest Scenario, ok bool) {
	for i, s := range scenarios {
		if i == 0 || s.Cost.TotalCost < cheapest.Cost.TotalCost {
			cheapest = s
			ok = true
		}
	}
	return cheapest, ok
}

// ChartData builds one stacked bar per scenario.
func ChartData(scenarios []Scenario) []ChartPoint {
	points := make([]ChartPoint, 0, len(scenarios))
	for _, s := range scenarios {
		b := s.Cost.Breakdown
		points = append(points, ChartPoint{
			Name:         s.Name,
			FuelMaint:    math.Round(b.Fuel + b.Maintenance),
			ParkingTolls: math.Round(b.Parking + b.Tolls),
			TransitNet:   math.Round(b.PassCost + b.TicketCost - b.TaxSavings),
		})
	}
	return points
}

// Recommend weighs driving against the annual pass and the hybrid mix.
// Amounts are rounded to cents; the verdicts use the unrounded totals.
func Recommend(result commute.ComparisonResult) Recommendation {
	driving := result.DrivingOnly.TotalCost
	annualSavings := driving - result.TransitOnly.TotalCost

	rec := Recommendation{
		AnnualSavings:      mathutil.Round(annualSavings),
		SavingsPercent:     mathutil.Round(mathutil.CalculatePercentage(annualSavings, driving)),
		TransitCheaper:     annualSavings > 0,
		HybridSavings:      mathutil.Round(driving - result.Hybrid.TotalCost),
		HybridBeatsDriving: result.Hybrid.TotalCost < driving,
	}

	if rec.TransitCheaper {
		rec.Headline = "Switch to DART"
	} else {
		rec.Headline = "Driving is Cheaper"
	}

	if result.PrepaidDaily != nil {
		savings := mathutil.Round(result.TransitOnly.TotalCost - result.PrepaidDaily.TotalCost)
		rec.TicketSavings = &savings
	}

	if cheapest, ok := Cheapest(Scenarios(result)); ok {
		rec.Cheapest = cheapest.Name
		rec.CheapestTotal = cheapest.Cost.TotalCost
	}
	return rec
}

// Build assembles the full report for a comparison.
func Build(logger *zap.Logger, result commute.ComparisonResult) Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	scenarios := Scenarios(result)
	report := Report{
		Result:         result,
		Variant:        result.Variant(),
		PeriodLabel:    result.PeriodLabel(),
		Scenarios:      scenarios,
		Chart:          ChartData(scenarios),
		Recommendation: Recommend(result),
	}
	if cheapest, ok := Cheapest(scenarios); ok {
		report.Cheapest = &cheapest
	}

	logger.Debug("comparison summarized",
		zap.String("op", "summary.Build"),
		zap.String("variant", string(report.Variant)),
		zap.Int("commuteDays", result.ActualCommuteDays),
		zap.Int("scenarios", len(scenarios)),
		zap.String("cheapest", report.Recommendation.Cheapest),
		zap.Float64("annualSavings", report.Recommendation.AnnualSavings),
	)

	return report
}
