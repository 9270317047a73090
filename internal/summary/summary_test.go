package summary_test

import (
	"testing"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/internal/summary"
	"github.com/iwvelando/commute-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func scenarioWithTotal(key string, total float64) summary.Scenario {
	return summary.Scenario{Key: key, Name: key, Cost: commute.CostBreakdown{TotalCost: total}}
}

func TestCheapest(t *testing.T) {
	tests := []struct {
		name        string
		scenarios   []summary.Scenario
		expectedKey string
		expectOK    bool
	}{
		{
			name: "Minimum by value",
			scenarios: []summary.Scenario{
				scenarioWithTotal("a", 2568.80),
				scenarioWithTotal("b", 720),
				scenarioWithTotal("c", 1320),
			},
			expectedKey: "b",
			expectOK:    true,
		},
		{
			name: "Exact tie keeps first listed",
			scenarios: []summary.Scenario{
				scenarioWithTotal("a", 900),
				scenarioWithTotal("b", 500),
				scenarioWithTotal("c", 500),
			},
			expectedKey: "b",
			expectOK:    true,
		},
		{
			name: "All equal keeps first",
			scenarios: []summary.Scenario{
				scenarioWithTotal("a", 100),
				scenarioWithTotal("b", 100),
				scenarioWithTotal("c", 100),
			},
			expectedKey: "a",
			expectOK:    true,
		},
		{
			name: "Negative totals",
			scenarios: []summary.Scenario{
				scenarioWithTotal("a", 0),
				scenarioWithTotal("b", -5),
			},
			expectedKey: "b",
			expectOK:    true,
		},
		{
			name:      "Empty list",
			scenarios: nil,
			expectOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := summary.Cheapest(tt.scenarios)
			if ok != tt.expectOK {
				t.Fatalf("Cheapest() ok = %v, expected %v", ok, tt.expectOK)
			}
			if ok && got.Key != tt.expectedKey {
				t.Errorf("Cheapest() = %s, expected %s", got.Key, tt.expectedKey)
			}
		})
	}
}

func TestScenariosBasic(t *testing.T) {
	result, err := commute.Calculate(commute.DefaultInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	scenarios := summary.Scenarios(result)
	expectedKeys := []string{summary.KeyDrivingOnly, summary.KeyTransitOnly, summary.KeyHybrid}
	if len(scenarios) != len(expectedKeys) {
		t.Fatalf("Scenarios() returned %d scenarios, expected %d", len(scenarios), len(expectedKeys))
	}
	for i, key := range expectedKeys {
		if scenarios[i].Key != key {
			t.Errorf("scenario %d = %s, expected %s", i, scenarios[i].Key, key)
		}
	}
}

func TestScenariosExtended(t *testing.T) {
	result, err := commute.Calculate(testutil.ExtendedInputs(1, 6))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	scenarios := summary.Scenarios(result)
	expectedKeys := []string{
		summary.KeyDrivingOnly,
		summary.KeyTransitOnly,
		summary.KeyPrepaidDaily,
		summary.KeyHybrid,
		summary.KeyHybridPrepaid,
	}
	if len(scenarios) != len(expectedKeys) {
		t.Fatalf("Scenarios() returned %d scenarios, expected %d", len(scenarios), len(expectedKeys))
	}
	for i, key := range expectedKeys {
		if scenarios[i].Key != key {
			t.Errorf("scenario %d = %s, expected %s", i, scenarios[i].Key, key)
		}
	}

	prepaid := testutil.FindScenario(scenarios, summary.KeyPrepaidDaily)
	if prepaid == nil || !testutil.AlmostEqual(prepaid.Cost.TotalCost, 1035) {
		t.Errorf("prepaid scenario = %+v, expected total 1035.00", prepaid)
	}
}

func TestChartData(t *testing.T) {
	result, err := commute.Calculate(commute.DefaultInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	points := summary.ChartData(summary.Scenarios(result))
	expected := []summary.ChartPoint{
		{Name: "Driving Only", FuelMaint: 1969, ParkingTolls: 600, TransitNet: 0},
		{Name: "DART Annual Pass", FuelMaint: 0, ParkingTolls: 0, TransitNet: 720},
		{Name: "Hybrid (Pass + Driving)", FuelMaint: 0, ParkingTolls: 600, TransitNet: 720},
	}
	if len(points) != len(expected) {
		t.Fatalf("ChartData() returned %d points, expected %d", len(points), len(expected))
	}
	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("point %d = %+v, expected %+v", i, points[i], expected[i])
		}
	}
}

func TestRecommend(t *testing.T) {
	t.Run("Transit cheaper with defaults", func(t *testing.T) {
		result, err := commute.Calculate(commute.DefaultInputs())
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}

		rec := summary.Recommend(result)
		if rec.Headline != "Switch to DART" || !rec.TransitCheaper {
			t.Errorf("Headline = %q (transitCheaper=%v), expected Switch to DART", rec.Headline, rec.TransitCheaper)
		}
		if !testutil.AlmostEqual(rec.AnnualSavings, 1848.80) {
			t.Errorf("AnnualSavings = %.2f, expected 1848.80", rec.AnnualSavings)
		}
		// 1848.80 of 2568.80
		if !testutil.AlmostEqual(rec.SavingsPercent, 71.97) {
			t.Errorf("SavingsPercent = %.2f, expected 71.97", rec.SavingsPercent)
		}
		if !rec.HybridBeatsDriving || !testutil.AlmostEqual(rec.HybridSavings, 1248.80) {
			t.Errorf("hybrid = %v / %.2f, expected true / 1248.80", rec.HybridBeatsDriving, rec.HybridSavings)
		}
		if rec.Cheapest != "DART Annual Pass" || !testutil.AlmostEqual(rec.CheapestTotal, 720) {
			t.Errorf("Cheapest = %s %.2f, expected DART Annual Pass 720.00", rec.Cheapest, rec.CheapestTotal)
		}
		if rec.TicketSavings != nil {
			t.Error("expected no ticket savings without a daily ticket price")
		}
	})

	t.Run("Driving cheaper for a short commute", func(t *testing.T) {
		in := commute.DefaultInputs()
		in.OneWayDistance = 2
		in.MonthlyParking = 0

		result, err := commute.Calculate(in)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}

		rec := summary.Recommend(result)
		if rec.Headline != "Driving is Cheaper" || rec.TransitCheaper {
			t.Errorf("Headline = %q, expected Driving is Cheaper", rec.Headline)
		}
		if rec.AnnualSavings >= 0 {
			t.Errorf("AnnualSavings = %.2f, expected negative", rec.AnnualSavings)
		}
		if rec.Cheapest != "Driving Only" {
			t.Errorf("Cheapest = %s, expected Driving Only", rec.Cheapest)
		}
	})

	t.Run("Ticket savings against the pass", func(t *testing.T) {
		in := commute.DefaultInputs()
		in.DailyTicketPrice = commute.Float64Ptr(6)

		result, err := commute.Calculate(in)
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}

		rec := summary.Recommend(result)
		if rec.TicketSavings == nil || !testutil.AlmostEqual(*rec.TicketSavings, -315) {
			t.Errorf("TicketSavings = %v, expected -315.00", rec.TicketSavings)
		}
	})
}

func TestBuild(t *testing.T) {
	result, err := commute.Calculate(testutil.ExtendedInputs(7, 3))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	report := summary.Build(zap.NewNop(), result)
	if report.Variant != commute.VariantExtended {
		t.Errorf("Variant = %s, expected extended", report.Variant)
	}
	if report.PeriodLabel != "July - December (6 months)" {
		t.Errorf("PeriodLabel = %q", report.PeriodLabel)
	}
	if len(report.Scenarios) != 5 || len(report.Chart) != 5 {
		t.Fatalf("expected 5 scenarios and chart points, got %d/%d", len(report.Scenarios), len(report.Chart))
	}
	if report.Cheapest == nil {
		t.Fatal("expected a cheapest scenario")
	}
	// 115 days at $3 less 25% is cheaper than half a $960 pass less 25%.
	if report.Cheapest.Key != summary.KeyPrepaidDaily {
		t.Errorf("Cheapest = %s, expected %s", report.Cheapest.Key, summary.KeyPrepaidDaily)
	}
	if report.Recommendation.Cheapest != report.Cheapest.Name {
		t.Errorf("recommendation cheapest %s disagrees with report cheapest %s",
			report.Recommendation.Cheapest, report.Cheapest.Name)
	}
}

func TestBuildNilLogger(t *testing.T) {
	result, err := commute.Calculate(commute.DefaultInputs())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	report := summary.Build(nil, result)
	if report.Variant != commute.VariantBasic {
		t.Errorf("Variant = %s, expected basic", report.Variant)
	}
}
