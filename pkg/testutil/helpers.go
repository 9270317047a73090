// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/internal/summary"
	"github.com/iwvelando/commute-calculator/pkg/mathutil"
)

// FindScenario finds a scenario by key in the scenarios slice.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(scenarios []summary.Scenario, key string) *summary.Scenario {
	for i := range scenarios {
		if scenarios[i].Key == key {
			return &scenarios[i]
		}
	}
	return nil
}

// ExtendedInputs returns the default inputs with a start month and a daily
// ticket price, i.e. inputs producing every scenario.
func ExtendedInputs(startMonth int, dailyTicket float64) commute.Inputs {
	in := commute.DefaultInputs()
	in.StartMonth = commute.IntPtr(startMonth)
	in.DailyTicketPrice = commute.Float64Ptr(dailyTicket)
	return in
}

// AlmostEqual compares money amounts to within a tenth of a cent.
func AlmostEqual(a, b float64) bool {
	return mathutil.WithinTolerance(a, b, 0.001)
}
