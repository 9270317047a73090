package commute

import (
	"github.com/iwvelando/commute-calculator/pkg/constants"
	"github.com/iwvelando/commute-calculator/pkg/mathutil"
)

// calculator binds the inputs and schedule of one comparison to the three
// cost-kind calculators.
type calculator struct {
	in    Inputs
	sched schedule
}

// driving prices a number of driven days. Parking is a fixed monthly cost and
// is charged for the whole period when includeFixedParking is set, however
// few days are driven.
func (c calculator) driving(days int, includeFixedParking bool) CostBreakdown {
	totalMiles := float64(days) * c.in.OneWayDistance * constants.RoundTripLegs
	fuel := totalMiles / c.in.MPG * c.in.GasPrice
	tolls := float64(days) * c.in.TollsPerDay
	maintenance := totalMiles * c.in.MaintenancePerMile

	parking := 0.0
	if includeFixedParking {
		parking = c.in.MonthlyParking * float64(c.sched.monthsInPeriod)
	}

	return CostBreakdown{
		TotalCost: fuel + tolls + maintenance + parking,
		Breakdown: Breakdown{
			Fuel:        fuel,
			Parking:     parking,
			Tolls:       tolls,
			Maintenance: maintenance,
		},
		CommuteDays: days,
	}
}

// annualPass prices the transit pass for the period. The pass is a sunk cost:
// its price does not depend on how many days it is ridden.
func (c calculator) annualPass() CostBreakdown {
	gross := c.in.AnnualPassPrice * c.sched.periodRatio
	savings := c.taxSavings(gross)

	return CostBreakdown{
		TotalCost: gross - savings,
		Breakdown: Breakdown{
			PassCost:   gross,
			TaxSavings: savings,
		},
		CommuteDays: c.sched.actualCommuteDays,
	}
}

// prepaidDaily prices pay-per-ride tickets, linear in the days ridden.
func (c calculator) prepaidDaily(days int) CostBreakdown {
	price := 0.0
	if c.in.DailyTicketPrice != nil {
		price = *c.in.DailyTicketPrice
	}
	gross := float64(days) * price
	savings := c.taxSavings(gross)

	return CostBreakdown{
		TotalCost: gross - savings,
		Breakdown: Breakdown{
			TicketCost: gross,
			TaxSavings: savings,
		},
		CommuteDays: days,
	}
}

func (c calculator) taxSavings(gross float64) float64 {
	if !c.in.UsePreTaxBenefit {
		return 0
	}
	return mathutil.ApplyPercentage(gross, c.in.TaxRate)
}

// combine adds a driving component and a transit component into one hybrid
// scenario covering commuteDays.
func combine(drive, transit CostBreakdown, commuteDays int) CostBreakdown {
	return CostBreakdown{
		TotalCost: drive.TotalCost + transit.TotalCost,
		Breakdown: Breakdown{
			Fuel:        drive.Breakdown.Fuel,
			Parking:     drive.Breakdown.Parking,
			Tolls:       drive.Breakdown.Tolls,
			Maintenance: drive.Breakdown.Maintenance,
			PassCost:    transit.Breakdown.PassCost,
			TicketCost:  transit.Breakdown.TicketCost,
			TaxSavings:  transit.Breakdown.TaxSavings,
		},
		CommuteDays: commuteDays,
	}
}
