package config

import (
	"fmt"

	"github.com/iwvelando/commute-calculator/pkg/constants"
	"github.com/iwvelando/commute-calculator/pkg/mathutil"
)

// Sanitize clamps the inputs a form would never let through: days in
// office to [1, 7] and hybrid drive days to [0, daysInOffice]. It returns a
// note for every value it changed.
func (c *Configuration) Sanitize() []string {
	var notes []string
	in := &c.Inputs

	if in.DaysInOffice < constants.MinDaysInOffice {
		notes = append(notes, fmt.Sprintf("daysInOffice %d raised to %d", in.DaysInOffice, constants.MinDaysInOffice))
		in.DaysInOffice = constants.MinDaysInOffice
	} else if in.DaysInOffice > constants.MaxDaysInOffice {
		notes = append(notes, fmt.Sprintf("daysInOffice %d lowered to %d", in.DaysInOffice, constants.MaxDaysInOffice))
		in.DaysInOffice = constants.MaxDaysInOffice
	}

	if in.HybridDriveDays < 0 {
		notes = append(notes, fmt.Sprintf("hybridDriveDays %d raised to 0", in.HybridDriveDays))
		in.HybridDriveDays = 0
	} else if in.HybridDriveDays > in.DaysInOffice {
		notes = append(notes, fmt.Sprintf("hybridDriveDays %d lowered to %d", in.HybridDriveDays, in.DaysInOffice))
		in.HybridDriveDays = in.DaysInOffice
	}

	return notes
}

// ValidateConfiguration reports settings that are legal but probably not
// what the user meant. It never fails; the engine computes them as given.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	in := c.Inputs

	leave := in.Holidays + in.PTODays + in.SickDays
	if leave > constants.WeeksPerYear*constants.WorkDaysPerWeek {
		warnings = append(warnings, fmt.Sprintf(
			"holidays, PTO and sick days total %d, more than the %d work days in a year; commute days will be negative",
			leave, constants.WeeksPerYear*constants.WorkDaysPerWeek))
	}

	if in.UsePreTaxBenefit && mathutil.IsZero(in.TaxRate) {
		warnings = append(warnings, "usePreTaxBenefit is enabled with a 0% tax rate; no tax savings will apply")
	}

	if in.HybridDriveDays > 0 && in.MonthlyParking > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"hybrid scenario drives %d day(s) a week and pays the full monthly parking of %.2f",
			in.HybridDriveDays, in.MonthlyParking))
	}

	if in.DailyTicketPrice != nil && mathutil.IsZero(*in.DailyTicketPrice) {
		warnings = append(warnings, "dailyTicketPrice is 0; prepaid tickets will cost nothing")
	}

	return warnings
}
