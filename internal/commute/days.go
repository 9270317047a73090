package commute

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/commute-calculator/pkg/constants"
)

const (
	monthsPerYear = constants.MonthsPerYear
	fullYearLabel = "Full Year (January - December)"
)

// schedule is the day accounting shared by every scenario of one comparison.
type schedule struct {
	periodRatio            float64
	monthsInPeriod         int
	totalWorkDaysAvailable float64
	attendanceRatio        float64
	actualCommuteDays      int
	period                 *Period
}

// newSchedule converts leave counts and weekly attendance into the number of
// days the commute actually happens within the analysis period.
func newSchedule(in Inputs) schedule {
	s := schedule{
		periodRatio:    1,
		monthsInPeriod: monthsPerYear,
	}

	if in.StartMonth != nil {
		s.monthsInPeriod = monthsPerYear + 1 - *in.StartMonth
		s.periodRatio = float64(s.monthsInPeriod) / monthsPerYear
		s.period = &Period{
			Label:           periodLabel(*in.StartMonth, s.monthsInPeriod),
			StartMonth:      *in.StartMonth,
			MonthsRemaining: s.monthsInPeriod,
			Ratio:           s.periodRatio,
		}
	}

	workDays := constants.WeeksPerYear*constants.WorkDaysPerWeek - in.Holidays - in.PTODays - in.SickDays
	s.totalWorkDaysAvailable = float64(workDays) * s.periodRatio
	s.attendanceRatio = float64(in.DaysInOffice) / constants.WorkDaysPerWeek
	s.actualCommuteDays = roundDays(s.totalWorkDaysAvailable * s.attendanceRatio)
	return s
}

// hybridDriveRatio is the share of office days that are driven. A zero-day
// week yields zero rather than a NaN.
func hybridDriveRatio(in Inputs) float64 {
	if in.DaysInOffice <= 0 {
		return 0
	}
	return float64(in.HybridDriveDays) / float64(in.DaysInOffice)
}

// roundDays rounds half away from zero.
func roundDays(days float64) int {
	return int(math.Round(days))
}

func periodLabel(startMonth, months int) string {
	if startMonth < constants.MinStartMonth || startMonth > constants.MaxStartMonth {
		return fmt.Sprintf("Month %d onward (%d months)", startMonth, months)
	}
	if startMonth == constants.MinStartMonth {
		return fullYearLabel
	}
	first := time.Month(startMonth).String()
	if startMonth == constants.MaxStartMonth {
		return fmt.Sprintf("%s (1 month)", first)
	}
	return fmt.Sprintf("%s - %s (%d months)", first, time.December.String(), months)
}
