package commute

// Calculate compares every commute scenario for the given inputs.
//
// The engine is a calculator, not a validator: out-of-range schedules or
// negative prices flow through mechanically. The one exception is a
// non-positive mpg, which would otherwise turn every driving total infinite
// and is reported as an *InputError.
func Calculate(in Inputs) (ComparisonResult, error) {
	if in.MPG <= 0 {
		return ComparisonResult{}, &InputError{Field: "mpg", Value: in.MPG, Reason: "must be greater than zero"}
	}

	sched := newSchedule(in)
	calc := calculator{in: in, sched: sched}
	commuteDays := sched.actualCommuteDays

	driveDays := roundDays(float64(commuteDays) * hybridDriveRatio(in))
	transitDays := commuteDays - driveDays
	keepParking := in.MonthlyParking > 0
	hybridDrive := calc.driving(driveDays, keepParking)

	result := ComparisonResult{
		DrivingOnly:       calc.driving(commuteDays, true),
		TransitOnly:       calc.annualPass(),
		Hybrid:            combine(hybridDrive, calc.annualPass(), commuteDays),
		ActualCommuteDays: commuteDays,
		HybridDriveDays:   driveDays,
		HybridTransitDays: transitDays,
		Period:            sched.period,
	}

	if in.HasDailyTickets() {
		prepaid := calc.prepaidDaily(commuteDays)
		result.PrepaidDaily = &prepaid
		hybridPrepaid := combine(hybridDrive, calc.prepaidDaily(transitDays), commuteDays)
		result.HybridPrepaid = &hybridPrepaid
	}

	return result, nil
}
