// Package commute computes the annual cost of competing commute strategies:
// driving, a transit annual pass, prepaid daily transit tickets and hybrid
// mixes of driving with either transit product.
//
// Calculate is a pure function. It never mutates its Inputs and keeps no
// state between calls, so callers re-invoke it whenever their inputs change
// and may do so from any number of goroutines.
package commute

// Inputs holds everything a caller supplies for one comparison.
//
// StartMonth and DailyTicketPrice are optional. A non-nil StartMonth prorates
// the analysis to the remainder of the year; a non-nil DailyTicketPrice adds
// the pay-per-ride scenarios. Either one switches the result to the extended
// variant.
type Inputs struct {
	// Schedule
	DaysInOffice int  `json:"daysInOffice" yaml:"daysInOffice" mapstructure:"daysInOffice" validate:"gte=1,lte=7"`
	PTODays      int  `json:"ptoDays" yaml:"ptoDays" mapstructure:"ptoDays" validate:"gte=0"`
	Holidays     int  `json:"holidays" yaml:"holidays" mapstructure:"holidays" validate:"gte=0"`
	SickDays     int  `json:"sickDays" yaml:"sickDays" mapstructure:"sickDays" validate:"gte=0"`
	StartMonth   *int `json:"startMonth,omitempty" yaml:"startMonth,omitempty" mapstructure:"startMonth" validate:"omitempty,gte=1,lte=12"`

	// Driving
	OneWayDistance     float64 `json:"oneWayDistance" yaml:"oneWayDistance" mapstructure:"oneWayDistance" validate:"gte=0"`
	GasPrice           float64 `json:"gasPrice" yaml:"gasPrice" mapstructure:"gasPrice" validate:"gte=0"`
	MPG                float64 `json:"mpg" yaml:"mpg" mapstructure:"mpg" validate:"gt=0"`
	MonthlyParking     float64 `json:"monthlyParking" yaml:"monthlyParking" mapstructure:"monthlyParking" validate:"gte=0"`
	TollsPerDay        float64 `json:"tollsPerDay" yaml:"tollsPerDay" mapstructure:"tollsPerDay" validate:"gte=0"`
	MaintenancePerMile float64 `json:"maintenancePerMile" yaml:"maintenancePerMile" mapstructure:"maintenancePerMile" validate:"gte=0"`

	// Transit
	AnnualPassPrice  float64  `json:"annualPassPrice" yaml:"annualPassPrice" mapstructure:"annualPassPrice" validate:"gte=0"`
	DailyTicketPrice *float64 `json:"dailyTicketPrice,omitempty" yaml:"dailyTicketPrice,omitempty" mapstructure:"dailyTicketPrice" validate:"omitempty,gte=0"`
	UsePreTaxBenefit bool     `json:"usePreTaxBenefit" yaml:"usePreTaxBenefit" mapstructure:"usePreTaxBenefit"`
	TaxRate          float64  `json:"taxRate" yaml:"taxRate" mapstructure:"taxRate" validate:"gte=0,lte=100"`

	// Hybrid: of the weekly office days, how many are driven.
	HybridDriveDays int `json:"hybridDriveDays" yaml:"hybridDriveDays" mapstructure:"hybridDriveDays" validate:"gte=0,ltefield=DaysInOffice"`
}

// DefaultInputs returns the values a fresh calculator form starts with.
func DefaultInputs() Inputs {
	return Inputs{
		DaysInOffice:       5,
		OneWayDistance:     20,
		PTODays:            15,
		Holidays:           10,
		SickDays:           5,
		GasPrice:           3.10,
		MPG:                25,
		MonthlyParking:     50,
		TollsPerDay:        0,
		MaintenancePerMile: 0.09,
		AnnualPassPrice:    960,
		UsePreTaxBenefit:   true,
		TaxRate:            25,
		HybridDriveDays:    0,
	}
}

// Prorated reports whether the analysis covers only the rest of the year.
func (in Inputs) Prorated() bool {
	return in.StartMonth != nil
}

// HasDailyTickets reports whether the pay-per-ride scenarios apply.
func (in Inputs) HasDailyTickets() bool {
	return in.DailyTicketPrice != nil
}

// IntPtr is a convenience for populating optional integer inputs.
func IntPtr(v int) *int {
	return &v
}

// Float64Ptr is a convenience for populating optional money inputs.
func Float64Ptr(v float64) *float64 {
	return &v
}
