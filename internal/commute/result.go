package commute

// Variant distinguishes the plain three-scenario comparison from the
// extended one with proration and prepaid tickets.
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantExtended Variant = "extended"
)

// Breakdown itemizes a scenario's cost. Components a scenario does not
// produce stay zero.
type Breakdown struct {
	Fuel        float64 `json:"fuel"`
	Parking     float64 `json:"parking"`
	Tolls       float64 `json:"tolls"`
	Maintenance float64 `json:"maintenance"`
	PassCost    float64 `json:"passCost"`
	TicketCost  float64 `json:"ticketCost"`
	TaxSavings  float64 `json:"taxSavings"`
}

// Gross returns the sum of all cost components before tax savings.
func (b Breakdown) Gross() float64 {
	return b.Fuel + b.Parking + b.Tolls + b.Maintenance + b.PassCost + b.TicketCost
}

// CostBreakdown is the outcome of a single scenario.
type CostBreakdown struct {
	TotalCost   float64   `json:"totalCost"`
	Breakdown   Breakdown `json:"breakdown"`
	CommuteDays int       `json:"commuteDays"`
}

// Period describes the slice of the year a prorated comparison covers.
type Period struct {
	Label           string  `json:"label"`
	StartMonth      int     `json:"startMonth"`
	MonthsRemaining int     `json:"monthsRemaining"`
	Ratio           float64 `json:"ratio"`
}

// ComparisonResult holds one CostBreakdown per scenario. PrepaidDaily and
// HybridPrepaid are nil unless a daily ticket price was supplied; Period is
// nil unless a start month was supplied.
type ComparisonResult struct {
	DrivingOnly   CostBreakdown  `json:"drivingOnly"`
	TransitOnly   CostBreakdown  `json:"dartOnly"`
	PrepaidDaily  *CostBreakdown `json:"prepaidDaily,omitempty"`
	Hybrid        CostBreakdown  `json:"hybrid"`
	HybridPrepaid *CostBreakdown `json:"hybridPrepaid,omitempty"`

	ActualCommuteDays int `json:"actualCommuteDays"`
	HybridDriveDays   int `json:"hybridDriveDays"`
	HybridTransitDays int `json:"hybridTransitDays"`

	Period *Period `json:"period,omitempty"`
}

// Variant reports which shape of result this is.
func (r ComparisonResult) Variant() Variant {
	if r.Period != nil || r.PrepaidDaily != nil || r.HybridPrepaid != nil {
		return VariantExtended
	}
	return VariantBasic
}

// PeriodLabel returns the human label of the analysis period.
func (r ComparisonResult) PeriodLabel() string {
	if r.Period == nil {
		return fullYearLabel
	}
	return r.Period.Label
}

// MonthsRemaining returns the number of months the comparison covers.
func (r ComparisonResult) MonthsRemaining() int {
	if r.Period == nil {
		return monthsPerYear
	}
	return r.Period.MonthsRemaining
}
