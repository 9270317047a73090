// Package output provides utilities for formatting and displaying commute comparisons.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/commute-calculator/internal/summary"
	"github.com/iwvelando/commute-calculator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report summary.Report) {
	p := message.NewPrinter(language.English)
	result := report.Result

	_, _ = fmt.Fprintf(w, "--- Commute comparison for %s ---\n", report.PeriodLabel)
	_, _ = p.Fprintf(w, "Commute days: %d (hybrid: %d driven, %d transit)\n\n",
		result.ActualCommuteDays, result.HybridDriveDays, result.HybridTransitDays)

	_, _ = fmt.Fprintf(w, "Scenario | Fuel | Parking | Tolls | Maintenance | Pass | Tickets | Tax Savings | Total | Days\n")
	_, _ = fmt.Fprintf(w, "________ | ____ | _______ | _____ | ___________ | ____ | _______ | ___________ | _____ | ____\n")
	for _, s := range report.Scenarios {
		b := s.Cost.Breakdown
		_, _ = p.Fprintf(w, "%s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | -$%.2f | $%.2f | %d\n",
			s.Name, b.Fuel, b.Parking, b.Tolls, b.Maintenance, b.PassCost, b.TicketCost, b.TaxSavings,
			s.Cost.TotalCost, s.Cost.CommuteDays)
	}

	rec := report.Recommendation
	_, _ = fmt.Fprintf(w, "\nRecommendation: %s (%s difference vs driving)\n",
		rec.Headline, format.WholeCurrency(absolute(rec.AnnualSavings)))
	if rec.HybridBeatsDriving {
		_, _ = fmt.Fprintf(w, "Hybrid saves %s vs driving every day\n", format.WholeCurrency(rec.HybridSavings))
	} else {
		_, _ = fmt.Fprintf(w, "Hybrid costs %s more than driving every day\n", format.WholeCurrency(-rec.HybridSavings))
	}
	if rec.TicketSavings != nil {
		if *rec.TicketSavings > 0 {
			_, _ = fmt.Fprintf(w, "Daily tickets save %s vs the annual pass\n", format.WholeCurrency(*rec.TicketSavings))
		} else {
			_, _ = fmt.Fprintf(w, "The annual pass saves %s vs daily tickets\n", format.WholeCurrency(-*rec.TicketSavings))
		}
	}
	if rec.Cheapest != "" {
		_, _ = fmt.Fprintf(w, "Cheapest option: %s at %s\n", rec.Cheapest, format.Currency(rec.CheapestTotal))
	}
}

// CsvFormat writes one comma-separated row per scenario.
func CsvFormat(w io.Writer, report summary.Report) {
	_, _ = io.WriteString(w, CsvString(report))
}

// CsvString renders the scenario table as CSV.
func CsvString(report summary.Report) string {
	var b strings.Builder
	b.WriteString(`"scenario","fuel","parking","tolls","maintenance","passCost","ticketCost","taxSavings","totalCost","commuteDays"`)
	b.WriteString("\n")
	for _, s := range report.Scenarios {
		c := s.Cost.Breakdown
		fmt.Fprintf(&b, `"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%d"`,
			s.Name, c.Fuel, c.Parking, c.Tolls, c.Maintenance, c.PassCost, c.TicketCost, c.TaxSavings,
			s.Cost.TotalCost, s.Cost.CommuteDays)
		b.WriteString("\n")
	}
	return b.String()
}

// JSONFormat writes the full report as indented JSON.
func JSONFormat(w io.Writer, report summary.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func absolute(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
