package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// ConsoleFormatter writes a plain-text report.
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a console formatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// Write renders one result as a sectioned text report.
func (cf *ConsoleFormatter) Write(w io.Writer, name string, res *domain.Result) error {
	if res == nil {
		_, err := fmt.Fprintln(w, "No result: the inputs do not describe a computable scenario.")
		return err
	}

	header := strings.ToUpper(name)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("=", len(header)))
	fmt.Fprintln(w, res.Summary)
	fmt.Fprintln(w)

	width := 0
	for _, d := range res.Details {
		if len(d.Label) > width {
			width = len(d.Label)
		}
	}
	for _, d := range res.Details {
		fmt.Fprintf(w, "  %-*s  %s\n", width, d.Label, formatDetail(d))
	}

	if len(res.LineItems) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Line items:")
		for _, item := range res.LineItems {
			note := ""
			if item.IsEstimate {
				note = " (est.)"
			}
			fmt.Fprintf(w, "  %-24s %12s  [%s]%s\n", item.Name, FormatCurrency(item.Amount), item.Category, note)
		}
	}

	if len(res.Insights) > 0 {
		fmt.Fprintln(w)
		for _, insight := range res.Insights {
			fmt.Fprintf(w, "  * %s\n", insight)
		}
	}
	return nil
}

// formatDetail renders a detail value by its explicit unit.
func formatDetail(d domain.Detail) string {
	switch d.Unit {
	case domain.UnitUSD:
		return FormatCurrency(d.Value)
	case domain.UnitPercent:
		return FormatPercent(d.Value)
	case domain.UnitMonths:
		return formatMonths(d.Value)
	case domain.UnitYears:
		return d.Value.StringFixed(0) + " yr"
	case domain.UnitText:
		return d.Text
	default:
		return d.Value.String()
	}
}

// WriteSchedule renders an amortization table with yearly subtotal markers.
func (cf *ConsoleFormatter) WriteSchedule(w io.Writer, schedule domain.Schedule) error {
	if len(schedule) == 0 {
		_, err := fmt.Fprintln(w, "No schedule: the inputs do not describe a computable loan.")
		return err
	}
	fmt.Fprintf(w, "%5s  %12s  %12s  %12s  %14s\n", "Month", "Payment", "Interest", "Principal", "Balance")
	for _, row := range schedule {
		fmt.Fprintf(w, "%5d  %12s  %12s  %12s  %14s\n",
			row.MonthIndex,
			FormatCurrency(row.Payment),
			FormatCurrency(row.Interest),
			FormatCurrency(row.Principal),
			FormatCurrency(row.RemainingBalance))
		if row.MonthIndex%12 == 0 {
			fmt.Fprintln(w)
		}
	}
	return nil
}
