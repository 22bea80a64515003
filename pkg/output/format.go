// Package output provides utilities for formatting and displaying payoff results.
package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/format"
	"github.com/iwvelando/equity-payoff/pkg/loans"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
)

// GeneratedAtLayout renders the export timestamp.
const GeneratedAtLayout = "1/2/2006, 3:04:05 PM"

// ScenarioColumns is the header row of the scenario table in exports.
var ScenarioColumns = []string{
	"Timeline (Months)",
	"Negative Equity",
	"Extra Monthly Payment",
	"Total Monthly Payment",
	"Total Amount Paid",
	"Total Interest Paid",
	"Strategy Note",
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(inputs payoff.LoanInputs, scenarios []payoff.PayoffScenario) {
	fmt.Print(PrettyString(inputs, scenarios))
}

// PrettyString renders the same table as PrettyFormat.
func PrettyString(inputs payoff.LoanInputs, scenarios []payoff.PayoffScenario) string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- Loan summary ---\n")
	fmt.Fprintf(&b, "Remaining balance       | %s\n", format.Currency(inputs.RemainingBalance))
	fmt.Fprintf(&b, "Vehicle value           | %s\n", format.Currency(inputs.VehicleValue))
	fmt.Fprintf(&b, "Current monthly payment | %s\n", format.Currency(inputs.CurrentMonthlyPayment))
	fmt.Fprintf(&b, "Annual interest rate    | %s\n", format.Percentage(inputs.AnnualInterestRate))
	fmt.Fprintf(&b, "Negative equity         | %s\n", format.Currency(inputs.NegativeEquity()))
	fmt.Fprintf(&b, "\n")

	if inputs.NegativeEquity() == 0 {
		fmt.Fprintf(&b, "%s\n", constants.NoNegativeEquityNote)
		return b.String()
	}

	fmt.Fprintf(&b, "--- Payoff scenarios ---\n")
	fmt.Fprintf(&b, "Months | Extra / mo | Total / mo | Total paid | Interest | Strategy\n")
	fmt.Fprintf(&b, "______ | __________ | __________ | __________ | ________ | ________\n")
	for _, s := range scenarios {
		fmt.Fprintf(&b, "%6d | %10s | %10s | %10s | %8s | %s\n",
			s.Timeline,
			format.Currency(s.ExtraMonthlyPayment),
			format.Currency(s.TotalMonthlyPayment),
			format.Currency(s.TotalPaid),
			format.Currency(s.TotalInterestPaid),
			s.Note,
		)
	}
	return b.String()
}

// CurrentLoanSummary describes how the existing loan plays out at its current
// payment over the projected schedule.
func CurrentLoanSummary(schedule []loans.AmortizationEntry) string {
	interest := format.Currency(loans.TotalInterest(schedule))
	if loans.PaidOff(schedule) {
		return fmt.Sprintf("At the current payment the loan is paid off in %d months with %s interest.",
			len(schedule), interest)
	}
	remaining := schedule[len(schedule)-1].RemainingBalance
	return fmt.Sprintf("At the current payment %s is still owed after %d months (%s interest so far).",
		format.Currency(remaining), len(schedule), interest)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(inputs payoff.LoanInputs, scenarios []payoff.PayoffScenario, generatedAt time.Time) {
	fmt.Print(CsvString(inputs, scenarios, generatedAt))
}

// CsvString renders the export: a header block summarizing the inputs, the
// scenario header row, then one row per scenario. Every cell is quoted.
func CsvString(inputs payoff.LoanInputs, scenarios []payoff.PayoffScenario, generatedAt time.Time) string {
	rows := [][]string{
		{"Negative Equity Payment Calculator - Export"},
		{"Generated on:", generatedAt.Format(GeneratedAtLayout)},
		{""},
		{"Input Summary:"},
		{"Remaining Loan Balance:", format.Amount(inputs.RemainingBalance)},
		{"Vehicle Estimated Value:", format.Amount(inputs.VehicleValue)},
		{"Current Monthly Payment:", format.Amount(inputs.CurrentMonthlyPayment)},
		{"Annual Interest Rate:", format.Percentage(inputs.AnnualInterestRate)},
		{""},
		{"Payoff Scenarios:"},
		ScenarioColumns,
	}
	for _, s := range scenarios {
		rows = append(rows, ScenarioRow(s))
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(cell))
		}
	}
	return b.String()
}

// ScenarioRow returns the export cells for one scenario in column order.
func ScenarioRow(s payoff.PayoffScenario) []string {
	return []string{
		strconv.Itoa(s.Timeline),
		format.Amount(s.NegativeEquity),
		format.Amount(s.ExtraMonthlyPayment),
		format.Amount(s.TotalMonthlyPayment),
		format.Amount(s.TotalPaid),
		format.Amount(s.TotalInterestPaid),
		s.Note,
	}
}

// ExportFileName names a download generated at the given time.
func ExportFileName(generatedAt time.Time, extension string) string {
	return fmt.Sprintf("%s-%s.%s", constants.ExportFilePrefix, generatedAt.Format(constants.ExportDateLayout), extension)
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
