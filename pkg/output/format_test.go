package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/loans"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
)

var fixedTime = time.Date(2025, time.March, 4, 15, 6, 7, 0, time.UTC)

func testInputs() payoff.LoanInputs {
	return payoff.LoanInputs{
		RemainingBalance:      30000,
		VehicleValue:          20800,
		CurrentMonthlyPayment: 763,
		AnnualInterestRate:    6.5,
	}
}

func TestCsvString(t *testing.T) {
	inputs := testInputs()
	scenarios := payoff.CalculateAllScenarios(inputs)

	csv := CsvString(inputs, scenarios, fixedTime)
	lines := strings.Split(csv, "\n")

	expectedHeader := []string{
		`"Negative Equity Payment Calculator - Export"`,
		`"Generated on:","3/4/2025, 3:06:07 PM"`,
		`""`,
		`"Input Summary:"`,
		`"Remaining Loan Balance:","30000.00"`,
		`"Vehicle Estimated Value:","20800.00"`,
		`"Current Monthly Payment:","763.00"`,
		`"Annual Interest Rate:","6.50%"`,
		`""`,
		`"Payoff Scenarios:"`,
		`"Timeline (Months)","Negative Equity","Extra Monthly Payment","Total Monthly Payment","Total Amount Paid","Total Interest Paid","Strategy Note"`,
	}

	if len(lines) != len(expectedHeader)+len(scenarios) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expectedHeader)+len(scenarios), len(lines), csv)
	}
	for i, expected := range expectedHeader {
		if lines[i] != expected {
			t.Errorf("line %d = %s, expected %s", i, lines[i], expected)
		}
	}

	first := lines[len(expectedHeader)]
	if !strings.HasPrefix(first, `"6","9200.00",`) {
		t.Errorf("first scenario row has unexpected prefix: %s", first)
	}
	if !strings.HasSuffix(first, `"`+constants.StrategyAggressive+`"`) {
		t.Errorf("first scenario row should end with strategy note: %s", first)
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, `"24",`) {
		t.Errorf("last scenario row should be the 24 month timeline: %s", last)
	}
}

func TestScenarioRowColumnOrder(t *testing.T) {
	row := ScenarioRow(payoff.PayoffScenario{
		Timeline:            12,
		NegativeEquity:      9200,
		ExtraMonthlyPayment: 793.856,
		TotalMonthlyPayment: 1556.856,
		TotalPaid:           18682.27,
		TotalInterestPaid:   326.27,
		Note:                constants.StrategyModerate,
	})

	expected := []string{"12", "9200.00", "793.86", "1556.86", "18682.27", "326.27", constants.StrategyModerate}
	if len(row) != len(ScenarioColumns) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(ScenarioColumns))
	}
	for i := range expected {
		if row[i] != expected[i] {
			t.Errorf("cell %d = %s, expected %s", i, row[i], expected[i])
		}
	}
}

func TestQuoteEscapesQuotes(t *testing.T) {
	if got := quote(`say "hi"`); got != `"say ""hi"""` {
		t.Errorf("quote() = %s", got)
	}
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName(fixedTime, "csv"); got != "negative-equity-scenarios-2025-03-04.csv" {
		t.Errorf("ExportFileName() = %s", got)
	}
}

func TestPrettyFormat(t *testing.T) {
	inputs := testInputs()
	scenarios := payoff.CalculateAllScenarios(inputs)

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	PrettyFormat(inputs, scenarios)

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	if !strings.Contains(output, "--- Payoff scenarios ---") {
		t.Errorf("PrettyFormat missing scenario header")
	}
	if !strings.Contains(output, "Negative equity         | $9,200") {
		t.Errorf("PrettyFormat missing negative equity summary:\n%s", output)
	}
	if !strings.Contains(output, "Annual interest rate    | 6.50%") {
		t.Errorf("PrettyFormat missing interest rate:\n%s", output)
	}
	for _, note := range []string{constants.StrategyAggressive, constants.StrategyModerate, constants.StrategyConservative} {
		if !strings.Contains(output, note) {
			t.Errorf("PrettyFormat missing note %q", note)
		}
	}
}

func TestPrettyStringNoNegativeEquity(t *testing.T) {
	inputs := payoff.LoanInputs{RemainingBalance: 15000, VehicleValue: 18000, CurrentMonthlyPayment: 350, AnnualInterestRate: 4.5}

	output := PrettyString(inputs, payoff.CalculateAllScenarios(inputs))

	if !strings.Contains(output, constants.NoNegativeEquityNote) {
		t.Errorf("expected no negative equity note:\n%s", output)
	}
	if strings.Contains(output, "--- Payoff scenarios ---") {
		t.Errorf("did not expect scenario table:\n%s", output)
	}
}

func TestCurrentLoanSummary(t *testing.T) {
	tests := []struct {
		name     string
		schedule []loans.AmortizationEntry
		expected string
	}{
		{
			name:     "Paid off",
			schedule: loans.GenerateAmortizationSchedule(1200, 100, 0, 24),
			expected: "At the current payment the loan is paid off in 12 months with $0 interest.",
		},
		{
			name:     "Outstanding at horizon",
			schedule: loans.GenerateAmortizationSchedule(1200, 100, 0, 6),
			expected: "At the current payment $600 is still owed after 6 months ($0 interest so far).",
		},
		{
			name:     "Nothing owed",
			schedule: nil,
			expected: "At the current payment the loan is paid off in 0 months with $0 interest.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentLoanSummary(tt.schedule); got != tt.expected {
				t.Errorf("CurrentLoanSummary() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
