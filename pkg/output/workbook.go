package output

import (
	"fmt"
	"time"

	"github.com/iwvelando/equity-payoff/pkg/mathutil"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the workbook export.
const (
	SummarySheet   = "Summary"
	ScenariosSheet = "Scenarios"
)

// ScheduleColumns is the header row of each schedule sheet.
var ScheduleColumns = []string{"Month", "Payment", "Principal", "Interest", "Remaining Balance"}

// excelize built-in number format 4 is "#,##0.00".
const moneyNumFmt = 4

// ScheduleSheetName names the schedule sheet for a timeline.
func ScheduleSheetName(timeline int) string {
	return fmt.Sprintf("Schedule %s", payoff.SeriesKey(timeline))
}

// WorkbookBytes renders the inputs, scenarios and each scenario's
// amortization schedule as an XLSX workbook. Money cells hold values rounded
// to cents.
func WorkbookBytes(inputs payoff.LoanInputs, scenarios []payoff.PayoffScenario, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	summary := [][]interface{}{
		{"Negative Equity Payment Calculator - Export"},
		{"Generated on:", generatedAt.Format(GeneratedAtLayout)},
		{"Remaining Loan Balance:", mathutil.Round(inputs.RemainingBalance)},
		{"Vehicle Estimated Value:", mathutil.Round(inputs.VehicleValue)},
		{"Current Monthly Payment:", mathutil.Round(inputs.CurrentMonthlyPayment)},
		{"Annual Interest Rate (%):", inputs.AnnualInterestRate},
		{"Negative Equity:", mathutil.Round(inputs.NegativeEquity())},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SummarySheet, "B3", "B7", moneyStyle); err != nil {
		return nil, fmt.Errorf("failed to style summary: %w", err)
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 28); err != nil {
		return nil, fmt.Errorf("failed to size summary columns: %w", err)
	}

	if _, err := f.NewSheet(ScenariosSheet); err != nil {
		return nil, fmt.Errorf("failed to create scenarios sheet: %w", err)
	}
	rows := [][]interface{}{toRow(ScenarioColumns)}
	for _, s := range scenarios {
		rows = append(rows, []interface{}{
			s.Timeline, mathutil.Round(s.NegativeEquity), mathutil.Round(s.ExtraMonthlyPayment),
			mathutil.Round(s.TotalMonthlyPayment), mathutil.Round(s.TotalPaid),
			mathutil.Round(s.TotalInterestPaid), s.Note,
		})
	}
	if err := writeTable(f, ScenariosSheet, rows, len(ScenarioColumns), headerStyle); err != nil {
		return nil, err
	}
	if len(scenarios) > 0 {
		lastCell, _ := excelize.CoordinatesToCellName(6, len(scenarios)+1)
		if err := f.SetCellStyle(ScenariosSheet, "B2", lastCell, moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to style scenarios: %w", err)
		}
	}

	for _, s := range scenarios {
		schedule := s.Schedule(inputs.AnnualInterestRate)
		if len(schedule) == 0 {
			continue
		}
		sheet := ScheduleSheetName(s.Timeline)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		rows := [][]interface{}{toRow(ScheduleColumns)}
		for _, entry := range schedule {
			rows = append(rows, []interface{}{
				entry.Month, mathutil.Round(entry.Payment), mathutil.Round(entry.Principal),
				mathutil.Round(entry.Interest), mathutil.Round(entry.RemainingBalance),
			})
		}
		if err := writeTable(f, sheet, rows, len(ScheduleColumns), headerStyle); err != nil {
			return nil, err
		}
		lastCell, _ := excelize.CoordinatesToCellName(len(ScheduleColumns), len(schedule)+1)
		if err := f.SetCellStyle(sheet, "B2", lastCell, moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to style %s: %w", sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, rows [][]interface{}, columns int, headerStyle int) error {
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	lastColumn, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastColumn, 22); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func toRow(columns []string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	return row
}
