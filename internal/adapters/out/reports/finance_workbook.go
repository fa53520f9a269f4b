// Package reports renders finance summaries as xlsx workbooks and orders as pdf receipts.
package reports

import (
	"fmt"

	"laundry/internal/core/domain/model/finance"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Summary"
	employeesSheet = "Employees"
)

// FinanceWorkbook renders a finance.Summary as a two sheet xlsx workbook: one row per
// day with totals, and one row per employee.
type FinanceWorkbook struct{}

func NewFinanceWorkbook() FinanceWorkbook {
	return FinanceWorkbook{}
}

func (w FinanceWorkbook) Generate(summary finance.Summary) ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := w.writeDays(file, summary); err != nil {
		return nil, err
	}

	if _, err := file.NewSheet(employeesSheet); err != nil {
		return nil, err
	}
	if err := w.writeEmployees(file, summary); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w FinanceWorkbook) writeDays(file *excelize.File, summary finance.Summary) error {
	var err error
	set := func(cell string, value any) {
		if err == nil {
			err = file.SetCellValue(summarySheet, cell, value)
		}
	}

	set("A1", "Period")
	set("B1", summary.Period.String())
	set("A2", "Rate per load")
	set("B2", money(summary.RatePerLoad))

	headerRow := 4
	headers := []string{"Date", "Orders", "Loads", "Revenue", "Expenses", "Salaries", "Net"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, h)
	}

	row := headerRow
	for _, d := range summary.Days {
		row++
		writeDayRow(set, row, d.Date.Format(finance.DateLayout), d)
	}
	row++
	writeDayRow(set, row, "Total", summary.Totals)
	if err != nil {
		return err
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err = file.SetRowStyle(summarySheet, headerRow, headerRow, bold); err != nil {
		return err
	}
	if err = file.SetRowStyle(summarySheet, row, row, bold); err != nil {
		return err
	}

	return file.SetColWidth(summarySheet, "A", "G", 14)
}

func writeDayRow(set func(string, any), row int, label string, d finance.DailyFinance) {
	set(fmt.Sprintf("A%d", row), label)
	set(fmt.Sprintf("B%d", row), d.Orders)
	set(fmt.Sprintf("C%d", row), d.Loads)
	set(fmt.Sprintf("D%d", row), money(d.Revenue))
	set(fmt.Sprintf("E%d", row), money(d.Expenses))
	set(fmt.Sprintf("F%d", row), money(d.Salaries))
	set(fmt.Sprintf("G%d", row), money(d.Net))
}

func (w FinanceWorkbook) writeEmployees(file *excelize.File, summary finance.Summary) error {
	if err := file.SetSheetRow(employeesSheet, "A1",
		&[]any{"Employee", "Loads", "Earned", "Paid", "Balance"}); err != nil {
		return err
	}

	for i, e := range summary.Employees {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := file.SetSheetRow(employeesSheet, cell,
			&[]any{e.Name, e.Loads, money(e.Earned), money(e.Paid), money(e.Balance)}); err != nil {
			return err
		}
	}

	return file.SetColWidth(employeesSheet, "A", "A", 28)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
