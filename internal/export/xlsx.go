// Package export renders expense lists as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"expensetracker/internal/models"
)

const (
	// ContentType is the MIME type of an XLSX workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// FileName is the suggested download name.
	FileName = "expenses.xlsx"

	ExpensesSheet = "Expenses"
	SummarySheet  = "Summary"
)

var (
	expenseHeaders = []string{"ID", "Date", "Category", "Amount", "Description", "Created At"}
	summaryHeaders = []string{"Category", "Count", "Total"}
)

// WriteXLSX writes a workbook with one row per expense, in the given order,
// and a summary sheet with per-category totals.
func WriteXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExpensesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeExpenses(f, expenses); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummary(f, models.SummarizeByCategory(expenses)); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeExpenses(f *excelize.File, expenses []models.Expense) error {
	if err := setRow(f, ExpensesSheet, 1, toRow(expenseHeaders)); err != nil {
		return err
	}

	for i, e := range expenses {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		row := []interface{}{
			e.ID,
			e.Date.String(),
			string(e.Category),
			e.Amount,
			description,
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := setRow(f, ExpensesSheet, i+2, row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(ExpensesSheet, "A", "A", 8)
	_ = f.SetColWidth(ExpensesSheet, "B", "C", 14)
	_ = f.SetColWidth(ExpensesSheet, "D", "D", 12)
	_ = f.SetColWidth(ExpensesSheet, "E", "E", 30)
	_ = f.SetColWidth(ExpensesSheet, "F", "F", 22)
	return nil
}

func writeSummary(f *excelize.File, summary models.Summary) error {
	if err := setRow(f, SummarySheet, 1, toRow(summaryHeaders)); err != nil {
		return err
	}

	row := 2
	count := 0
	for _, ct := range summary.Categories {
		if err := setRow(f, SummarySheet, row, []interface{}{string(ct.Category), ct.Count, ct.Total}); err != nil {
			return err
		}
		count += ct.Count
		row++
	}

	if err := setRow(f, SummarySheet, row, []interface{}{"Total", count, summary.Total}); err != nil {
		return err
	}

	_ = f.SetColWidth(SummarySheet, "A", "A", 16)
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
