package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateInvoiceExcel creates an Excel workbook for an invoice and
// returns the file contents as a byte slice.
func GenerateInvoiceExcel(data *InvoiceExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("Invoice %d", data.InvoiceNumber)
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 14, 14, 12, 14, 14, 8, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", data.BusinessName)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge invoice number: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Invoice #: %d", data.InvoiceNumber))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.IssueDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	if err := f.MergeCell(sheetName, "A4", lastCol+"4"); err != nil {
		return nil, fmt.Errorf("merge customer: %w", err)
	}
	f.SetCellValue(sheetName, "A4", "Customer: "+sanitizeExcelCell(data.Customer.Name))
	f.SetCellStyle(sheetName, "A4", lastCol+"4", subtitleStyle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Width (mm)", "Height (mm)", "Thick. (mm)", "Glass Type", "Frame", "Qty", "Price"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s6", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, w := range data.Windows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, w.Index)
		f.SetCellValue(sheetName, "B"+rowStr, w.WidthMM)
		f.SetCellValue(sheetName, "C"+rowStr, w.HeightMM)
		f.SetCellValue(sheetName, "D"+rowStr, w.ThicknessMM)
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(w.GlassType))
		f.SetCellValue(sheetName, "F"+rowStr, sanitizeExcelCell(w.FrameMaterial))
		f.SetCellValue(sheetName, "G"+rowStr, w.Quantity)
		f.SetCellValue(sheetName, "H"+rowStr, FormatRand(w.LineCost))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)
		row++
	}

	// ── Additional Costs ────────────────────────────────────────────────

	if len(data.AdditionalCosts) > 0 {
		row++
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, "Additional Costs")
		f.SetCellStyle(sheetName, "A"+rowStr, "A"+rowStr, summaryValueStyle)
		row++

		for _, c := range data.AdditionalCosts {
			rowStr = fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(c.Description))
			f.SetCellValue(sheetName, "H"+rowStr, FormatRand(c.Amount))
			row++
		}
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	summaries := []struct{ label, value string }{
		{"Subtotal:", FormatRand(data.Totals.Subtotal)},
		{"Labor Charges:", FormatRand(data.Totals.LaborCharges)},
		{"Additional Costs:", FormatRand(data.Totals.AdditionalTotal)},
		{"Discount:", "-" + FormatRand(data.Totals.Discount)},
		{"Total:", FormatRand(data.Totals.GrandTotal)},
	}

	for _, s := range summaries {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "G"+rowStr, s.label)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "H"+rowStr, s.value)
		f.SetCellStyle(sheetName, "H"+rowStr, "H"+rowStr, summaryValueStyle)
		row++
	}

	// ── Banking Details ─────────────────────────────────────────────────

	row++
	banking := []struct{ label, value string }{
		{"Account Name:", data.Banking.AccountName},
		{"Account Number:", data.Banking.AccountNumber},
		{"Bank:", data.Banking.BankName},
		{"Branch Code:", data.Banking.BranchCode},
	}
	for _, b := range banking {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, b.label)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(b.value))
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
