package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateInvoicePDF renders an invoice document using maroto/v2 and
// returns the raw PDF bytes.
func GenerateInvoicePDF(data *InvoiceExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addInvoiceBanner(m, data)
	addCustomerBlock(m, data)
	addWindowTable(m, data)
	addSummaryTable(m, data)
	addAdditionalCostList(m, data)
	addBankingDetails(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addInvoiceBanner adds the yellow company banner with the invoice number
// and issue date, followed by the document title.
func addInvoiceBanner(m core.Maroto, data *InvoiceExportData) {
	bannerBg := &props.Color{Red: 255, Green: 215, Blue: 0}
	bannerCell := &props.Cell{BackgroundColor: bannerBg}

	m.AddRows(
		row.New(12).Add(
			col.New(6).Add(
				text.New(data.BusinessName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Top:   2,
				}),
			).WithStyle(bannerCell),
			col.New(6).Add(
				text.New(fmt.Sprintf("Invoice #: %d", data.InvoiceNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
					Top:   1,
				}),
				text.New(fmt.Sprintf("Date: %s", data.IssueDate), props.Text{
					Size:  9,
					Align: align.Right,
					Top:   6,
				}),
			).WithStyle(bannerCell),
		),
	)

	m.AddRows(row.New(4))

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("Invoice", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 51, Green: 51, Blue: 51},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addCustomerBlock adds the customer information section.
func addCustomerBlock(m core.Maroto, data *InvoiceExportData) {
	sectionLabel := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	fieldLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	fieldValue := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Customer Information", sectionLabel)),
		),
	)

	fields := []struct{ label, value string }{
		{"Name", data.Customer.Name},
		{"Email", data.Customer.Email},
		{"Phone", data.Customer.Phone},
		{"Address", data.Customer.Address},
		{"Description", data.Customer.Description},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(f.label, fieldLabel)),
				col.New(10).Add(text.New(f.value, fieldValue)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addWindowTable adds the window details table.
func addWindowTable(m core.Maroto, data *InvoiceExportData) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Window Details", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Width", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Height", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Thick.", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Glass Type", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Frame", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, w := range data.Windows {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", w.Index), bodyText)),
			col.New(2).Add(text.New(formatMM(w.WidthMM), bodyText)),
			col.New(2).Add(text.New(formatMM(w.HeightMM), bodyText)),
			col.New(1).Add(text.New(formatMM(w.ThicknessMM), bodyText)),
			col.New(2).Add(text.New(w.GlassType, bodyText)),
			col.New(1).Add(text.New(w.FrameMaterial, bodyText)),
			col.New(1).Add(text.New(formatQty(w.Quantity), bodyText)),
			col.New(2).Add(text.New(FormatRand(w.LineCost), bodyTextRight)),
		}

		if cellStyle != nil {
			for i, c := range cols {
				cols[i] = c.WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(3))
}

// addSummaryTable adds the right-aligned totals summary.
func addSummaryTable(m core.Maroto, data *InvoiceExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	summaryRows := []struct{ label, value string }{
		{"Subtotal", FormatRand(data.Totals.Subtotal)},
		{"Labor Charges", FormatRand(data.Totals.LaborCharges)},
		{"Additional Costs", FormatRand(data.Totals.AdditionalTotal)},
		{"Discount", "-" + FormatRand(data.Totals.Discount)},
	}

	for _, sr := range summaryRows {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(sr.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(sr.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	totalBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	totalCell := &props.Cell{BackgroundColor: totalBg}
	totalLabel := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total", totalLabel)).WithStyle(totalCell),
			col.New(3).Add(text.New(FormatRand(data.Totals.GrandTotal), totalLabel)).WithStyle(totalCell),
		),
	)

	m.AddRows(row.New(3))
}

// addAdditionalCostList adds the itemised additional cost section if any
// costs were entered.
func addAdditionalCostList(m core.Maroto, data *InvoiceExportData) {
	if len(data.AdditionalCosts) == 0 {
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Additional Cost Details", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	itemStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	for _, c := range data.AdditionalCosts {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(
					fmt.Sprintf("• %s: %s", c.Description, FormatRand(c.Amount)), itemStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addBankingDetails adds the static banking details block.
func addBankingDetails(m core.Maroto, data *InvoiceExportData) {
	fieldLabel := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	fieldValue := props.Text{
		Size:  8,
		Align: align.Left,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Banking Details", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)

	bankRows := []struct{ label, value string }{
		{"Account Name", data.Banking.AccountName},
		{"Account Number", data.Banking.AccountNumber},
		{"Bank", data.Banking.BankName},
		{"Branch Code", data.Banking.BranchCode},
	}

	for _, br := range bankRows {
		if br.value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(br.label, fieldLabel)),
				col.New(9).Add(text.New(br.value, fieldValue)),
			),
		)
	}
}
