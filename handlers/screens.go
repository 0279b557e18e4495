// Package handlers wires HTTP routes to the invoicing services and templates.
package handlers

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
	"github.com/NelRohland/Glassnood/templates"
)

// numberInput renders a float for a numeric form input. Zero means the
// field has not been entered yet, so it renders as an empty input.
func numberInput(v float64) string {
	if v == 0 {
		return ""
	}
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// buildWindowsPageData assembles the windows screen model for an invoice:
// every window with its computed line cost plus the running grand total.
func buildWindowsPageData(app *pocketbase.PocketBase, invoiceID string) (templates.WindowsPageData, error) {
	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return templates.WindowsPageData{}, fmt.Errorf("invoice not found: %w", err)
	}

	windowRecords, err := services.FindWindowItems(app, invoiceID)
	if err != nil {
		return templates.WindowsPageData{}, fmt.Errorf("could not fetch window items: %w", err)
	}

	costRecords, err := services.FindAdditionalCosts(app, invoiceID)
	if err != nil {
		return templates.WindowsPageData{}, fmt.Errorf("could not fetch additional costs: %w", err)
	}

	var views []templates.WindowItemView
	var pricing []services.WindowForPricing
	for i, rec := range windowRecords {
		w := services.WindowForPricingFromRecord(rec)
		pricing = append(pricing, w)

		views = append(views, templates.WindowItemView{
			ID:            rec.Id,
			Index:         i + 1,
			WidthMM:       numberInput(rec.GetFloat("width_mm")),
			HeightMM:      numberInput(rec.GetFloat("height_mm")),
			ThicknessMM:   numberInput(rec.GetFloat("thickness_mm")),
			UnitPrice:     numberInput(rec.GetFloat("unit_price")),
			Quantity:      numberInput(rec.GetFloat("quantity")),
			FramePrice:    numberInput(rec.GetFloat("frame_price")),
			GlassType:     rec.GetString("glass_type"),
			FrameMaterial: rec.GetString("frame_material"),
			LineCost:      services.FormatRand(services.CalcWindowLineCost(w)),
		})
	}

	var costAmounts []float64
	for _, rec := range costRecords {
		costAmounts = append(costAmounts, rec.GetFloat("amount"))
	}

	totals := services.CalcInvoiceTotals(pricing, costAmounts,
		invoice.GetFloat("labor_charges"), invoice.GetFloat("discount"))

	return templates.WindowsPageData{
		InvoiceID:     invoiceID,
		InvoiceNumber: invoice.GetInt("invoice_number"),
		Windows:       views,
		GlassOptions:  services.GlassTypeOptions,
		FrameOptions:  services.FrameMaterialOptions,
		GrandTotal:    services.FormatRand(totals.GrandTotal),
	}, nil
}

// renderWindows renders the windows screen: the content fragment for HTMX
// requests, the full page otherwise.
func renderWindows(e *core.RequestEvent, data templates.WindowsPageData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.WindowsContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.WindowsPage(data).Render(e.Request.Context(), e.Response)
}

// buildDetailsPageData assembles the customer details screen model.
func buildDetailsPageData(app *pocketbase.PocketBase, invoiceID string, formErrors map[string]string) (templates.DetailsPageData, error) {
	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return templates.DetailsPageData{}, fmt.Errorf("invoice not found: %w", err)
	}

	data, err := services.BuildInvoiceExportData(app, invoiceID)
	if err != nil {
		return templates.DetailsPageData{}, err
	}

	costRecords, err := services.FindAdditionalCosts(app, invoiceID)
	if err != nil {
		return templates.DetailsPageData{}, fmt.Errorf("could not fetch additional costs: %w", err)
	}

	var costs []templates.CostView
	for _, rec := range costRecords {
		costs = append(costs, templates.CostView{
			ID:          rec.Id,
			Description: rec.GetString("description"),
			Amount:      services.FormatRand(rec.GetFloat("amount")),
		})
	}

	if formErrors == nil {
		formErrors = make(map[string]string)
	}

	banking := data.Banking

	return templates.DetailsPageData{
		InvoiceID:       invoiceID,
		InvoiceNumber:   data.InvoiceNumber,
		IssueDate:       data.IssueDate,
		CustomerName:    invoice.GetString("customer_name"),
		Email:           invoice.GetString("email"),
		Phone:           invoice.GetString("phone"),
		Address:         invoice.GetString("address"),
		Description:     invoice.GetString("description"),
		LaborCharges:    numberInput(invoice.GetFloat("labor_charges")),
		Discount:        numberInput(invoice.GetFloat("discount")),
		Costs:           costs,
		Subtotal:        services.FormatRand(data.Totals.Subtotal),
		LaborChargesFmt: services.FormatRand(data.Totals.LaborCharges),
		AdditionalTotal: services.FormatRand(data.Totals.AdditionalTotal),
		DiscountFmt:     services.FormatRand(data.Totals.Discount),
		GrandTotal:      services.FormatRand(data.Totals.GrandTotal),
		Banking: templates.BankingView{
			AccountHolder: banking.AccountName,
			AccountNumber: banking.AccountNumber,
			BankName:      banking.BankName,
			BranchCode:    banking.BranchCode,
		},
		Errors: formErrors,
	}, nil
}

// renderDetails renders the details screen, fragment or full page.
func renderDetails(e *core.RequestEvent, data templates.DetailsPageData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.DetailsContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.DetailsPage(data).Render(e.Request.Context(), e.Response)
}

// pricingForInvoice loads the window items of an invoice as pricing inputs.
func pricingForInvoice(app *pocketbase.PocketBase, invoiceID string) ([]services.WindowForPricing, error) {
	records, err := services.FindWindowItems(app, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch window items: %w", err)
	}
	var pricing []services.WindowForPricing
	for _, rec := range records {
		pricing = append(pricing, services.WindowForPricingFromRecord(rec))
	}
	return pricing, nil
}

// nextSortOrder returns one past the highest sort_order among the records.
func nextSortOrder(records []*core.Record) int {
	max := 0
	for _, rec := range records {
		if so := rec.GetInt("sort_order"); so > max {
			max = so
		}
	}
	return max + 1
}
