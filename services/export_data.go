package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Business identity and banking details printed on every invoice.
// These are fixed for the company the app is built for.
const (
	BusinessName  = "GLASNOOD"
	BusinessEmail = "accounts@glasnood.co.za"
)

// BankingDetails is the static payment block at the bottom of the invoice.
type BankingDetails struct {
	AccountName   string
	AccountNumber string
	BankName      string
	BranchCode    string
}

// StaticBankingDetails returns the company's banking details.
func StaticBankingDetails() BankingDetails {
	return BankingDetails{
		AccountName:   "Glasnood Pty Ltd",
		AccountNumber: "123456789",
		BankName:      "National Bank",
		BranchCode:    "123456",
	}
}

// InvoiceExportData holds everything needed to render an invoice document,
// regardless of output format (PDF, Excel, email body).
type InvoiceExportData struct {
	BusinessName  string
	InvoiceNumber int
	IssueDate     string

	Customer ExportCustomer

	Windows         []ExportWindowRow
	AdditionalCosts []ExportAdditionalCost

	Totals  InvoiceTotals
	Banking BankingDetails
}

// ExportCustomer is the customer block on the invoice document.
type ExportCustomer struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Description string
}

// ExportWindowRow is one row of the window details table, with its
// computed line cost.
type ExportWindowRow struct {
	Index         int
	WidthMM       float64
	HeightMM      float64
	ThicknessMM   float64
	GlassType     string
	FrameMaterial string
	Quantity      float64
	LineCost      float64
}

// ExportAdditionalCost is one ad-hoc named charge.
type ExportAdditionalCost struct {
	Description string
	Amount      float64
}

// WindowForPricingFromRecord maps a window_items record onto the pricing input.
func WindowForPricingFromRecord(rec *core.Record) WindowForPricing {
	return WindowForPricing{
		WidthMM:     rec.GetFloat("width_mm"),
		HeightMM:    rec.GetFloat("height_mm"),
		PricePerSqm: rec.GetFloat("unit_price"),
		Quantity:    rec.GetFloat("quantity"),
		FramePrice:  rec.GetFloat("frame_price"),
	}
}

// CustomerFromRecord maps an invoices record onto the customer block.
func CustomerFromRecord(rec *core.Record) CustomerDetails {
	return CustomerDetails{
		Name:    rec.GetString("customer_name"),
		Email:   rec.GetString("email"),
		Phone:   rec.GetString("phone"),
		Address: rec.GetString("address"),
	}
}

// FindWindowItems returns the window items of an invoice in entry order.
func FindWindowItems(app *pocketbase.PocketBase, invoiceId string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		"window_items",
		"invoice = {:invoiceId}",
		"sort_order",
		0,
		0,
		map[string]any{"invoiceId": invoiceId},
	)
}

// FindAdditionalCosts returns the additional costs of an invoice in entry order.
func FindAdditionalCosts(app *pocketbase.PocketBase, invoiceId string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		"additional_costs",
		"invoice = {:invoiceId}",
		"sort_order",
		0,
		0,
		map[string]any{"invoiceId": invoiceId},
	)
}

// BuildInvoiceExportData assembles the full invoice document model from
// the invoice record and its window items and additional costs. Line
// costs and totals are computed here, on demand; they are never stored.
func BuildInvoiceExportData(app *pocketbase.PocketBase, invoiceId string) (*InvoiceExportData, error) {
	invoice, err := app.FindRecordById("invoices", invoiceId)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}

	windowRecords, err := FindWindowItems(app, invoiceId)
	if err != nil {
		return nil, fmt.Errorf("could not fetch window items: %w", err)
	}

	costRecords, err := FindAdditionalCosts(app, invoiceId)
	if err != nil {
		return nil, fmt.Errorf("could not fetch additional costs: %w", err)
	}

	var rows []ExportWindowRow
	var pricing []WindowForPricing
	for i, rec := range windowRecords {
		w := WindowForPricingFromRecord(rec)
		pricing = append(pricing, w)

		rows = append(rows, ExportWindowRow{
			Index:         i + 1,
			WidthMM:       w.WidthMM,
			HeightMM:      w.HeightMM,
			ThicknessMM:   rec.GetFloat("thickness_mm"),
			GlassType:     rec.GetString("glass_type"),
			FrameMaterial: rec.GetString("frame_material"),
			Quantity:      w.Quantity,
			LineCost:      CalcWindowLineCost(w),
		})
	}

	var costs []ExportAdditionalCost
	var costAmounts []float64
	for _, rec := range costRecords {
		amount := rec.GetFloat("amount")
		costs = append(costs, ExportAdditionalCost{
			Description: rec.GetString("description"),
			Amount:      amount,
		})
		costAmounts = append(costAmounts, amount)
	}

	totals := CalcInvoiceTotals(pricing, costAmounts,
		invoice.GetFloat("labor_charges"), invoice.GetFloat("discount"))

	return &InvoiceExportData{
		BusinessName:  BusinessName,
		InvoiceNumber: invoice.GetInt("invoice_number"),
		IssueDate:     invoice.GetString("issue_date"),
		Customer: ExportCustomer{
			Name:        invoice.GetString("customer_name"),
			Email:       invoice.GetString("email"),
			Phone:       invoice.GetString("phone"),
			Address:     invoice.GetString("address"),
			Description: invoice.GetString("description"),
		},
		Windows:         rows,
		AdditionalCosts: costs,
		Totals:          totals,
		Banking:         StaticBankingDetails(),
	}, nil
}
