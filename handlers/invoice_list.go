package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
	"github.com/NelRohland/Glassnood/templates"
)

// HandleInvoiceList renders the invoice list page with per-invoice totals.
func HandleInvoiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoicesCol, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_list: could not find invoices collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(invoicesCol, "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("invoice_list: could not query invoices: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.InvoiceListItem
		for _, rec := range records {
			windowRecords, err := services.FindWindowItems(app, rec.Id)
			if err != nil {
				windowRecords = nil
			}
			costRecords, err := services.FindAdditionalCosts(app, rec.Id)
			if err != nil {
				costRecords = nil
			}

			var pricing []services.WindowForPricing
			for _, wr := range windowRecords {
				pricing = append(pricing, services.WindowForPricingFromRecord(wr))
			}
			var costAmounts []float64
			for _, cr := range costRecords {
				costAmounts = append(costAmounts, cr.GetFloat("amount"))
			}

			totals := services.CalcInvoiceTotals(pricing, costAmounts,
				rec.GetFloat("labor_charges"), rec.GetFloat("discount"))

			items = append(items, templates.InvoiceListItem{
				ID:            rec.Id,
				InvoiceNumber: rec.GetInt("invoice_number"),
				IssueDate:     rec.GetString("issue_date"),
				CustomerName:  rec.GetString("customer_name"),
				WindowCount:   len(windowRecords),
				GrandTotal:    services.FormatRand(totals.GrandTotal),
			})
		}

		data := templates.InvoiceListData{
			Items:      items,
			TotalCount: len(records),
		}
		return templates.InvoiceListPage(data).Render(e.Request.Context(), e.Response)
	}
}
