package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
)

// HandleWindowsPage renders the windows screen for an invoice.
func HandleWindowsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("windows_page: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}
		return renderWindows(e, data)
	}
}

// HandleWindowAdd appends a blank window to the invoice with default glass
// type and frame material, then re-renders the screen.
func HandleWindowAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		if _, err := app.FindRecordById("invoices", invoiceID); err != nil {
			log.Printf("window_add: invoice not found %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		windowsCol, err := app.FindCollectionByNameOrId("window_items")
		if err != nil {
			log.Printf("window_add: could not find window_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing, err := services.FindWindowItems(app, invoiceID)
		if err != nil {
			existing = nil
		}

		record := core.NewRecord(windowsCol)
		record.Set("invoice", invoiceID)
		record.Set("sort_order", nextSortOrder(existing))
		record.Set("glass_type", services.DefaultGlassType)
		record.Set("frame_material", services.DefaultFrameMaterial)

		if err := app.Save(record); err != nil {
			log.Printf("window_add: could not save window item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("window_add: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderWindows(e, data)
	}
}

// HandleWindowPatch updates individual fields on a window item. Numeric
// values that fail to parse are ignored rather than rejected, matching the
// lenient pricing preview.
func HandleWindowPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if invoiceID == "" || itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing required IDs")
		}

		record, err := app.FindRecordById("window_items", itemID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}
		if record.GetString("invoice") != invoiceID {
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		updated := false
		for key, values := range e.Request.Form {
			if len(values) == 0 {
				continue
			}
			val := values[0]
			switch key {
			case "width_mm", "height_mm", "thickness_mm", "unit_price", "quantity", "frame_price":
				if val == "" {
					record.Set(key, 0)
					updated = true
				} else if f, err := strconv.ParseFloat(val, 64); err == nil {
					record.Set(key, f)
					updated = true
				}
			case "glass_type", "frame_material":
				record.Set(key, val)
				updated = true
			}
		}

		if updated {
			if err := app.Save(record); err != nil {
				log.Printf("window_patch: error saving %s: %v", itemID, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("window_patch: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderWindows(e, data)
	}
}

// HandleWindowDuplicate copies a window item, measurements and pricing
// included, onto the end of the invoice.
func HandleWindowDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if invoiceID == "" || itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing required IDs")
		}

		source, err := app.FindRecordById("window_items", itemID)
		if err != nil {
			log.Printf("window_duplicate: not found %s: %v", itemID, err)
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}
		if source.GetString("invoice") != invoiceID {
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}

		windowsCol, err := app.FindCollectionByNameOrId("window_items")
		if err != nil {
			log.Printf("window_duplicate: could not find window_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing, err := services.FindWindowItems(app, invoiceID)
		if err != nil {
			existing = nil
		}

		dup := core.NewRecord(windowsCol)
		dup.Set("invoice", invoiceID)
		dup.Set("sort_order", nextSortOrder(existing))
		for _, field := range []string{
			"width_mm", "height_mm", "thickness_mm",
			"unit_price", "quantity", "frame_price",
		} {
			dup.Set(field, source.GetFloat(field))
		}
		dup.Set("glass_type", source.GetString("glass_type"))
		dup.Set("frame_material", source.GetString("frame_material"))

		if err := app.Save(dup); err != nil {
			log.Printf("window_duplicate: could not save copy of %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Window duplicated")

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("window_duplicate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderWindows(e, data)
	}
}

// HandleWindowDelete removes one window item from the invoice.
func HandleWindowDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if invoiceID == "" || itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing required IDs")
		}

		record, err := app.FindRecordById("window_items", itemID)
		if err != nil {
			log.Printf("window_delete: not found %s: %v", itemID, err)
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}
		if record.GetString("invoice") != invoiceID {
			return ErrorToast(e, http.StatusNotFound, "Window not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("window_delete: error deleting %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Window removed")

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("window_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderWindows(e, data)
	}
}

// HandleWindowClearAll removes every window from the invoice. The form must
// carry confirm=true; the destructive action never runs on a bare POST.
func HandleWindowClearAll(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		if e.Request.FormValue("confirm") != "true" {
			return ErrorToast(e, http.StatusBadRequest, "Confirmation required to clear all windows")
		}

		records, err := services.FindWindowItems(app, invoiceID)
		if err != nil {
			log.Printf("window_clear: could not fetch window items: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		for _, rec := range records {
			if err := app.Delete(rec); err != nil {
				log.Printf("window_clear: error deleting %s: %v", rec.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		SetToast(e, "success", "All windows removed")

		data, err := buildWindowsPageData(app, invoiceID)
		if err != nil {
			log.Printf("window_clear: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderWindows(e, data)
	}
}

// invoiceTotalsResponse is the JSON body served by HandleWindowTotal.
type invoiceTotalsResponse struct {
	Subtotal        float64 `json:"subtotal"`
	LaborCharges    float64 `json:"labor_charges"`
	AdditionalTotal float64 `json:"additional_total"`
	Discount        float64 `json:"discount"`
	GrandTotal      float64 `json:"grand_total"`
}

// HandleWindowTotal returns the current invoice total as JSON. The totals
// are recomputed from the records on every call, never read from storage.
func HandleWindowTotal(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		invoice, err := app.FindRecordById("invoices", invoiceID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		pricing, err := pricingForInvoice(app, invoiceID)
		if err != nil {
			log.Printf("window_total: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		costRecords, err := services.FindAdditionalCosts(app, invoiceID)
		if err != nil {
			costRecords = nil
		}
		var costAmounts []float64
		for _, rec := range costRecords {
			costAmounts = append(costAmounts, rec.GetFloat("amount"))
		}

		totals := services.CalcInvoiceTotals(pricing, costAmounts,
			invoice.GetFloat("labor_charges"), invoice.GetFloat("discount"))

		return e.JSON(http.StatusOK, invoiceTotalsResponse{
			Subtotal:        totals.Subtotal,
			LaborCharges:    totals.LaborCharges,
			AdditionalTotal: totals.AdditionalTotal,
			Discount:        totals.Discount,
			GrandTotal:      totals.GrandTotal,
		})
	}
}
