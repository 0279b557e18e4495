package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
)

// HandleCostAdd adds a named additional cost to the invoice. Description
// and amount are both required; a 0.00 amount is allowed.
func HandleCostAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		if _, err := app.FindRecordById("invoices", invoiceID); err != nil {
			log.Printf("cost_add: invoice not found %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		amountRaw := strings.TrimSpace(e.Request.FormValue("amount"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Description is required")
		}
		if amountRaw == "" {
			return ErrorToast(e, http.StatusBadRequest, "Amount is required")
		}
		amount, err := strconv.ParseFloat(amountRaw, 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Amount must be a number")
		}

		costsCol, err := app.FindCollectionByNameOrId("additional_costs")
		if err != nil {
			log.Printf("cost_add: could not find additional_costs collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing, err := services.FindAdditionalCosts(app, invoiceID)
		if err != nil {
			existing = nil
		}

		record := core.NewRecord(costsCol)
		record.Set("invoice", invoiceID)
		record.Set("sort_order", nextSortOrder(existing))
		record.Set("description", description)
		record.Set("amount", amount)

		if err := app.Save(record); err != nil {
			log.Printf("cost_add: could not save cost: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Cost added")

		data, err := buildDetailsPageData(app, invoiceID, nil)
		if err != nil {
			log.Printf("cost_add: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderDetails(e, data)
	}
}

// HandleCostDelete removes one additional cost from the invoice.
func HandleCostDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		costID := e.Request.PathValue("costId")
		if invoiceID == "" || costID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing required IDs")
		}

		record, err := app.FindRecordById("additional_costs", costID)
		if err != nil {
			log.Printf("cost_delete: not found %s: %v", costID, err)
			return ErrorToast(e, http.StatusNotFound, "Cost not found")
		}
		if record.GetString("invoice") != invoiceID {
			return ErrorToast(e, http.StatusNotFound, "Cost not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("cost_delete: error deleting %s: %v", costID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Cost removed")

		data, err := buildDetailsPageData(app, invoiceID, nil)
		if err != nil {
			log.Printf("cost_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderDetails(e, data)
	}
}
