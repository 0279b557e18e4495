package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleInvoiceDelete deletes an invoice. Cascade delete takes its window
// items and additional costs with it.
func HandleInvoiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		record, err := app.FindRecordById("invoices", id)
		if err != nil {
			log.Printf("invoice_delete: not found %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("invoice_delete: error deleting %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Invoice deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/invoices")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/invoices")
	}
}
