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

// HandleDetailsPage renders the customer details screen. Moving on from
// the windows screen requires a complete window list, so the gate runs
// here: an invalid list bounces the user back with the reason.
func HandleDetailsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		if _, err := app.FindRecordById("invoices", invoiceID); err != nil {
			log.Printf("details_page: invoice not found %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		pricing, err := pricingForInvoice(app, invoiceID)
		if err != nil {
			log.Printf("details_page: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if err := services.ValidateWindowItems(pricing); err != nil {
			ve, _ := services.AsValidationError(err)
			SetToast(e, "warning", ve.Message)
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/invoices/"+invoiceID+"/windows")
				return e.String(http.StatusOK, "")
			}
			return e.Redirect(http.StatusFound, "/invoices/"+invoiceID+"/windows")
		}

		data, err := buildDetailsPageData(app, invoiceID, nil)
		if err != nil {
			log.Printf("details_page: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderDetails(e, data)
	}
}

// HandleDetailsSave stores the customer block and charges. Saving is
// lenient: partial details are kept as drafts, the strict checks only run
// when a document is generated or emailed.
func HandleDetailsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		invoice, err := app.FindRecordById("invoices", invoiceID)
		if err != nil {
			log.Printf("details_save: invoice not found %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusNotFound, "Invoice not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		invoice.Set("customer_name", strings.TrimSpace(e.Request.FormValue("customer_name")))
		invoice.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		invoice.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))
		invoice.Set("address", strings.TrimSpace(e.Request.FormValue("address")))
		invoice.Set("description", strings.TrimSpace(e.Request.FormValue("description")))

		// Charges are lenient like the live pricing preview: anything that
		// does not parse as a number is stored as 0.
		for _, field := range []string{"labor_charges", "discount"} {
			val := strings.TrimSpace(e.Request.FormValue(field))
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				f = 0
			}
			invoice.Set(field, f)
		}

		if err := app.Save(invoice); err != nil {
			log.Printf("details_save: could not save invoice %s: %v", invoiceID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Details saved")

		data, err := buildDetailsPageData(app, invoiceID, nil)
		if err != nil {
			log.Printf("details_save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return renderDetails(e, data)
	}
}
