package handlers

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
)

// invoiceRand draws invoice numbers. Package-level so tests can seed it.
var invoiceRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// timeNow stamps new invoices. Package-level so tests can freeze it.
var timeNow = time.Now

// HandleInvoiceCreate creates a new draft invoice with a random number and
// today's date, then sends the user to its windows screen.
func HandleInvoiceCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoicesCol, err := app.FindCollectionByNameOrId("invoices")
		if err != nil {
			log.Printf("invoice_create: could not find invoices collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(invoicesCol)
		record.Set("invoice_number", services.GenerateInvoiceNumber(invoiceRand))
		record.Set("issue_date", timeNow().Format("2006-01-02"))

		if err := app.Save(record); err != nil {
			log.Printf("invoice_create: could not save invoice: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		target := fmt.Sprintf("/invoices/%s/windows", record.Id)
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", target)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, target)
	}
}
