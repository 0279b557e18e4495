package handlers

import (
	"log"
	"net/http"
	"net/mail"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
)

// HandleInvoiceEmail validates the invoice, renders it to PDF and mails it
// to the customer using the app's configured mail client.
func HandleInvoiceEmail(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		data, err := validateForExport(app, e, invoiceID)
		if err != nil {
			return err
		}

		pdfBytes, err := services.GenerateInvoicePDF(data)
		if err != nil {
			log.Printf("invoice_email: failed to generate PDF: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		from := mail.Address{
			Name:    app.Settings().Meta.SenderName,
			Address: app.Settings().Meta.SenderAddress,
		}
		if from.Address == "" {
			from = mail.Address{Name: services.BusinessName, Address: services.BusinessEmail}
		}

		if err := services.SendInvoiceEmail(app.NewMailClient(), data, from, pdfBytes); err != nil {
			log.Printf("invoice_email: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to send email. Please try again.")
		}

		SetToast(e, "success", "Invoice emailed to "+data.Customer.Email)
		return e.String(http.StatusOK, "")
	}
}
