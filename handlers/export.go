package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// validateForExport runs the full submission gate for an invoice and maps
// a failure onto an error toast. Returns the export data on success.
func validateForExport(app *pocketbase.PocketBase, e *core.RequestEvent, invoiceID string) (*services.InvoiceExportData, error) {
	invoice, err := app.FindRecordById("invoices", invoiceID)
	if err != nil {
		return nil, ErrorToast(e, http.StatusNotFound, "Invoice not found")
	}

	pricing, err := pricingForInvoice(app, invoiceID)
	if err != nil {
		log.Printf("export: %v", err)
		return nil, ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	if err := services.ValidateForSubmission(pricing, services.CustomerFromRecord(invoice)); err != nil {
		ve, _ := services.AsValidationError(err)
		return nil, ErrorToast(e, http.StatusBadRequest, ve.Message)
	}

	data, err := services.BuildInvoiceExportData(app, invoiceID)
	if err != nil {
		log.Printf("export: failed to build data: %v", err)
		return nil, ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return data, nil
}

// HandleInvoiceExportPDF generates and downloads the invoice as a PDF.
func HandleInvoiceExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := sanitizeFilename(fmt.Sprintf("Invoice_%d.pdf", data.InvoiceNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleInvoiceExportExcel generates and downloads the invoice as an Excel file.
func HandleInvoiceExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		invoiceID := e.Request.PathValue("id")
		if invoiceID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing invoice ID")
		}

		data, err := validateForExport(app, e, invoiceID)
		if err != nil {
			return err
		}

		xlsxBytes, err := services.GenerateInvoiceExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := sanitizeFilename(fmt.Sprintf("Invoice_%d.xlsx", data.InvoiceNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
