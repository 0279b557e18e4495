package services

import (
	"bytes"
	"fmt"
	"io"
	"net/mail"

	"github.com/pocketbase/pocketbase/tools/mailer"
)

// BuildInvoiceEmail composes the message sent to the customer, with the
// generated PDF attached.
func BuildInvoiceEmail(data *InvoiceExportData, from mail.Address, pdf []byte) *mailer.Message {
	filename := fmt.Sprintf("Invoice_%d.pdf", data.InvoiceNumber)

	return &mailer.Message{
		From:    from,
		To:      []mail.Address{{Name: data.Customer.Name, Address: data.Customer.Email}},
		Subject: fmt.Sprintf("Invoice #%d", data.InvoiceNumber),
		Text:    "Please find the attached invoice.",
		Attachments: map[string]io.Reader{
			filename: bytes.NewReader(pdf),
		},
	}
}

// SendInvoiceEmail sends the invoice to the customer through the given
// mail client. The client is injected so the caller decides where mail
// actually goes (SMTP in production, a recorder in tests).
func SendInvoiceEmail(client mailer.Mailer, data *InvoiceExportData, from mail.Address, pdf []byte) error {
	if err := client.Send(BuildInvoiceEmail(data, from, pdf)); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}
	return nil
}
