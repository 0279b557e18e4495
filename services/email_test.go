package services

import (
	"errors"
	"io"
	"net/mail"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/tools/mailer"
)

type recordingMailer struct {
	sent []*mailer.Message
	err  error
}

func (m *recordingMailer) Send(message *mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, message)
	return nil
}

func TestBuildInvoiceEmail(t *testing.T) {
	data := exportDataFixture()
	from := mail.Address{Name: BusinessName, Address: BusinessEmail}
	pdf := []byte("%PDF-1.7 fake")

	msg := BuildInvoiceEmail(data, from, pdf)

	if msg.Subject != "Invoice #4821" {
		t.Errorf("Subject = %q, want %q", msg.Subject, "Invoice #4821")
	}
	if len(msg.To) != 1 || msg.To[0].Address != "jane@example.com" {
		t.Errorf("To = %v, want the customer address", msg.To)
	}
	if msg.From.Address != BusinessEmail {
		t.Errorf("From = %q, want %q", msg.From.Address, BusinessEmail)
	}
	if !strings.Contains(msg.Text, "attached invoice") {
		t.Errorf("Text = %q, want a body mentioning the attachment", msg.Text)
	}

	attachment, ok := msg.Attachments["Invoice_4821.pdf"]
	if !ok {
		t.Fatalf("expected attachment Invoice_4821.pdf, got %v", msg.Attachments)
	}
	content, err := io.ReadAll(attachment)
	if err != nil {
		t.Fatalf("read attachment: %v", err)
	}
	if string(content) != string(pdf) {
		t.Error("attachment content does not match the PDF bytes")
	}
}

func TestSendInvoiceEmail(t *testing.T) {
	data := exportDataFixture()
	from := mail.Address{Address: BusinessEmail}

	m := &recordingMailer{}
	if err := SendInvoiceEmail(m, data, from, []byte("pdf")); err != nil {
		t.Fatalf("SendInvoiceEmail() error = %v", err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(m.sent))
	}

	failing := &recordingMailer{err: errors.New("smtp down")}
	if err := SendInvoiceEmail(failing, data, from, []byte("pdf")); err == nil {
		t.Error("expected error when the mail client fails")
	}
}
