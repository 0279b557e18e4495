package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NelRohland/Glassnood/testhelpers"
)

// The success path depends on the app's configured mail transport, so the
// handler tests cover the validation gate that runs before any send.

func TestHandleInvoiceEmail_BlockedWithoutCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	invoice := testhelpers.CreateTestInvoice(t, app, 4821)
	testhelpers.CreateTestWindowItem(t, app, invoice.Id, 1, 1200, 1000, 450, 3)

	handler := HandleInvoiceEmail(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoice.Id+"/email", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Customer name is required.") {
		t.Errorf("body = %q, want the customer validation message", rec.Body.String())
	}
}

func TestHandleInvoiceEmail_BlockedWithBadEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	invoice := testhelpers.CreateTestInvoice(t, app, 4821)
	testhelpers.SetTestCustomer(t, app, invoice)
	invoice.Set("email", "not-an-address")
	if err := app.Save(invoice); err != nil {
		t.Fatalf("save invoice: %v", err)
	}
	testhelpers.CreateTestWindowItem(t, app, invoice.Id, 1, 1200, 1000, 450, 3)

	handler := HandleInvoiceEmail(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/"+invoice.Id+"/email", nil)
	req.SetPathValue("id", invoice.Id)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Valid email is required.") {
		t.Errorf("body = %q, want the email validation message", rec.Body.String())
	}
}

func TestHandleInvoiceEmail_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleInvoiceEmail(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices/missing/email", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
