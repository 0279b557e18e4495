package handlers

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NelRohland/Glassnood/testhelpers"
)

func TestHandleInvoiceCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleInvoiceCreate(app)

	origRand := invoiceRand
	origNow := timeNow
	invoiceRand = rand.New(rand.NewSource(42))
	timeNow = func() time.Time { return time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC) }
	defer func() {
		invoiceRand = origRand
		timeNow = origNow
	}()

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	redirect := rec.Header().Get("HX-Redirect")
	if !strings.HasPrefix(redirect, "/invoices/") || !strings.HasSuffix(redirect, "/windows") {
		t.Errorf("HX-Redirect = %q, want /invoices/{id}/windows", redirect)
	}

	invoicesCol, _ := app.FindCollectionByNameOrId("invoices")
	invoices, err := app.FindAllRecords(invoicesCol)
	if err != nil || len(invoices) != 1 {
		t.Fatalf("expected 1 invoice in database, got %d (err=%v)", len(invoices), err)
	}

	number := invoices[0].GetInt("invoice_number")
	if number < 1000 || number > 9999 {
		t.Errorf("invoice_number = %d, want a 4-digit number", number)
	}
	if invoices[0].GetString("issue_date") != "2025-06-14" {
		t.Errorf("issue_date = %q, want %q", invoices[0].GetString("issue_date"), "2025-06-14")
	}
}

func TestHandleInvoiceCreate_RegularRedirect(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleInvoiceCreate(app)

	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/invoices/") || !strings.HasSuffix(loc, "/windows") {
		t.Errorf("Location = %q, want /invoices/{id}/windows", loc)
	}
}
