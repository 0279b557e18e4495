package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NelRohland/Glassnood/testhelpers"
)

func TestHandleInvoiceList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleInvoiceList(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No invoices yet")
}

func TestHandleInvoiceList_ShowsTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	invoice := testhelpers.CreateTestInvoice(t, app, 4821)
	testhelpers.SetTestCustomer(t, app, invoice)
	// 1.2 m² × 450 × 3 + 250 × 3 = 2370
	testhelpers.CreateTestWindowItem(t, app, invoice.Id, 1, 1200, 1000, 450, 3)
	testhelpers.CreateTestAdditionalCost(t, app, invoice.Id, 1, "Delivery", 150)

	handler := HandleInvoiceList(app)

	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	rec := httptest.NewRecorder()

	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"#4821",
		"Jane Smith",
		"R 2,520.00", // 2370 + 150 delivery
	)
}
