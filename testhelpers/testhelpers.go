// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestInvoice creates a draft invoice record and returns it.
func CreateTestInvoice(t *testing.T, app *pocketbase.PocketBase, invoiceNumber int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		t.Fatalf("failed to find invoices collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("invoice_number", invoiceNumber)
	record.Set("issue_date", "2025-06-14")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test invoice: %v", err)
	}

	return record
}

// SetTestCustomer fills a valid customer block on an invoice record.
func SetTestCustomer(t *testing.T, app *pocketbase.PocketBase, invoice *core.Record) {
	t.Helper()

	invoice.Set("customer_name", "Jane Smith")
	invoice.Set("email", "jane@example.com")
	invoice.Set("phone", "0821234567")
	invoice.Set("address", "12 Main Road, Cape Town")

	if err := app.Save(invoice); err != nil {
		t.Fatalf("failed to save customer details: %v", err)
	}
}

// CreateTestWindowItem creates a fully priced window item on an invoice.
func CreateTestWindowItem(t *testing.T, app *pocketbase.PocketBase, invoiceID string, sortOrder int, widthMM, heightMM, unitPrice, quantity float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("window_items")
	if err != nil {
		t.Fatalf("failed to find window_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("invoice", invoiceID)
	record.Set("sort_order", sortOrder)
	record.Set("width_mm", widthMM)
	record.Set("height_mm", heightMM)
	record.Set("thickness_mm", 6)
	record.Set("unit_price", unitPrice)
	record.Set("quantity", quantity)
	record.Set("frame_price", 250)
	record.Set("glass_type", "Tempered")
	record.Set("frame_material", "Aluminum")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test window item: %v", err)
	}

	return record
}

// CreateTestEmptyWindowItem creates a window item with no fields entered yet.
func CreateTestEmptyWindowItem(t *testing.T, app *pocketbase.PocketBase, invoiceID string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("window_items")
	if err != nil {
		t.Fatalf("failed to find window_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("invoice", invoiceID)
	record.Set("sort_order", sortOrder)
	record.Set("glass_type", "Tempered")
	record.Set("frame_material", "Aluminum")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save empty window item: %v", err)
	}

	return record
}

// CreateTestAdditionalCost creates an additional cost record on an invoice.
func CreateTestAdditionalCost(t *testing.T, app *pocketbase.PocketBase, invoiceID string, sortOrder int, description string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("additional_costs")
	if err != nil {
		t.Fatalf("failed to find additional_costs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("invoice", invoiceID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("amount", amount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test additional cost: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
