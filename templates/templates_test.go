package templates

import (
	"context"
	"strings"
	"testing"
)

func TestWindowsContent_EscapesAndRenders(t *testing.T) {
	data := WindowsPageData{
		InvoiceID:     "abc123",
		InvoiceNumber: 4821,
		Windows: []WindowItemView{
			{
				ID: "w1", Index: 1,
				WidthMM: "1200", HeightMM: "1000", UnitPrice: "450", Quantity: "3",
				GlassType: "Tempered", FrameMaterial: "Aluminum",
				LineCost: "R 2,370.00",
			},
		},
		GlassOptions: []string{"Tempered", "Clear"},
		FrameOptions: []string{"Aluminum", "PVC"},
		GrandTotal:   "R 2,370.00",
	}

	var sb strings.Builder
	if err := WindowsContent(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	body := sb.String()

	for _, frag := range []string{
		"Invoice #4821",
		"Window 1",
		`value="1200"`,
		`<option value="Tempered" selected>`,
		"R 2,370.00",
		"/invoices/abc123/windows/w1/duplicate",
		`name="confirm" value="true"`,
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("windows content missing %q", frag)
		}
	}
}

func TestDetailsContent_ShowsSummaryAndBanking(t *testing.T) {
	data := DetailsPageData{
		InvoiceID:       "abc123",
		InvoiceNumber:   4821,
		IssueDate:       "2025-06-14",
		CustomerName:    `Jane <script>`,
		Subtotal:        "R 2,370.00",
		LaborChargesFmt: "R 200.00",
		AdditionalTotal: "R 150.00",
		DiscountFmt:     "R 100.00",
		GrandTotal:      "R 2,620.00",
		Banking: BankingView{
			AccountHolder: "Glasnood Pty Ltd",
			AccountNumber: "123456789",
			BankName:      "National Bank",
			BranchCode:    "123456",
		},
		Errors: map[string]string{},
	}

	var sb strings.Builder
	if err := DetailsContent(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	body := sb.String()

	if strings.Contains(body, "Jane <script>") {
		t.Error("customer name was not escaped")
	}
	for _, frag := range []string{
		"Jane &lt;script&gt;",
		"R 2,620.00",
		"-R 100.00",
		"Glasnood Pty Ltd",
		"/invoices/abc123/export/pdf",
		"/invoices/abc123/email",
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("details content missing %q", frag)
		}
	}
}

func TestInvoiceListPage_EmptyState(t *testing.T) {
	var sb strings.Builder
	if err := InvoiceListPage(InvoiceListData{}).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	body := sb.String()

	for _, frag := range []string{
		"<!DOCTYPE html>",
		"GLASNOOD",
		"No invoices yet",
	} {
		if !strings.Contains(body, frag) {
			t.Errorf("invoice list missing %q", frag)
		}
	}
}
