package services

import (
	"math"
	"testing"
)

func TestCalcWindowArea(t *testing.T) {
	tests := []struct {
		name     string
		widthMM  float64
		heightMM float64
		expect   float64
	}{
		{"one square metre", 1000, 1000, 1},
		{"standard window", 1200, 1000, 1.2},
		{"small pane", 500, 400, 0.2},
		{"zero width", 0, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcWindowArea(tt.widthMM, tt.heightMM)
			if math.Abs(got-tt.expect) > 0.000001 {
				t.Errorf("CalcWindowArea(%v, %v) = %v, want %v",
					tt.widthMM, tt.heightMM, got, tt.expect)
			}
		})
	}
}

func TestCalcWindowLineCost(t *testing.T) {
	tests := []struct {
		name   string
		window WindowForPricing
		expect float64
	}{
		{
			// 1.2 sqm * 450 * 3 = 1620, frame 250 * 3 = 750
			name:   "glass plus frame",
			window: WindowForPricing{WidthMM: 1200, HeightMM: 1000, PricePerSqm: 450, Quantity: 3, FramePrice: 250},
			expect: 2370,
		},
		{
			name:   "no frame price",
			window: WindowForPricing{WidthMM: 1000, HeightMM: 1000, PricePerSqm: 300, Quantity: 2},
			expect: 600,
		},
		{
			name:   "missing width contributes zero",
			window: WindowForPricing{HeightMM: 1000, PricePerSqm: 450, Quantity: 3, FramePrice: 250},
			expect: 0,
		},
		{
			name:   "missing height contributes zero",
			window: WindowForPricing{WidthMM: 1200, PricePerSqm: 450, Quantity: 3},
			expect: 0,
		},
		{
			name:   "missing unit price contributes zero even with frame price",
			window: WindowForPricing{WidthMM: 1200, HeightMM: 1000, Quantity: 3, FramePrice: 250},
			expect: 0,
		},
		{
			name:   "missing quantity contributes zero",
			window: WindowForPricing{WidthMM: 1200, HeightMM: 1000, PricePerSqm: 450},
			expect: 0,
		},
		{
			name:   "fractional dimensions",
			window: WindowForPricing{WidthMM: 750, HeightMM: 600, PricePerSqm: 500, Quantity: 1},
			expect: 225,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcWindowLineCost(tt.window)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("CalcWindowLineCost(%+v) = %v, want %v", tt.window, got, tt.expect)
			}
		})
	}
}

func TestCalcWindowLineCostNonNegative(t *testing.T) {
	windows := []WindowForPricing{
		{WidthMM: 1, HeightMM: 1, PricePerSqm: 0.01, Quantity: 1},
		{WidthMM: 5000, HeightMM: 3000, PricePerSqm: 999.99, Quantity: 40, FramePrice: 120.5},
		{},
	}
	for _, w := range windows {
		if got := CalcWindowLineCost(w); got < 0 {
			t.Errorf("CalcWindowLineCost(%+v) = %v, want >= 0", w, got)
		}
	}
}

func TestCalcInvoiceTotals(t *testing.T) {
	tests := []struct {
		name        string
		windows     []WindowForPricing
		costAmounts []float64
		labor       float64
		discount    float64
		expect      InvoiceTotals
	}{
		{
			name: "worked example",
			windows: []WindowForPricing{
				{WidthMM: 1200, HeightMM: 1000, PricePerSqm: 450, Quantity: 3, FramePrice: 250},
			},
			costAmounts: []float64{150},
			labor:       200,
			discount:    100,
			expect: InvoiceTotals{
				Subtotal:        2370,
				LaborCharges:    200,
				AdditionalTotal: 150,
				Discount:        100,
				GrandTotal:      2620,
			},
		},
		{
			name: "no additional costs",
			windows: []WindowForPricing{
				{WidthMM: 1000, HeightMM: 1000, PricePerSqm: 100, Quantity: 1},
			},
			expect: InvoiceTotals{Subtotal: 100, GrandTotal: 100},
		},
		{
			name: "incomplete item contributes nothing",
			windows: []WindowForPricing{
				{WidthMM: 1000, HeightMM: 1000, PricePerSqm: 100, Quantity: 2},
				{WidthMM: 800}, // still being filled in
			},
			labor:  50,
			expect: InvoiceTotals{Subtotal: 200, LaborCharges: 50, GrandTotal: 250},
		},
		{
			name:        "discount exceeds everything",
			windows:     []WindowForPricing{{WidthMM: 1000, HeightMM: 1000, PricePerSqm: 100, Quantity: 1}},
			costAmounts: []float64{20},
			discount:    500,
			expect: InvoiceTotals{
				Subtotal:        100,
				AdditionalTotal: 20,
				Discount:        500,
				GrandTotal:      -380,
			},
		},
		{
			name:   "empty invoice",
			expect: InvoiceTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcInvoiceTotals(tt.windows, tt.costAmounts, tt.labor, tt.discount)
			if math.Abs(got.Subtotal-tt.expect.Subtotal) > 0.001 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.expect.Subtotal)
			}
			if math.Abs(got.AdditionalTotal-tt.expect.AdditionalTotal) > 0.001 {
				t.Errorf("AdditionalTotal = %v, want %v", got.AdditionalTotal, tt.expect.AdditionalTotal)
			}
			if math.Abs(got.GrandTotal-tt.expect.GrandTotal) > 0.001 {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.expect.GrandTotal)
			}
			if got.LaborCharges != tt.labor || got.Discount != tt.discount {
				t.Errorf("pass-through fields = (%v, %v), want (%v, %v)",
					got.LaborCharges, got.Discount, tt.labor, tt.discount)
			}
		})
	}
}

// Summing many line items must not compound per-line rounding: the subtotal
// is carried at full precision, not as a sum of 2-decimal display values.
func TestCalcInvoiceTotalsFullPrecision(t *testing.T) {
	var windows []WindowForPricing
	for i := 0; i < 100; i++ {
		// each line costs 0.3333... when rounded per line this would drift
		windows = append(windows, WindowForPricing{WidthMM: 1000, HeightMM: 1000, PricePerSqm: 1.0 / 3.0, Quantity: 1})
	}
	got := CalcInvoiceTotals(windows, nil, 0, 0)
	want := 100.0 / 3.0
	if math.Abs(got.Subtotal-want) > 0.0001 {
		t.Errorf("Subtotal = %v, want %v (full precision)", got.Subtotal, want)
	}
}
