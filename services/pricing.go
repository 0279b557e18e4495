// Package services provides pricing, validation and document generation
// for window invoices.
package services

// WindowForPricing holds the fields of a window line item that take part
// in pricing. Dimensions are in millimetres, the unit price is per square
// metre. Thickness is informational and never priced.
type WindowForPricing struct {
	WidthMM     float64
	HeightMM    float64
	PricePerSqm float64
	Quantity    float64
	FramePrice  float64
}

// CalcWindowArea returns the glass area in square metres.
func CalcWindowArea(widthMM, heightMM float64) float64 {
	return (widthMM / 1000) * (heightMM / 1000)
}

// CalcWindowLineCost computes the cost of one window line item:
// area * price per sqm * quantity, plus frame price per unit * quantity.
//
// This is the lenient preview used for the live running total: if width,
// height, unit price or quantity has not been entered yet, the item
// contributes 0. Submission uses ValidateWindowItems instead, which turns
// the same condition into a hard error.
func CalcWindowLineCost(w WindowForPricing) float64 {
	if w.WidthMM <= 0 || w.HeightMM <= 0 || w.PricePerSqm <= 0 || w.Quantity <= 0 {
		return 0
	}

	glassCost := CalcWindowArea(w.WidthMM, w.HeightMM) * w.PricePerSqm * w.Quantity
	frameCost := w.FramePrice * w.Quantity
	return glassCost + frameCost
}

// InvoiceTotals holds the aggregated amounts of an invoice. All values are
// full precision; rounding happens only when amounts are formatted for
// display or export.
type InvoiceTotals struct {
	Subtotal        float64
	LaborCharges    float64
	AdditionalTotal float64
	Discount        float64
	GrandTotal      float64
}

// CalcInvoiceTotals aggregates window line items, additional cost amounts,
// labor charges and discount into a grand total. Totals are recomputed
// from their inputs on every call; nothing is cached, so a displayed total
// can never drift from the line items it came from.
//
// A discount larger than everything else yields a negative grand total.
// That is reported as-is rather than clamped.
func CalcInvoiceTotals(windows []WindowForPricing, costAmounts []float64, laborCharges, discount float64) InvoiceTotals {
	totals := InvoiceTotals{
		LaborCharges: laborCharges,
		Discount:     discount,
	}

	for _, w := range windows {
		totals.Subtotal += CalcWindowLineCost(w)
	}
	for _, amount := range costAmounts {
		totals.AdditionalTotal += amount
	}

	totals.GrandTotal = totals.Subtotal + totals.LaborCharges + totals.AdditionalTotal - totals.Discount
	return totals
}
