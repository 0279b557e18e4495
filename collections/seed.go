package collections

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type windowDef struct {
	sortOrder     int
	widthMM       float64
	heightMM      float64
	thicknessMM   float64
	unitPrice     float64
	quantity      float64
	framePrice    float64
	glassType     string
	frameMaterial string
}

type costDef struct {
	sortOrder   int
	description string
	amount      float64
}

type invoiceDef struct {
	invoiceNumber int
	customerName  string
	email         string
	phone         string
	address       string
	description   string
	laborCharges  float64
	discount      float64
	windows       []windowDef
	costs         []costDef
}

// Seed populates the collections with one example draft invoice so a
// fresh install has something to look at. It is safe to call on every
// startup because it returns early if any invoices already exist.
func Seed(app *pocketbase.PocketBase) error {
	invoicesCol, err := app.FindCollectionByNameOrId("invoices")
	if err != nil {
		return fmt.Errorf("seed: could not find invoices collection: %w", err)
	}
	existing, err := app.FindAllRecords(invoicesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query invoices: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	def := invoiceDef{
		invoiceNumber: 1001,
		customerName:  "Sample Customer",
		email:         "sample@example.com",
		phone:         "0821234567",
		address:       "12 Main Road, Cape Town",
		description:   "Living room and kitchen windows",
		laborCharges:  200,
		discount:      0,
		windows: []windowDef{
			{sortOrder: 1, widthMM: 1200, heightMM: 1000, thicknessMM: 6, unitPrice: 450, quantity: 3, framePrice: 250, glassType: "Tempered", frameMaterial: "Aluminum"},
			{sortOrder: 2, widthMM: 800, heightMM: 600, thicknessMM: 4, unitPrice: 300, quantity: 1, glassType: "Clear", frameMaterial: "PVC"},
		},
		costs: []costDef{
			{sortOrder: 1, description: "Delivery", amount: 150},
		},
	}

	windowsCol, err := app.FindCollectionByNameOrId("window_items")
	if err != nil {
		return fmt.Errorf("seed: could not find window_items collection: %w", err)
	}
	costsCol, err := app.FindCollectionByNameOrId("additional_costs")
	if err != nil {
		return fmt.Errorf("seed: could not find additional_costs collection: %w", err)
	}

	invoice := core.NewRecord(invoicesCol)
	invoice.Set("invoice_number", def.invoiceNumber)
	invoice.Set("issue_date", time.Now().Format("2006-01-02"))
	invoice.Set("customer_name", def.customerName)
	invoice.Set("email", def.email)
	invoice.Set("phone", def.phone)
	invoice.Set("address", def.address)
	invoice.Set("description", def.description)
	invoice.Set("labor_charges", def.laborCharges)
	invoice.Set("discount", def.discount)

	if err := app.Save(invoice); err != nil {
		return fmt.Errorf("seed: could not save invoice: %w", err)
	}

	for _, w := range def.windows {
		rec := core.NewRecord(windowsCol)
		rec.Set("invoice", invoice.Id)
		rec.Set("sort_order", w.sortOrder)
		rec.Set("width_mm", w.widthMM)
		rec.Set("height_mm", w.heightMM)
		rec.Set("thickness_mm", w.thicknessMM)
		rec.Set("unit_price", w.unitPrice)
		rec.Set("quantity", w.quantity)
		rec.Set("frame_price", w.framePrice)
		rec.Set("glass_type", w.glassType)
		rec.Set("frame_material", w.frameMaterial)

		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save window item %d: %w", w.sortOrder, err)
		}
	}

	for _, c := range def.costs {
		rec := core.NewRecord(costsCol)
		rec.Set("invoice", invoice.Id)
		rec.Set("sort_order", c.sortOrder)
		rec.Set("description", c.description)
		rec.Set("amount", c.amount)

		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save additional cost %d: %w", c.sortOrder, err)
		}
	}

	return nil
}
