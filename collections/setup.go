// Package collections defines the invoice schema and seed data.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the invoices, window_items and
// additional_costs collections exist.
func Setup(app *pocketbase.PocketBase) {
	invoices := ensureCollection(app, "invoices", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "invoice_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "issue_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor_charges", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "window_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "invoice",
			Required:      true,
			CollectionId:  invoices.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		// Numeric fields stay optional: a freshly added window starts empty
		// and is filled in field by field. Zero means "not entered yet".
		c.Fields.Add(&core.NumberField{Name: "width_mm", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height_mm", Required: false})
		c.Fields.Add(&core.NumberField{Name: "thickness_mm", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "frame_price", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "glass_type",
			Required:  true,
			Values:    []string{"Tempered", "Laminated", "Frosted", "Clear"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "frame_material",
			Required:  true,
			Values:    []string{"Aluminum", "Wood", "PVC"},
			MaxSelect: 1,
		})
	})

	ensureCollection(app, "additional_costs", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "invoice",
			Required:      true,
			CollectionId:  invoices.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		// Required would reject a legitimate 0.00 amount; presence is
		// enforced by the add handler instead.
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
