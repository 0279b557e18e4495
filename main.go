package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NelRohland/Glassnood/collections"
	"github.com/NelRohland/Glassnood/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Invoice lifecycle ────────────────────────────────────
		se.Router.GET("/invoices", handlers.HandleInvoiceList(app))
		se.Router.POST("/invoices", handlers.HandleInvoiceCreate(app))
		se.Router.DELETE("/invoices/{id}", handlers.HandleInvoiceDelete(app))

		// ── Windows screen ───────────────────────────────────────
		se.Router.GET("/invoices/{id}/windows", handlers.HandleWindowsPage(app))
		se.Router.POST("/invoices/{id}/windows", handlers.HandleWindowAdd(app))
		se.Router.POST("/invoices/{id}/windows/clear", handlers.HandleWindowClearAll(app))
		se.Router.GET("/invoices/{id}/windows/total", handlers.HandleWindowTotal(app))
		se.Router.POST("/invoices/{id}/windows/{itemId}/duplicate", handlers.HandleWindowDuplicate(app))
		se.Router.PATCH("/invoices/{id}/windows/{itemId}", handlers.HandleWindowPatch(app))
		se.Router.DELETE("/invoices/{id}/windows/{itemId}", handlers.HandleWindowDelete(app))

		// ── Customer details screen ──────────────────────────────
		se.Router.GET("/invoices/{id}/details", handlers.HandleDetailsPage(app))
		se.Router.POST("/invoices/{id}/details", handlers.HandleDetailsSave(app))
		se.Router.POST("/invoices/{id}/costs", handlers.HandleCostAdd(app))
		se.Router.DELETE("/invoices/{id}/costs/{costId}", handlers.HandleCostDelete(app))

		// ── Document generation ──────────────────────────────────
		se.Router.GET("/invoices/{id}/export/pdf", handlers.HandleInvoiceExportPDF(app))
		se.Router.GET("/invoices/{id}/export/excel", handlers.HandleInvoiceExportExcel(app))
		se.Router.POST("/invoices/{id}/email", handlers.HandleInvoiceEmail(app))

		// Redirect home to the invoice list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/invoices")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
