package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// InvoiceListItem is one row on the invoice list page.
type InvoiceListItem struct {
	ID            string
	InvoiceNumber int
	IssueDate     string
	CustomerName  string
	WindowCount   int
	GrandTotal    string
}

// InvoiceListData carries everything the invoice list page needs.
type InvoiceListData struct {
	Items      []InvoiceListItem
	TotalCount int
}

// InvoiceListPage renders the full invoice list page.
func InvoiceListPage(data InvoiceListData) templ.Component {
	return Layout("Invoices", invoiceListContent(data))
}

func invoiceListContent(data InvoiceListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4">
<h1 class="text-2xl font-bold">Invoices <span class="badge badge-neutral">%d</span></h1>
<form method="post" action="/invoices">
<button type="submit" class="btn btn-primary">New Invoice</button>
</form>
</div>
`, data.TotalCount); err != nil {
			return err
		}

		if len(data.Items) == 0 {
			_, err := io.WriteString(w, `<div class="card bg-base-100 shadow"><div class="card-body items-center">
<p class="text-base-content/60">No invoices yet. Create one to get started.</p>
</div></div>
`)
			return err
		}

		if _, err := io.WriteString(w, `<div class="card bg-base-100 shadow"><div class="card-body p-0">
<table class="table">
<thead><tr><th>Invoice #</th><th>Date</th><th>Customer</th><th>Windows</th><th class="text-right">Total</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, item := range data.Items {
			customer := item.CustomerName
			if customer == "" {
				customer = "—"
			}
			if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/invoices/%s/windows" class="link link-primary font-semibold">#%d</a></td>
<td>%s</td>
<td>%s</td>
<td>%d</td>
<td class="text-right">%s</td>
<td class="text-right">
<button class="btn btn-ghost btn-xs text-error"
 hx-delete="/invoices/%s" hx-confirm="Delete invoice #%d? This cannot be undone."
 hx-target="body">Delete</button>
</td>
</tr>
`, esc(item.ID), item.InvoiceNumber, esc(item.IssueDate), esc(customer),
				item.WindowCount, esc(item.GrandTotal), esc(item.ID), item.InvoiceNumber); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
</div></div>
`)
		return err
	})
}
