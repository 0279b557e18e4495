package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CostView is one additional cost row on the details screen.
type CostView struct {
	ID          string
	Description string
	Amount      string
}

// BankingView carries the banking block shown on the details screen.
type BankingView struct {
	AccountHolder string
	AccountNumber string
	BankName      string
	BranchCode    string
}

// DetailsPageData carries everything the customer details screen needs.
type DetailsPageData struct {
	InvoiceID       string
	InvoiceNumber   int
	IssueDate       string
	CustomerName    string
	Email           string
	Phone           string
	Address         string
	Description     string
	LaborCharges    string
	Discount        string
	Costs           []CostView
	Subtotal        string
	LaborChargesFmt string
	AdditionalTotal string
	DiscountFmt     string
	GrandTotal      string
	Banking         BankingView
	Errors          map[string]string
}

// DetailsPage renders the full customer details screen.
func DetailsPage(data DetailsPageData) templ.Component {
	return Layout(fmt.Sprintf("Invoice #%d — Details", data.InvoiceNumber), DetailsContent(data))
}

// DetailsContent renders the details screen body, the HTMX swap target
// for cost mutations and detail saves.
func DetailsContent(data DetailsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := "/invoices/" + esc(data.InvoiceID)

		if _, err := fmt.Fprintf(w, `<div id="details-screen">
<div class="flex items-center justify-between mb-4">
<div>
<h1 class="text-2xl font-bold">Invoice #%d</h1>
<p class="text-base-content/60">%s</p>
</div>
<a href="%s/windows" class="btn btn-ghost btn-sm">Back to Windows</a>
</div>
<form hx-post="%s/details" hx-target="#details-screen" hx-swap="outerHTML">
<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<h2 class="card-title">Customer Details</h2>
<div class="grid grid-cols-1 md:grid-cols-2 gap-3">
`, data.InvoiceNumber, esc(data.IssueDate), base, base); err != nil {
			return err
		}

		textInputs := []struct {
			label string
			name  string
			value string
			typ   string
		}{
			{"Customer Name", "customer_name", data.CustomerName, "text"},
			{"Email", "email", data.Email, "email"},
			{"Phone", "phone", data.Phone, "tel"},
			{"Address", "address", data.Address, "text"},
		}
		for _, in := range textInputs {
			errClass := ""
			errMsg := ""
			if msg, ok := data.Errors[in.name]; ok {
				errClass = " input-error"
				errMsg = fmt.Sprintf(`<span class="label-text-alt text-error">%s</span>`, esc(msg))
			}
			if _, err := fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">%s</span>
<input type="%s" name="%s" value="%s" class="input input-bordered%s"/>
%s
</label>
`, esc(in.label), in.typ, in.name, esc(in.value), errClass, errMsg); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</div>
<label class="form-control">
<span class="label-text">Job Description</span>
<textarea name="description" class="textarea textarea-bordered" rows="2">%s</textarea>
</label>
</div></div>
<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<h2 class="card-title">Charges</h2>
<div class="grid grid-cols-2 gap-3">
<label class="form-control">
<span class="label-text">Labor Charges</span>
<input type="number" step="any" name="labor_charges" value="%s" class="input input-bordered"/>
</label>
<label class="form-control">
<span class="label-text">Discount</span>
<input type="number" step="any" name="discount" value="%s" class="input input-bordered"/>
</label>
</div>
<button type="submit" class="btn btn-primary mt-2">Save Details</button>
</div></div>
</form>
`, esc(data.Description), esc(data.LaborCharges), esc(data.Discount)); err != nil {
			return err
		}

		if err := renderCosts(w, base, data); err != nil {
			return err
		}
		if err := renderSummary(w, data); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<h2 class="card-title">Banking Details</h2>
<p>%s<br/>%s<br/>Acc: %s<br/>Branch: %s</p>
</div></div>
<div class="flex gap-2 justify-end">
<a href="%s/export/pdf" class="btn btn-outline">Download PDF</a>
<a href="%s/export/excel" class="btn btn-outline">Download Excel</a>
<button class="btn btn-secondary" hx-post="%s/email"
 hx-confirm="Email this invoice to the customer?">Email Invoice</button>
</div>
</div>
`, esc(data.Banking.AccountHolder), esc(data.Banking.BankName),
			esc(data.Banking.AccountNumber), esc(data.Banking.BranchCode),
			base, base, base)
		return err
	})
}

func renderCosts(w io.Writer, base string, data DetailsPageData) error {
	if _, err := io.WriteString(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<h2 class="card-title">Additional Costs</h2>
`); err != nil {
		return err
	}

	for _, cost := range data.Costs {
		if _, err := fmt.Fprintf(w, `<div class="flex items-center justify-between border-b border-base-200 py-1">
<span>%s</span>
<span class="flex items-center gap-2">%s
<button class="btn btn-ghost btn-xs text-error"
 hx-delete="%s/costs/%s" hx-target="#details-screen" hx-swap="outerHTML">✕</button>
</span>
</div>
`, esc(cost.Description), esc(cost.Amount), base, esc(cost.ID)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, `<form hx-post="%s/costs" hx-target="#details-screen" hx-swap="outerHTML" class="flex gap-2 mt-2">
<input type="text" name="description" placeholder="Description" class="input input-bordered input-sm flex-1"/>
<input type="number" step="any" name="amount" placeholder="Amount" class="input input-bordered input-sm w-28"/>
<button type="submit" class="btn btn-sm btn-primary">Add</button>
</form>
</div></div>
`, base)
	return err
}

func renderSummary(w io.Writer, data DetailsPageData) error {
	_, err := fmt.Fprintf(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<h2 class="card-title">Summary</h2>
<div class="flex justify-between"><span>Subtotal</span><span>%s</span></div>
<div class="flex justify-between"><span>Labor Charges</span><span>%s</span></div>
<div class="flex justify-between"><span>Additional Costs</span><span>%s</span></div>
<div class="flex justify-between"><span>Discount</span><span>-%s</span></div>
<div class="divider my-1"></div>
<div class="flex justify-between text-lg font-bold"><span>Total</span><span>%s</span></div>
</div></div>
`, esc(data.Subtotal), esc(data.LaborChargesFmt), esc(data.AdditionalTotal),
		esc(data.DiscountFmt), esc(data.GrandTotal))
	return err
}
