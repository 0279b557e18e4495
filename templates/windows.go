package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// WindowItemView is one editable window card on the windows screen.
// Numeric fields are pre-rendered strings so empty means "not entered yet".
type WindowItemView struct {
	ID            string
	Index         int
	WidthMM       string
	HeightMM      string
	ThicknessMM   string
	UnitPrice     string
	Quantity      string
	FramePrice    string
	GlassType     string
	FrameMaterial string
	LineCost      string
}

// WindowsPageData carries everything the windows screen needs.
type WindowsPageData struct {
	InvoiceID     string
	InvoiceNumber int
	Windows       []WindowItemView
	GlassOptions  []string
	FrameOptions  []string
	GrandTotal    string
}

// WindowsPage renders the full windows screen.
func WindowsPage(data WindowsPageData) templ.Component {
	return Layout(fmt.Sprintf("Invoice #%d — Windows", data.InvoiceNumber), WindowsContent(data))
}

// WindowsContent renders the windows screen body. It is the HTMX swap
// target for every window mutation so the running total stays fresh.
func WindowsContent(data WindowsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := "/invoices/" + esc(data.InvoiceID)

		if _, err := fmt.Fprintf(w, `<div id="windows-screen">
<div class="flex items-center justify-between mb-4">
<h1 class="text-2xl font-bold">Invoice #%d</h1>
<a href="/invoices" class="btn btn-ghost btn-sm">All invoices</a>
</div>
`, data.InvoiceNumber); err != nil {
			return err
		}

		for _, win := range data.Windows {
			if err := renderWindowCard(w, base, win, data.GlassOptions, data.FrameOptions); err != nil {
				return err
			}
		}

		if len(data.Windows) == 0 {
			if _, err := io.WriteString(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body items-center">
<p class="text-base-content/60">No windows yet. Add the first one below.</p>
</div></div>
`); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<div class="flex gap-2 mb-4">
<button class="btn btn-primary" hx-post="%s/windows" hx-target="#windows-screen" hx-swap="outerHTML">Add Window</button>
<form hx-post="%s/windows/clear" hx-target="#windows-screen" hx-swap="outerHTML"
 hx-confirm="Remove all windows from this invoice?">
<input type="hidden" name="confirm" value="true"/>
<button type="submit" class="btn btn-outline btn-error">Clear All</button>
</form>
</div>
<div class="card bg-neutral text-neutral-content shadow mb-4"><div class="card-body flex-row justify-between items-center py-4">
<span class="text-lg">Total</span>
<span class="text-2xl font-bold">%s</span>
</div></div>
<div class="flex justify-end">
<a href="%s/details" class="btn btn-secondary">Next: Customer Details</a>
</div>
</div>
`, base, base, esc(data.GrandTotal), base)
		return err
	})
}

func renderWindowCard(w io.Writer, base string, win WindowItemView, glassOptions, frameOptions []string) error {
	itemBase := base + "/windows/" + esc(win.ID)

	if _, err := fmt.Fprintf(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body">
<div class="flex items-center justify-between">
<h2 class="card-title">Window %d</h2>
<div class="flex gap-1">
<button class="btn btn-ghost btn-xs" hx-post="%s/duplicate" hx-target="#windows-screen" hx-swap="outerHTML">Duplicate</button>
<button class="btn btn-ghost btn-xs text-error" hx-delete="%s" hx-target="#windows-screen" hx-swap="outerHTML">Remove</button>
</div>
</div>
<div class="grid grid-cols-2 md:grid-cols-3 gap-3">
`, win.Index, itemBase, itemBase); err != nil {
		return err
	}

	numberInputs := []struct {
		label string
		name  string
		value string
	}{
		{"Width (mm)", "width_mm", win.WidthMM},
		{"Height (mm)", "height_mm", win.HeightMM},
		{"Thickness (mm)", "thickness_mm", win.ThicknessMM},
		{"Price per m²", "unit_price", win.UnitPrice},
		{"Quantity", "quantity", win.Quantity},
		{"Frame Price", "frame_price", win.FramePrice},
	}
	for _, in := range numberInputs {
		if _, err := fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">%s</span>
<input type="number" step="any" name="%s" value="%s" class="input input-bordered input-sm"
 hx-patch="%s" hx-trigger="change" hx-target="#windows-screen" hx-swap="outerHTML"/>
</label>
`, esc(in.label), in.name, esc(in.value), itemBase); err != nil {
			return err
		}
	}

	if err := renderSelect(w, itemBase, "Glass Type", "glass_type", win.GlassType, glassOptions); err != nil {
		return err
	}
	if err := renderSelect(w, itemBase, "Frame Material", "frame_material", win.FrameMaterial, frameOptions); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, `</div>
<div class="flex justify-end mt-2">
<span class="badge badge-lg badge-neutral">%s</span>
</div>
</div></div>
`, esc(win.LineCost))
	return err
}

func renderSelect(w io.Writer, itemBase, label, name, selected string, options []string) error {
	if _, err := fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">%s</span>
<select name="%s" class="select select-bordered select-sm"
 hx-patch="%s" hx-trigger="change" hx-target="#windows-screen" hx-swap="outerHTML">
`, esc(label), name, itemBase); err != nil {
		return err
	}
	for _, opt := range options {
		sel := ""
		if opt == selected {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(opt), sel, esc(opt)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>
</label>
`)
	return err
}
