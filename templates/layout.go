// Package templates renders the HTML pages for the invoicing app.
// Components are hand-written templ.ComponentFunc values so the whole
// UI stays in plain Go without a generation step.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// esc escapes a string for safe interpolation into HTML.
func esc(s string) string {
	return html.EscapeString(s)
}

// Layout wraps page content in the shared HTML shell: htmx, styling and
// the toast listener that reacts to the showToast HX-Trigger event.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css" rel="stylesheet" type="text/css"/>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-base-200 min-h-screen">
<div class="navbar bg-neutral text-neutral-content shadow">
<div class="flex-1"><a href="/invoices" class="btn btn-ghost text-xl">GLASNOOD</a></div>
</div>
<main class="container mx-auto max-w-4xl p-4">
`, esc(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast-container" class="toast toast-top toast-end z-50"></div>
<script>
function showToast(message, type) {
  const container = document.getElementById('toast-container');
  const alert = document.createElement('div');
  alert.className = 'alert alert-' + (type || 'info');
  alert.textContent = message;
  container.appendChild(alert);
  setTimeout(() => alert.remove(), 4000);
}
document.body.addEventListener('showToast', function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  const match = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!match) return;
  try {
    const data = JSON.parse(decodeURIComponent(match[1]));
    showToast(data.message, data.type);
  } catch (e) {}
  document.cookie = 'flash_toast=; Max-Age=0; path=/';
})();
</script>
</body>
</html>
`)
		return err
	})
}
