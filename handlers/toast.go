package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// toastPayload is the event body the layout's showToast listener expects.
type toastPayload struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast queues a toast notification for the client. HTMX requests get
// it through the HX-Trigger response header; a short-lived flash cookie
// covers regular (non-HTMX) redirects where the header is lost.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := toastPayload{Message: message, Type: toastType}
	setTriggerEvent(e.Response.Header(), "showToast", payload)
	setFlashCookie(e.Response, payload)
}

// setTriggerEvent adds one named event to the HX-Trigger header, merging
// with any events already queued on the response. A malformed existing
// value is discarded rather than propagated.
func setTriggerEvent(h http.Header, name string, payload any) {
	events := map[string]any{}
	if existing := h.Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			log.Printf("toast: discarding malformed HX-Trigger value: %v", err)
			events = map[string]any{}
		}
	}
	events[name] = payload

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: could not marshal HX-Trigger events: %v", err)
		return
	}
	h.Set("HX-Trigger", string(data))
}

// setFlashCookie mirrors the toast into a cookie the layout script replays
// once after a full page load.
func setFlashCookie(w http.ResponseWriter, payload toastPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "flash_toast",
		Value:    url.QueryEscape(string(data)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // the layout script reads it
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast reports a failed action: it queues an error toast and sets
// HX-Reswap: none so htmx fires the toast but drops the plain-text body
// instead of swapping it into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
