package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wraps a request/recorder pair in the RequestEvent
// shape the handlers expect. Path values are set on the request by the
// caller, mirroring what the router does.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	event := &core.RequestEvent{}
	event.App = app
	event.Request = req
	event.Response = rec
	return event
}

// newFormRequestEvent builds a form-encoded request event, the submission
// shape most mutation handlers receive.
func newFormRequestEvent(app *pocketbase.PocketBase, method, target string, form url.Values) (*core.RequestEvent, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	return newTestRequestEvent(app, req, rec), rec
}
