package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Window removed")

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}

	if toast["message"] != "Window removed" {
		t.Errorf("expected message %q, got %q", "Window removed", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	// Set an existing HX-Trigger header
	rec.Header().Set("HX-Trigger", `{"someEvent":{"key":"value"}}`)

	SetToast(e, "success", "Merged toast")

	trigger := rec.Header().Get("HX-Trigger")
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	if _, ok := parsed["someEvent"]; !ok {
		t.Error("expected someEvent key to be preserved after merge")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("expected showToast key in merged HX-Trigger JSON")
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger should be valid JSON after overwrite: %v", err)
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("expected showToast key after overwriting invalid header")
	}
}

func TestSetToast_SetsFlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "info", "Saved")

	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == "flash_toast" {
			return
		}
	}
	t.Error("expected a flash_toast cookie to be set")
}

func TestErrorToast_SetsHeaderAndReswap(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	err := ErrorToast(e, http.StatusNotFound, "Invoice not found")
	if err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("failed to parse HX-Trigger JSON: %v", err)
	}
	toast, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger")
	}
	if toast["type"] != "error" {
		t.Errorf("expected type 'error', got %q", toast["type"])
	}

	if reswap := rec.Header().Get("HX-Reswap"); reswap != "none" {
		t.Errorf("expected HX-Reswap 'none', got %q", reswap)
	}
	if rec.Body.String() != "Invoice not found" {
		t.Errorf("expected body 'Invoice not found', got %q", rec.Body.String())
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
