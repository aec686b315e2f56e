package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMXResponseBuilder_Basic(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		Status(http.StatusOK).
		BodyHTML("<div>test</div>").
		Write(w)

	if w.Code != http.StatusOK {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "<div>test</div>" {
		t.Errorf("Body = %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHTMXResponseBuilder_Triggers(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		TriggerTransactionsChanged().
		TriggerFormReset().
		TriggerSuccessNotification("Test message").
		Write(w)

	trigger := w.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("HX-Trigger header not set")
	}

	expectedParts := []string{
		`"transactions:changed"`,
		`"form:reset"`,
		`"show-notification"`,
		`"type":"success"`,
		`"message":"Test message"`,
	}
	for _, part := range expectedParts {
		if !strings.Contains(trigger, part) {
			t.Errorf("HX-Trigger missing %q: %s", part, trigger)
		}
	}
}

func TestHTMXResponseBuilder_BillsChanged(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		TriggerBillsChanged().
		Write(w)

	if trigger := w.Header().Get("HX-Trigger"); !strings.Contains(trigger, `"bills:changed"`) {
		t.Errorf("Missing bills:changed trigger: %s", trigger)
	}
}

func TestHTMXResponseBuilder_CustomHeader(t *testing.T) {
	w := httptest.NewRecorder()

	NewHTMXResponse().
		Header("X-Custom", "value").
		Write(w)

	if got := w.Header().Get("X-Custom"); got != "value" {
		t.Errorf("X-Custom = %q, want %q", got, "value")
	}
}

func TestErrorResponseEscapesHTML(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(http.StatusBadRequest, `<script>alert("x")</script>`).Write(w)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	body := w.Body.String()
	if strings.Contains(body, "<script>") {
		t.Errorf("error message not escaped: %s", body)
	}
	if !strings.Contains(body, `class="error"`) {
		t.Errorf("missing error wrapper: %s", body)
	}
}

func TestMethodNotAllowedError(t *testing.T) {
	w := httptest.NewRecorder()

	MethodNotAllowedError("POST").Write(w)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
	if got := w.Header().Get("Allow"); got != "POST" {
		t.Errorf("Allow = %q, want %q", got, "POST")
	}
}
