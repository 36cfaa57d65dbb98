package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookSlackPayload(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, "slack", nil)
	if err := n.Send(Notification{Title: "Overdue reviews", Message: "3 items past due"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got["text"] != "Overdue reviews: 3 items past due" {
		t.Errorf("payload = %v", got)
	}
}

func TestWebhookCustomTemplate(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, "custom", map[string]string{
		"template": `{"summary": "{{.Title}}", "body": "{{.Message}}"}`,
	})
	if err := n.Send(Notification{Title: "t", Message: "m"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got["summary"] != "t" || got["body"] != "m" {
		t.Errorf("payload = %v", got)
	}
}

func TestWebhookCustomTemplateMissing(t *testing.T) {
	n := NewWebhookNotifier("http://localhost:0", "custom", nil)
	if err := n.Send(Notification{Title: "t", Message: "m"}); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestWebhookServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL, "slack", nil)
	if err := n.Send(Notification{Title: "t", Message: "m"}); err == nil {
		t.Error("expected error for 502 response")
	}
}
