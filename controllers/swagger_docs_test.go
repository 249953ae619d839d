package controllers_test

import (
	"net/http"
	"testing"
)

// The /swagger handler serves the registered API description; a missing
// docs registration would surface here as a 500 from the handler.
func TestSwaggerDocIsServed(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /swagger/doc.json, got %d: %s", w.Code, w.Body.String())
	}

	if body["swagger"] != "2.0" {
		t.Fatalf("expected a swagger 2.0 document, got %v", body["swagger"])
	}
	if body["basePath"] != "/api" {
		t.Fatalf("expected basePath /api, got %v", body["basePath"])
	}
	if _, ok := body["paths"].(map[string]interface{})["/job-postings"]; !ok {
		t.Fatalf("expected /job-postings in documented paths")
	}
}
