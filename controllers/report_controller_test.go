package controllers_test

import (
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestReportSkillsSurviveRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/reports", map[string]interface{}{
		"candidate_name": "John Doe",
		"position":       "Backend Engineer",
		"skills":         []string{"Go", "SQL"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}

	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("expected a numeric id, got %v", body)
	}

	w, body = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/reports/%d", int(id)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", w.Code, w.Body.String())
	}

	got, ok := body["skills"].([]interface{})
	if !ok {
		t.Fatalf("skills missing from response: %v", body)
	}
	want := []interface{}{"Go", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
}

func TestReportNotFoundBody(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/reports/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Report not found" {
		t.Fatalf("error body = %v", body)
	}
}
