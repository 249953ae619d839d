package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestCreateJobPostingDefaultsPostedDate(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/job-postings", map[string]interface{}{
		"title":      "Backend Engineer",
		"department": "Engineering",
		"location":   "Remote",
		"status":     "open",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	raw, ok := body["postedDate"].(string)
	if !ok {
		t.Fatalf("postedDate missing: %v", body)
	}
	postedDate, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t.Fatalf("postedDate is not a timestamp: %v", err)
	}
	if time.Since(postedDate) > time.Minute {
		t.Fatalf("postedDate = %v, want defaulted to now", postedDate)
	}
}

func TestGetJobPostingByID(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/job-postings", map[string]interface{}{
		"title": "Backend Engineer",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	id := int(body["job_id"].(float64))

	w, body = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/job-postings/%d", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d: %s", w.Code, w.Body.String())
	}
	if body["title"] != "Backend Engineer" {
		t.Fatalf("title = %v", body["title"])
	}
}

func TestGetJobPostingRejectsBadID(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/job-postings/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Invalid job id" {
		t.Fatalf("error body = %v", body)
	}
}

func TestGetJobPostingNotFoundBody(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/job-postings/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Job posting not found" {
		t.Fatalf("error body = %v", body)
	}
}
