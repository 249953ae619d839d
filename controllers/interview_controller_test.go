package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard-http-service/models"
)

func interviewPayload() map[string]interface{} {
	return map[string]interface{}{
		"candidate_id":    "cand-1",
		"candidate_name":  "John Doe",
		"candidate_email": "john@example.com",
		"job_id":          7,
		"job_title":       "Backend Engineer",
		"interviewer":     "Jane HR",
		"date":            "2025-03-14",
		"time":            "10:30",
		"status":          "Scheduled",
	}
}

func TestScheduleInterviewTwiceBothSucceed(t *testing.T) {
	r, db := newTestServer(t)

	for i := 0; i < 2; i++ {
		w, body := doJSON(t, r, http.MethodPost, "/api/interviews", interviewPayload())
		if w.Code != http.StatusCreated {
			t.Fatalf("create #%d status = %d, want 201: %s", i+1, w.Code, w.Body.String())
		}
		if body["message"] != "Interview scheduled successfully" {
			t.Fatalf("create #%d body = %v", i+1, body)
		}
	}

	var interviews int64
	db.Model(&models.Interview{}).Count(&interviews)
	if interviews != 2 {
		t.Fatalf("got %d interviews, want 2", interviews)
	}

	// The candidate is shortlisted exactly once
	w, _ := doJSON(t, r, http.MethodGet, "/api/shortlist-candidates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("shortlist status = %d: %s", w.Code, w.Body.String())
	}
	var shortlisted []models.ShortlistCandidate
	if err := json.Unmarshal(w.Body.Bytes(), &shortlisted); err != nil {
		t.Fatalf("failed to decode shortlist: %v", err)
	}
	if len(shortlisted) != 1 {
		t.Fatalf("got %d shortlist rows, want 1", len(shortlisted))
	}
	if shortlisted[0].Status != "Shortlisted" {
		t.Fatalf("shortlist status = %q, want Shortlisted", shortlisted[0].Status)
	}
}

func TestScheduleInterviewRequiresCandidateAndJob(t *testing.T) {
	r, _ := newTestServer(t)

	payload := interviewPayload()
	delete(payload, "candidate_id")

	w, _ := doJSON(t, r, http.MethodPost, "/api/interviews", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
}

func TestGetInterviewRejectsBadID(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/interviews/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if body["error"] != "Invalid interview id" {
		t.Fatalf("error body = %v", body)
	}
}
