package services

import (
	"testing"

	"jobboard-http-service/models"
)

func newInterview() *models.Interview {
	return &models.Interview{
		CandidateID:    "cand-1",
		CandidateName:  "John Doe",
		CandidateEmail: "john@example.com",
		JobID:          7,
		JobTitle:       "Backend Engineer",
		Interviewer:    "Jane HR",
		Date:           "2025-03-14",
		Time:           "10:30",
		Status:         "Scheduled",
	}
}

func TestCreateInterviewShortlistsCandidate(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(db, newTestConfig())

	if err := svc.CreateInterview(newInterview()); err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}

	var shortlist models.ShortlistCandidate
	if err := db.Where("candidate_id = ? AND job_id = ?", "cand-1", 7).First(&shortlist).Error; err != nil {
		t.Fatalf("expected a shortlist row: %v", err)
	}
	if shortlist.Status != "Shortlisted" {
		t.Fatalf("shortlist status = %q, want Shortlisted", shortlist.Status)
	}
}

func TestCreateInterviewTwiceKeepsSingleShortlistRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(db, newTestConfig())

	if err := svc.CreateInterview(newInterview()); err != nil {
		t.Fatalf("first CreateInterview failed: %v", err)
	}
	// Second interview for the same candidate/job pair must succeed even
	// though the shortlist row already exists
	if err := svc.CreateInterview(newInterview()); err != nil {
		t.Fatalf("second CreateInterview failed: %v", err)
	}

	var interviews int64
	db.Model(&models.Interview{}).Count(&interviews)
	if interviews != 2 {
		t.Fatalf("got %d interviews, want 2", interviews)
	}

	var shortlisted int64
	db.Model(&models.ShortlistCandidate{}).Count(&shortlisted)
	if shortlisted != 1 {
		t.Fatalf("got %d shortlist rows, want 1", shortlisted)
	}
}

func TestDeleteInterviewKeepsShortlistRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewInterviewService(db, newTestConfig())

	interview := newInterview()
	if err := svc.CreateInterview(interview); err != nil {
		t.Fatalf("CreateInterview failed: %v", err)
	}
	if err := svc.DeleteInterview(interview.ID); err != nil {
		t.Fatalf("DeleteInterview failed: %v", err)
	}

	var shortlisted int64
	db.Model(&models.ShortlistCandidate{}).Count(&shortlisted)
	if shortlisted != 1 {
		t.Fatal("deleting an interview must not cascade to the shortlist")
	}
}
