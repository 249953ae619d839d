package services

import (
	"reflect"
	"testing"

	"jobboard-http-service/models"
)

func TestReportSkillsRoundTrip(t *testing.T) {
	svc := NewReportService(newTestDB(t), newTestConfig())

	report := &models.AdminReport{
		CandidateName: "John Doe",
		Position:      "Backend Engineer",
		SkillList:     []string{"Go", "SQL"},
	}
	if err := svc.CreateReport(report); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if report.Skills != "Go,SQL" {
		t.Fatalf("stored skills = %q, want CSV", report.Skills)
	}

	got, err := svc.GetReportByID(report.ID)
	if err != nil {
		t.Fatalf("GetReportByID failed: %v", err)
	}
	if !reflect.DeepEqual(got.SkillList, []string{"Go", "SQL"}) {
		t.Fatalf("skills = %v, want [Go SQL]", got.SkillList)
	}
}

func TestReportEmptySkills(t *testing.T) {
	svc := NewReportService(newTestDB(t), newTestConfig())

	report := &models.AdminReport{CandidateName: "Jane Doe"}
	if err := svc.CreateReport(report); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	got, err := svc.GetReportByID(report.ID)
	if err != nil {
		t.Fatalf("GetReportByID failed: %v", err)
	}
	if len(got.SkillList) != 0 {
		t.Fatalf("skills = %v, want empty list", got.SkillList)
	}
	if got.SkillList == nil {
		t.Fatal("skills must serialize as [], not null")
	}
}
