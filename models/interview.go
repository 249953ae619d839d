package models

import "time"

// Interview represents a scheduled interview. Candidate and job fields are
// denormalized copies taken at creation time, not foreign keys.
type Interview struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CandidateID    string    `gorm:"column:candidate_id;type:varchar(64)" json:"candidate_id"`
	CandidateName  string    `gorm:"column:candidate_name;type:varchar(100)" json:"candidate_name"`
	CandidateEmail string    `gorm:"column:candidate_email;type:varchar(100)" json:"candidate_email"`
	CandidateImage string    `gorm:"column:candidate_image;type:varchar(255)" json:"candidate_image"`
	JobID          uint      `gorm:"column:job_id" json:"job_id"`
	JobTitle       string    `gorm:"column:job_title;type:varchar(150)" json:"job_title"`
	InterviewerID  string    `gorm:"column:interviewer_id;type:varchar(64)" json:"interviewer_id"`
	Interviewer    string    `gorm:"type:varchar(100)" json:"interviewer"`
	Date           string    `gorm:"type:varchar(20)" json:"date"`
	Time           string    `gorm:"type:varchar(20)" json:"time"`
	Status         string    `gorm:"type:varchar(30)" json:"status"`
	StatusColor    string    `gorm:"column:status_color;type:varchar(30)" json:"status_color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
