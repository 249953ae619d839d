package models

import "time"

// ShortlistCandidate flags a candidate as under consideration for a
// specific job. One row per (candidate, job) pair.
type ShortlistCandidate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CandidateID    string    `gorm:"column:candidate_id;type:varchar(64);uniqueIndex:idx_shortlist_candidate_job" json:"candidate_id"`
	CandidateName  string    `gorm:"column:candidate_name;type:varchar(100)" json:"candidate_name"`
	CandidateEmail string    `gorm:"column:candidate_email;type:varchar(100)" json:"candidate_email"`
	CandidateImage string    `gorm:"column:candidate_image;type:varchar(255)" json:"candidate_image"`
	JobID          uint      `gorm:"column:job_id;uniqueIndex:idx_shortlist_candidate_job" json:"job_id"`
	JobTitle       string    `gorm:"column:job_title;type:varchar(150)" json:"job_title"`
	Status         string    `gorm:"type:varchar(30)" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
