package models

import "time"

// JobPosting represents an open position published by HR
type JobPosting struct {
	JobID       uint      `gorm:"column:job_id;primaryKey" json:"job_id"`
	Title       string    `gorm:"type:varchar(150);not null" json:"title"`
	Department  string    `gorm:"type:varchar(100)" json:"department"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`
	PostedDate  time.Time `gorm:"column:postedDate" json:"postedDate"`
}

// TableName overrides the table name (legacy schema name)
func (JobPosting) TableName() string {
	return "post_job"
}
