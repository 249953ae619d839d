package models

import "time"

// AdminReport is a denormalized candidate/application summary row for the
// admin reporting UI. Skills are stored as CSV text in the database and
// exposed as a JSON string array on the wire.
type AdminReport struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidateName string    `gorm:"column:candidate_name;type:varchar(100)" json:"candidate_name"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Position      string    `gorm:"type:varchar(150)" json:"position"`
	Experience    string    `gorm:"type:varchar(50)" json:"experience"`
	Skills        string    `gorm:"type:text" json:"-"`
	SkillList     []string  `gorm:"-" json:"skills"`
	Status        string    `gorm:"type:varchar(30)" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (AdminReport) TableName() string {
	return "admin_reports"
}
