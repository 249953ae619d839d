package models

import "time"

// ActivityLog records back-office actions, append-only
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminUserID string    `gorm:"column:admin_user_id;type:varchar(36);not null" json:"admin_user_id"`
	Action      string    `gorm:"type:varchar(100);not null" json:"action"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name
func (ActivityLog) TableName() string {
	return "admin_user_activity_logs"
}
