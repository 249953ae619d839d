package models

import "time"

// Session is a short-lived server-side record correlating a client to a
// user id and role. Expired rows are kept until explicitly deleted.
type Session struct {
	SessionID string    `gorm:"column:session_id;type:varchar(36);primaryKey" json:"session_id"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null" json:"user_id"`
	UserRole  string    `gorm:"column:user_role;type:varchar(50)" json:"user_role"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	UserAgent string    `gorm:"column:user_agent;type:varchar(255)" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
