package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultAvatarURL is the placeholder shown for admin users without an avatar
const DefaultAvatarURL = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp"

// AdminUser represents back-office users (HR staff and administrators)
type AdminUser struct {
	UserID       string    `gorm:"column:user_id;type:varchar(36);primaryKey" json:"user_id"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	Email        string    `gorm:"type:varchar(100)" json:"email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	Role         string    `gorm:"type:varchar(50)" json:"role"`
	Status       string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100)" json:"-"` // Password hash not exposed in JSON
	AvatarURL    string    `gorm:"column:avatar_url;type:varchar(255)" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (AdminUser) TableName() string {
	return "admin_users"
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.AvatarURL == "" {
		a.AvatarURL = DefaultAvatarURL
	}
	if a.Status == "" {
		a.Status = "active"
	}
	return nil
}
