package models

import "time"

// Content is a managed content block (landing copy, FAQ entries, ...)
// edited from the admin dashboard
type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(100);not null" json:"slug"`
	Title     string    `gorm:"type:varchar(150)" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Status    string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
