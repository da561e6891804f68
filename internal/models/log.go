package models

import "time"

// AuditLog records one authenticated API request.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:36;index;not null"`
	Method    string    `gorm:"size:16"`
	Path      string    `gorm:"size:255"`
	IP        string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:255"`
	CreatedAt time.Time
}
