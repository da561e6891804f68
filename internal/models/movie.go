package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie is a single tracked film. The owner is set at creation and never
// reassigned; every read and write goes through an ownership check.
type Movie struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Rating    float64   `gorm:"not null" json:"rating"` // inclusive 0-10
	Overview  string    `gorm:"type:text;not null" json:"overview"`
	ImageURL  string    `gorm:"size:2048;not null" json:"imageURL"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
