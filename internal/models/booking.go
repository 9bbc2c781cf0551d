package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ListingID   string    `gorm:"type:uuid;not null" json:"listing_id"`
	Message     string    `gorm:"not null" json:"message"`
	Price       float64   `gorm:"not null" json:"price"`
	Duration    int       `gorm:"not null" json:"duration"`
	CheckInDate string    `gorm:"not null" json:"check_in_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns the booking id. UserID is set once at creation and never updated.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
