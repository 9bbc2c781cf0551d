package models

import "time"

// Listing is a local read-only mirror of the listing service's records,
// kept in sync by the RabbitMQ consumer. Bookings reference it by id only.
type Listing struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	County    string    `json:"county"`
	Status    string    `gorm:"type:varchar(50)" json:"status"`
	UserID    string    `gorm:"type:uuid" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
