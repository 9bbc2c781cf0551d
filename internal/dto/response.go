package dto

import (
	"time"

	"github.com/kikao/booking-service/internal/models"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ListingID   string    `json:"listing_id"`
	Message     string    `json:"message"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	CheckInDate string    `json:"check_in_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ListingID:   b.ListingID,
		Message:     b.Message,
		Price:       b.Price,
		Duration:    b.Duration,
		CheckInDate: b.CheckInDate,
		CreatedAt:   b.CreatedAt,
	}
}
