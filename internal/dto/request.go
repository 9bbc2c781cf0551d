package dto

// CreateBookingRequest is the booking payload. UserID is accepted for
// backwards compatibility with older clients but the verified token identity
// always wins as the owner.
type CreateBookingRequest struct {
	UserID      string   `json:"user_id" validate:"omitempty,uuid"`
	ListingID   string   `json:"listing_id" validate:"required,uuid"`
	Message     string   `json:"message" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Duration    int      `json:"duration" validate:"required,gt=0"`
	CheckInDate string   `json:"check_in_date" validate:"required"`
}

type UpdateBookingRequest struct {
	Message     *string  `json:"message"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0"`
	CheckInDate *string  `json:"check_in_date"`
}
