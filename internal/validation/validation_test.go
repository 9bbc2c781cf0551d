package validation

import (
	"errors"
	"testing"

	"github.com/kikao/booking-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingID = "550e8400-e29b-41d4-a716-446655440000"

func fptr(v float64) *float64 { return &v }

func validCreate() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ListingID:   listingID,
		Message:     "hi",
		Price:       fptr(100),
		Duration:    3,
		CheckInDate: "2024-01-01",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr))
	out := map[string]string{}
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidate_ValidPayload(t *testing.T) {
	req := validCreate()
	assert.NoError(t, New().Validate(&req))
}

func TestValidate_MissingPrice(t *testing.T) {
	req := validCreate()
	req.Price = nil

	fields := fieldsOf(t, New().Validate(&req))
	assert.Contains(t, fields, "price")
	assert.Equal(t, "is required", fields["price"])
}

func TestValidate_ZeroPriceIsValid(t *testing.T) {
	req := validCreate()
	req.Price = fptr(0)

	assert.NoError(t, New().Validate(&req))
}

func TestValidate_NegativePrice(t *testing.T) {
	req := validCreate()
	req.Price = fptr(-1)

	fields := fieldsOf(t, New().Validate(&req))
	assert.Contains(t, fields, "price")
}

func TestValidate_MissingEverything(t *testing.T) {
	var req dto.CreateBookingRequest

	fields := fieldsOf(t, New().Validate(&req))
	for _, f := range []string{"listing_id", "message", "price", "duration", "check_in_date"} {
		assert.Contains(t, fields, f)
	}
	// user_id is optional
	assert.NotContains(t, fields, "user_id")
}

func TestValidate_BadListingID(t *testing.T) {
	req := validCreate()
	req.ListingID = "not-a-uuid"

	fields := fieldsOf(t, New().Validate(&req))
	assert.Equal(t, "must be a valid uuid", fields["listing_id"])
}

func TestValidate_NegativePriceOnUpdate(t *testing.T) {
	price := -5.0
	req := dto.UpdateBookingRequest{Price: &price}

	fields := fieldsOf(t, New().Validate(&req))
	assert.Contains(t, fields, "price")
}

func TestValidate_EmptyUpdateIsValid(t *testing.T) {
	var req dto.UpdateBookingRequest
	assert.NoError(t, New().Validate(&req))
}

func TestValidationError_Message(t *testing.T) {
	verr := &Error{Fields: []FieldError{
		{Field: "price", Message: "is required"},
		{Field: "message", Message: "is required"},
	}}
	assert.Equal(t, "validation failed: price: is required; message: is required", verr.Error())
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Price":       "price",
		"ListingID":   "listing_id",
		"UserID":      "user_id",
		"CheckInDate": "check_in_date",
		"Message":     "message",
	}
	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in))
	}
}
