package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kikao/booking-service/internal/repository"
	"github.com/kikao/booking-service/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	ErrorHandler(err, c)
	return rec
}

func TestErrorHandler_NotFound(t *testing.T) {
	rec := recordError(t, repository.ErrBookingNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorHandler_NoBookings(t *testing.T) {
	rec := recordError(t, repository.ErrNoBookings)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorHandler_NotOwner(t *testing.T) {
	rec := recordError(t, repository.ErrNotBookingOwner)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, repository.ErrNotBookingOwner.Error(), body["message"])
}

func TestErrorHandler_StoreFailures(t *testing.T) {
	for _, err := range []error{
		repository.ErrSaveFailed,
		repository.ErrUpdateFailed,
		repository.ErrDeleteFailed,
	} {
		rec := recordError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	}
}

func TestErrorHandler_WrappedStoreFailureHidesDetail(t *testing.T) {
	wrapped := fmt.Errorf("%w: %v", repository.ErrSaveFailed, `pq: duplicate key value violates unique constraint "bookings_pkey"`)

	rec := recordError(t, wrapped)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, repository.ErrSaveFailed.Error(), body["message"])
	assert.NotContains(t, body["message"], "pq:")
}

func TestErrorHandler_Validation(t *testing.T) {
	verr := &validation.Error{Fields: []validation.FieldError{
		{Field: "price", Message: "is required"},
	}}

	rec := recordError(t, verr)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Message string                  `json:"message"`
		Errors  []validation.FieldError `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 1)
	assert.Equal(t, "price", body.Errors[0].Field)
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	rec := recordError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid min_price"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid min_price", body["message"])
}

func TestErrorHandler_Unknown(t *testing.T) {
	rec := recordError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
