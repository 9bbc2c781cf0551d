package handler

import (
	"net/http"
	"strconv"

	"github.com/kikao/booking-service/internal/dto"
	"github.com/kikao/booking-service/internal/middleware"
	"github.com/kikao/booking-service/internal/models"
	"github.com/kikao/booking-service/internal/repository"
	"github.com/kikao/booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking)
	g.GET("/user", h.ListUserBookings)
	g.PUT("/user/:id", h.UpdateBooking)
	g.DELETE("/user/:id", h.DeleteBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// The verified identity owns the booking; a user_id in the body is ignored.
	booking := &models.Booking{
		UserID:      middleware.UserID(c),
		ListingID:   req.ListingID,
		Message:     req.Message,
		Price:       *req.Price,
		Duration:    req.Duration,
		CheckInDate: req.CheckInDate,
	}

	if err := h.svc.CreateBooking(c.Request().Context(), booking); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListUserBookings(c.Request().Context(), middleware.UserID(c), filter)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	changes := repository.BookingChanges{
		Message:     req.Message,
		Price:       req.Price,
		Duration:    req.Duration,
		CheckInDate: req.CheckInDate,
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c), changes)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	booking, err := h.svc.DeleteBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func parseFilter(c echo.Context) (repository.BookingFilter, error) {
	var filter repository.BookingFilter

	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid min_price")
		}
		filter.MinPrice = &p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid max_price")
		}
		filter.MaxPrice = &p
	}
	if v := c.QueryParam("duration"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid duration")
		}
		filter.Duration = &d
	}
	filter.Text = c.QueryParam("text")

	return filter, nil
}
