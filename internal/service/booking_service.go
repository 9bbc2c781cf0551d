package service

import (
	"context"

	"github.com/kikao/booking-service/internal/models"
	"github.com/kikao/booking-service/internal/repository"
	"github.com/kikao/booking-service/pkg/rabbitmq"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	ListUserBookings(ctx context.Context, userID string, filter repository.BookingFilter) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID, userID string, changes repository.BookingChanges) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher *rabbitmq.Publisher
}

func NewBookingService(repo repository.BookingRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{repo: repo, publisher: publisher}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if err := s.repo.Save(ctx, booking); err != nil {
		return err
	}

	// Fire-and-forget notification; a failed publish never fails the booking
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string, filter repository.BookingFilter) ([]models.Booking, error) {
	return s.repo.FindByUser(ctx, userID, filter)
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID, userID string, changes repository.BookingChanges) (*models.Booking, error) {
	booking, err := s.repo.Update(ctx, bookingID, userID, changes)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.updated", booking)
	}

	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID, userID string) (*models.Booking, error) {
	booking, err := s.repo.Delete(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.deleted", booking)
	}

	return booking, nil
}
