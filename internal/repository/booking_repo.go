package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kikao/booking-service/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSaveFailed      = errors.New("error occurred while saving booking, try again")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNoBookings      = errors.New("no bookings found for this user")
	ErrNotBookingOwner = errors.New("you can only modify your own booking")
	ErrUpdateFailed    = errors.New("booking update was not successful")
	ErrDeleteFailed    = errors.New("booking deletion was not successful")
)

// BookingFilter narrows FindByUser results. Nil/empty fields are ignored.
type BookingFilter struct {
	MinPrice *float64
	MaxPrice *float64
	Duration *int
	Text     string
}

// BookingChanges holds the mutable subset of a booking. ID and UserID are immutable.
type BookingChanges struct {
	Message     *string
	Price       *float64
	Duration    *int
	CheckInDate *string
}

type BookingRepository interface {
	Save(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByUser(ctx context.Context, userID string, filter BookingFilter) ([]models.Booking, error)
	Update(ctx context.Context, id, userID string, changes BookingChanges) (*models.Booking, error)
	Delete(ctx context.Context, id, userID string) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	res := r.db.WithContext(ctx).Create(booking)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSaveFailed
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// FindByUser returns ErrNoBookings on an empty result rather than an empty
// slice; callers depend on that contract.
func (r *bookingRepository) FindByUser(ctx context.Context, userID string, filter BookingFilter) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Duration != nil {
		q = q.Where("duration = ?", *filter.Duration)
	}
	if filter.Text != "" {
		q = q.Where("message ILIKE ?", "%"+escapeLike(filter.Text)+"%")
	}
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}
	return bookings, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so user-supplied text matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Update mirrors Delete's ownership protocol: read, compare owner, then write.
func (r *bookingRepository) Update(ctx context.Context, id, userID string, changes BookingChanges) (*models.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	updates := map[string]any{}
	if changes.Message != nil {
		updates["message"] = *changes.Message
	}
	if changes.Price != nil {
		updates["price"] = *changes.Price
	}
	if changes.Duration != nil {
		updates["duration"] = *changes.Duration
	}
	if changes.CheckInDate != nil {
		updates["check_in_date"] = *changes.CheckInDate
	}
	if len(updates) == 0 {
		return booking, nil
	}

	res := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdateFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUpdateFailed
	}

	return r.FindByID(ctx, id)
}

// Delete removes the booking after an ownership check and returns the record
// as it existed before deletion. The read and the delete are separate
// statements; no transaction guards the gap between them.
func (r *bookingRepository) Delete(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeleteFailed, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrDeleteFailed
	}

	return booking, nil
}
