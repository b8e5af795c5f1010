package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/metrics"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/repository"
)

// A user may hold at most this many bookings per room category, across all
// dates and slots.
const maxBookingsPerRoom = 2

var (
	ErrSlotTaken       = errors.New("this time slot is already booked")
	ErrBookingQuota    = errors.New("booking limit reached for this room category")
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID uint) ([]models.Booking, error)
	ListBookedSlots(ctx context.Context, roomKey, date string) ([]string, error)
	CancelBooking(ctx context.Context, userID, bookingID uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking admits a booking only when the slot is free and the user is
// under the per-room quota. Both checks run inside one transaction; the
// composite unique index backs the slot check, so a concurrent insert that
// slips past the read still fails with a conflict, not a double booking.
func (s *bookingService) CreateBooking(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the user row: serializes concurrent quota checks per user
		user, err := s.userRepo.FindByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		_, err = s.bookingRepo.FindBySlot(ctx, tx, roomKey, date, timeSlot)
		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		count, err := s.bookingRepo.CountByUserAndRoom(ctx, tx, userID, roomKey)
		if err != nil {
			return err
		}
		if count >= maxBookingsPerRoom {
			return ErrBookingQuota
		}

		booking := &models.Booking{
			UserID:      userID,
			RoomKey:     roomKey,
			RoomName:    roomName,
			BookingDate: date,
			TimeSlot:    timeSlot,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}

		booking.User = user
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues(roomKey).Inc()
	return result, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

func (s *bookingService) ListBookedSlots(ctx context.Context, roomKey, date string) ([]string, error) {
	return s.bookingRepo.FindSlots(ctx, roomKey, date)
}

// CancelBooking deletes the booking if it exists and belongs to the caller.
func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uint) error {
	affected, err := s.bookingRepo.DeleteOwned(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
