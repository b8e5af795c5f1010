package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindBySlot(ctx context.Context, tx *gorm.DB, roomKey, date, timeSlot string) (*models.Booking, error)
	CountByUserAndRoom(ctx context.Context, tx *gorm.DB, userID uint, roomKey string) (int64, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	FindSlots(ctx context.Context, roomKey, date string) ([]string, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindBySlot(ctx context.Context, tx *gorm.DB, roomKey, date, timeSlot string) (*models.Booking, error) {
	var booking models.Booking
	err := tx.WithContext(ctx).
		Where("room_key = ? AND booking_date = ? AND time_slot = ?", roomKey, date, timeSlot).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CountByUserAndRoom counts the user's bookings for a room category across
// all dates; the quota is per category, not per date.
func (r *bookingRepository) CountByUserAndRoom(ctx context.Context, tx *gorm.DB, userID uint, roomKey string) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ? AND room_key = ?", userID, roomKey).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) FindByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("booking_date ASC, time_slot ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindSlots(ctx context.Context, roomKey, date string) ([]string, error) {
	var slots []string
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_key = ? AND booking_date = ?", roomKey, date).
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// DeleteOwned removes a booking only when it belongs to the given user and
// reports how many rows matched.
func (r *bookingRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Booking{})
	return result.RowsAffected, result.Error
}
