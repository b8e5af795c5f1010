package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	CreateAttendance(ctx context.Context, tx *gorm.DB, record *models.EventAttendance) error
	FindAttendance(ctx context.Context, tx *gorm.DB, eventID, studentID uint) (*models.EventAttendance, error)
	FindAttendanceByEvent(ctx context.Context, eventID uint) ([]models.EventAttendance, error)
	GetDB() *gorm.DB
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Order("event_date DESC, time_slot DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CreateAttendance(ctx context.Context, tx *gorm.DB, record *models.EventAttendance) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *eventRepository) FindAttendance(ctx context.Context, tx *gorm.DB, eventID, studentID uint) (*models.EventAttendance, error) {
	var record models.EventAttendance
	err := tx.WithContext(ctx).
		Where("event_id = ? AND student_id = ?", eventID, studentID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *eventRepository) FindAttendanceByEvent(ctx context.Context, eventID uint) ([]models.EventAttendance, error) {
	var records []models.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("attended_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
