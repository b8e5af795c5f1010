package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/auth"
	"github.com/seportal/uniportal/internal/metrics"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/notify"
	"github.com/seportal/uniportal/internal/repository"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrAlreadyAttended = errors.New("already attended this event")
)

type EventService interface {
	CreateEvent(ctx context.Context, adminID uint, name, date, timeSlot string) (*models.Event, error)
	Attend(ctx context.Context, p auth.Principal, eventID uint) (*models.EventAttendance, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListAttendance(ctx context.Context, eventID uint) ([]models.EventAttendance, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	notifier  notify.Notifier
}

func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository, notifier notify.Notifier) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// CreateEvent announces an event and notifies every non-admin user.
func (s *eventService) CreateEvent(ctx context.Context, adminID uint, name, date, timeSlot string) (*models.Event, error) {
	event := &models.Event{
		Name:      name,
		EventDate: date,
		TimeSlot:  timeSlot,
		CreatedBy: adminID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	students, err := s.userRepo.FindStudents(ctx)
	if err != nil {
		return event, nil // announcement stands even if fan-out fails
	}
	for _, student := range students {
		s.notifier.Enqueue(ctx, student.ID, "event",
			fmt.Sprintf("Event Announcement - %s", name),
			fmt.Sprintf("Event '%s' is scheduled on %s at %s.", name, date, timeSlot))
	}

	return event, nil
}

// Attend records event attendance once per (event, student). Unlike course
// check-in there is no enrollment precondition.
func (s *eventService) Attend(ctx context.Context, p auth.Principal, eventID uint) (*models.EventAttendance, error) {
	var result *models.EventAttendance

	err := s.eventRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.eventRepo.FindByID(ctx, tx, eventID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		_, err := s.eventRepo.FindAttendance(ctx, tx, eventID, p.UserID)
		if err == nil {
			return ErrAlreadyAttended
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := &models.EventAttendance{
			EventID:       eventID,
			StudentID:     p.UserID,
			StudentNumber: p.StudentID,
			StudentName:   p.Name,
			AttendedAt:    time.Now(),
		}
		if err := s.eventRepo.CreateAttendance(ctx, tx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyAttended
			}
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EventAttendances.Inc()
	return result, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) ListAttendance(ctx context.Context, eventID uint) ([]models.EventAttendance, error) {
	if _, err := s.eventRepo.FindByID(ctx, s.eventRepo.GetDB(), eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.eventRepo.FindAttendanceByEvent(ctx, eventID)
}
