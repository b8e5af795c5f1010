package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/metrics"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/notify"
	"github.com/seportal/uniportal/internal/repository"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidStatus        = errors.New("status must be 'approved' or 'rejected'")
	ErrRegistrationDecided  = errors.New("registration has already been decided")
)

type RegistrationService interface {
	Register(ctx context.Context, studentID uint, courseIDs []uint, semester, year int) ([]models.Registration, error)
	ListAll(ctx context.Context, status *models.RegistrationStatus) ([]models.Registration, error)
	ListByStudent(ctx context.Context, studentID uint, status *models.RegistrationStatus) ([]models.Registration, error)
	SetStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error)
}

type registrationService struct {
	regRepo      repository.RegistrationRepository
	courseRepo   repository.CourseRepository
	chatroomRepo repository.ChatroomRepository
	notifier     notify.Notifier
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	courseRepo repository.CourseRepository,
	chatroomRepo repository.ChatroomRepository,
	notifier notify.Notifier,
) RegistrationService {
	return &registrationService{
		regRepo:      regRepo,
		courseRepo:   courseRepo,
		chatroomRepo: chatroomRepo,
		notifier:     notifier,
	}
}

// Register creates a pending registration per course id. An already-existing
// tuple is skipped silently; a missing course id aborts with ErrCourseNotFound,
// leaving registrations created for earlier ids in place.
func (s *registrationService) Register(ctx context.Context, studentID uint, courseIDs []uint, semester, year int) ([]models.Registration, error) {
	var createdIDs []uint

	for _, courseID := range courseIDs {
		if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: course %d", ErrCourseNotFound, courseID)
			}
			return nil, err
		}

		err := s.regRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := s.regRepo.FindByTuple(ctx, tx, studentID, courseID, semester, year)
			if err == nil {
				return nil // already registered, skip silently
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			reg := &models.Registration{
				StudentID: studentID,
				CourseID:  courseID,
				Semester:  semester,
				Year:      year,
				Status:    models.StatusPending,
			}
			if err := s.regRepo.Create(ctx, tx, reg); err != nil {
				// Lost a race with an identical registration: same outcome
				// as the skip above.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return nil
				}
				return err
			}
			createdIDs = append(createdIDs, reg.ID)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	created := make([]models.Registration, 0, len(createdIDs))
	for _, id := range createdIDs {
		reg, err := s.regRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		created = append(created, *reg)
		metrics.RegistrationsCreated.Inc()
	}
	return created, nil
}

func (s *registrationService) ListAll(ctx context.Context, status *models.RegistrationStatus) ([]models.Registration, error) {
	return s.regRepo.FindAll(ctx, status)
}

func (s *registrationService) ListByStudent(ctx context.Context, studentID uint, status *models.RegistrationStatus) ([]models.Registration, error) {
	return s.regRepo.FindByStudent(ctx, studentID, status)
}

// SetStatus moves a pending registration to approved or rejected. Both
// target states are terminal. On approval the student joins the course's
// discussion room and is notified; those side effects are logged and
// swallowed, never rolling back the transition.
func (s *registrationService) SetStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, ErrInvalidStatus
	}

	var studentID, courseID uint
	err := s.regRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reg, err := s.regRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if reg.Status != models.StatusPending {
			return ErrRegistrationDecided
		}

		if err := s.regRepo.UpdateStatus(ctx, tx, id, status); err != nil {
			return err
		}
		studentID = reg.StudentID
		courseID = reg.CourseID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == models.StatusApproved {
		s.joinCourseRoom(ctx, courseID, studentID)
	}

	title := "Course Registration Rejected"
	if status == models.StatusApproved {
		title = "Course Registration Approved"
	}
	s.notifier.Enqueue(ctx, studentID, "registration_update", title,
		fmt.Sprintf("Your registration for course has been %s.", status))

	metrics.RegistrationsDecided.WithLabelValues(string(status)).Inc()
	return s.regRepo.FindByID(ctx, id)
}

func (s *registrationService) joinCourseRoom(ctx context.Context, courseID, studentID uint) {
	room, err := s.chatroomRepo.FindByCourse(ctx, courseID)
	if err != nil {
		log.Printf("[registration] no chatroom for course %d: %v", courseID, err)
		return
	}
	if err := s.chatroomRepo.AddMember(ctx, room.ID, studentID, "member"); err != nil {
		log.Printf("[registration] failed to add student %d to chatroom %d: %v", studentID, room.ID, err)
	}
}
