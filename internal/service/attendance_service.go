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
	ErrSessionNotFound  = errors.New("attendance session not found")
	ErrAlreadyCheckedIn = errors.New("already checked in for this session")
	ErrNotRegistered    = errors.New("not registered for this course")
)

type AttendanceService interface {
	CreateSession(ctx context.Context, adminID, courseID uint, date, timeSlot string) (*models.AttendanceSession, error)
	CheckIn(ctx context.Context, p auth.Principal, sessionID uint) (*models.AttendanceRecord, error)
	ListSessions(ctx context.Context, courseID *uint) ([]models.AttendanceSession, error)
	ListSessionsForStudent(ctx context.Context, studentID uint) ([]models.AttendanceSession, error)
	ListRecords(ctx context.Context, sessionID uint) ([]models.AttendanceRecord, error)
}

type attendanceService struct {
	attRepo    repository.AttendanceRepository
	courseRepo repository.CourseRepository
	regRepo    repository.RegistrationRepository
	notifier   notify.Notifier
}

func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	courseRepo repository.CourseRepository,
	regRepo repository.RegistrationRepository,
	notifier notify.Notifier,
) AttendanceService {
	return &attendanceService{
		attRepo:    attRepo,
		courseRepo: courseRepo,
		regRepo:    regRepo,
		notifier:   notifier,
	}
}

// CreateSession opens a check-in window for one course meeting and notifies
// every approved registrant of that course.
func (s *attendanceService) CreateSession(ctx context.Context, adminID, courseID uint, date, timeSlot string) (*models.AttendanceSession, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	session := &models.AttendanceSession{
		CourseID:    courseID,
		CourseCode:  course.Code,
		CourseTitle: course.Title,
		SessionDate: date,
		TimeSlot:    timeSlot,
		CreatedBy:   adminID,
	}
	if err := s.attRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	regs, err := s.regRepo.FindApprovedByCourse(ctx, courseID)
	if err != nil {
		return session, nil // session stands even if fan-out fails
	}
	for _, reg := range regs {
		s.notifier.Enqueue(ctx, reg.StudentID, "attendance",
			fmt.Sprintf("Attendance Check Available - %s", course.Code),
			fmt.Sprintf("Attendance check is available for %s on %s at %s.",
				course.Code, date, timeSlot))
	}

	return session, nil
}

// CheckIn records attendance once per (session, student). The student must
// hold an approved registration for the session's course.
func (s *attendanceService) CheckIn(ctx context.Context, p auth.Principal, sessionID uint) (*models.AttendanceRecord, error) {
	var result *models.AttendanceRecord

	err := s.attRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session, err := s.attRepo.FindSessionByID(ctx, tx, sessionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		_, err = s.attRepo.FindRecord(ctx, tx, sessionID, p.UserID)
		if err == nil {
			return ErrAlreadyCheckedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		registered, err := s.regRepo.HasApprovedForCourse(ctx, tx, p.UserID, session.CourseID)
		if err != nil {
			return err
		}
		if !registered {
			return ErrNotRegistered
		}

		record := &models.AttendanceRecord{
			SessionID:     sessionID,
			StudentID:     p.UserID,
			StudentNumber: p.StudentID,
			StudentName:   p.Name,
			CheckedInAt:   time.Now(),
		}
		if err := s.attRepo.CreateRecord(ctx, tx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCheckedIn
			}
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CheckIns.Inc()
	return result, nil
}

func (s *attendanceService) ListSessions(ctx context.Context, courseID *uint) ([]models.AttendanceSession, error) {
	return s.attRepo.FindSessions(ctx, courseID)
}

func (s *attendanceService) ListSessionsForStudent(ctx context.Context, studentID uint) ([]models.AttendanceSession, error) {
	return s.attRepo.FindSessionsForStudent(ctx, studentID)
}

func (s *attendanceService) ListRecords(ctx context.Context, sessionID uint) ([]models.AttendanceRecord, error) {
	if _, err := s.attRepo.FindSessionByID(ctx, s.attRepo.GetDB(), sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return s.attRepo.FindRecordsBySession(ctx, sessionID)
}
