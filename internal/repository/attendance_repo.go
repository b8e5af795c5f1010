package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type AttendanceRepository interface {
	CreateSession(ctx context.Context, session *models.AttendanceSession) error
	FindSessionByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AttendanceSession, error)
	FindSessions(ctx context.Context, courseID *uint) ([]models.AttendanceSession, error)
	FindSessionsForStudent(ctx context.Context, studentID uint) ([]models.AttendanceSession, error)
	CreateRecord(ctx context.Context, tx *gorm.DB, record *models.AttendanceRecord) error
	FindRecord(ctx context.Context, tx *gorm.DB, sessionID, studentID uint) (*models.AttendanceRecord, error)
	FindRecordsBySession(ctx context.Context, sessionID uint) ([]models.AttendanceRecord, error)
	GetDB() *gorm.DB
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *attendanceRepository) CreateSession(ctx context.Context, session *models.AttendanceSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *attendanceRepository) FindSessionByID(ctx context.Context, tx *gorm.DB, id uint) (*models.AttendanceSession, error) {
	var session models.AttendanceSession
	if err := tx.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *attendanceRepository) FindSessions(ctx context.Context, courseID *uint) ([]models.AttendanceSession, error) {
	q := r.db.WithContext(ctx)
	if courseID != nil {
		q = q.Where("course_id = ?", *courseID)
	}
	var sessions []models.AttendanceSession
	if err := q.Order("session_date DESC, time_slot DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindSessionsForStudent returns sessions of courses the student holds an
// approved registration for.
func (r *attendanceRepository) FindSessionsForStudent(ctx context.Context, studentID uint) ([]models.AttendanceSession, error) {
	var sessions []models.AttendanceSession
	err := r.db.WithContext(ctx).
		Distinct("attendance_sessions.*").
		Joins("JOIN registrations ON registrations.course_id = attendance_sessions.course_id").
		Where("registrations.student_id = ? AND registrations.status = ?", studentID, models.StatusApproved).
		Order("session_date DESC, time_slot DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *attendanceRepository) CreateRecord(ctx context.Context, tx *gorm.DB, record *models.AttendanceRecord) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) FindRecord(ctx context.Context, tx *gorm.DB, sessionID, studentID uint) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := tx.WithContext(ctx).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) FindRecordsBySession(ctx context.Context, sessionID uint) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("checked_in_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
