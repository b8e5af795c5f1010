package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type RegistrationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error
	FindByID(ctx context.Context, id uint) (*models.Registration, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Registration, error)
	FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error)
	FindApprovedTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error)
	HasApprovedForCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error)
	FindAll(ctx context.Context, status *models.RegistrationStatus) ([]models.Registration, error)
	FindByStudent(ctx context.Context, studentID uint, status *models.RegistrationStatus) ([]models.Registration, error)
	FindApprovedByCourse(ctx context.Context, courseID uint) ([]models.Registration, error)
	FindApprovedByStudent(ctx context.Context, studentID uint) ([]models.Registration, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RegistrationStatus) error
	GetDB() *gorm.DB
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *registrationRepository) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return tx.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := forUpdate(tx.WithContext(ctx)).
		First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error) {
	var reg models.Registration
	err := tx.WithContext(ctx).
		Where("student_id = ? AND course_id = ? AND semester = ? AND year = ?",
			studentID, courseID, semester, year).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindApprovedTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Registration, error) {
	var reg models.Registration
	err := tx.WithContext(ctx).
		Where("student_id = ? AND course_id = ? AND semester = ? AND year = ? AND status = ?",
			studentID, courseID, semester, year, models.StatusApproved).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) HasApprovedForCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Registration{}).
		Where("student_id = ? AND course_id = ? AND status = ?",
			studentID, courseID, models.StatusApproved).
		Count(&count).Error
	return count > 0, err
}

func (r *registrationRepository) FindAll(ctx context.Context, status *models.RegistrationStatus) ([]models.Registration, error) {
	q := r.db.WithContext(ctx).Preload("Student").Preload("Course")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var regs []models.Registration
	if err := q.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindByStudent(ctx context.Context, studentID uint, status *models.RegistrationStatus) ([]models.Registration, error) {
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("student_id = ?", studentID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var regs []models.Registration
	if err := q.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindApprovedByCourse(ctx context.Context, courseID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("course_id = ? AND status = ?", courseID, models.StatusApproved).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) FindApprovedByStudent(ctx context.Context, studentID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ? AND status = ?", studentID, models.StatusApproved).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.RegistrationStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Registration{}).
		Where("id = ?", id).
		Update("status", status).Error
}
