package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type GradeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, grade *models.Grade) error
	UpdateValue(ctx context.Context, tx *gorm.DB, id uint, letter string) error
	FindByID(ctx context.Context, id uint) (*models.Grade, error)
	FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Grade, error)
	FindByStudent(ctx context.Context, studentID uint) ([]models.Grade, error)
	FindByCourse(ctx context.Context, courseID uint) ([]models.Grade, error)
	FindFiltered(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error)
	GetDB() *gorm.DB
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *gradeRepository) Create(ctx context.Context, tx *gorm.DB, grade *models.Grade) error {
	return tx.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepository) UpdateValue(ctx context.Context, tx *gorm.DB, id uint, letter string) error {
	return tx.WithContext(ctx).
		Model(&models.Grade{}).
		Where("id = ?", id).
		Update("grade", letter).Error
}

func (r *gradeRepository) FindByID(ctx context.Context, id uint) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		First(&grade, id).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) FindByTuple(ctx context.Context, tx *gorm.DB, studentID, courseID uint, semester, year int) (*models.Grade, error) {
	var grade models.Grade
	err := tx.WithContext(ctx).
		Where("student_id = ? AND course_id = ? AND semester = ? AND year = ?",
			studentID, courseID, semester, year).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) FindByStudent(ctx context.Context, studentID uint) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("year DESC, semester DESC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) FindByCourse(ctx context.Context, courseID uint) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) FindFiltered(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
	q := r.db.WithContext(ctx).Preload("Student").Preload("Course")
	if studentID != nil {
		q = q.Where("student_id = ?", *studentID)
	}
	if courseID != nil {
		q = q.Where("course_id = ?", *courseID)
	}
	var grades []models.Grade
	if err := q.Order("created_at DESC").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}
