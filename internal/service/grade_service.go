package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/grading"
	"github.com/seportal/uniportal/internal/metrics"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/notify"
	"github.com/seportal/uniportal/internal/repository"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")
)

// Transcript is the aggregated grade view for one student. TotalCredits
// counts distinct approved courses (attempted); EarnedCredits counts graded
// ones.
type Transcript struct {
	Student       *models.User
	Grades        []models.Grade
	TotalCredits  int
	EarnedCredits int
	GPA           float64
}

type GradeService interface {
	AssignGrade(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error)
	ListGrades(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error)
	GetTranscript(ctx context.Context, studentID uint) (*Transcript, error)
}

type gradeService struct {
	gradeRepo  repository.GradeRepository
	regRepo    repository.RegistrationRepository
	userRepo   repository.UserRepository
	courseRepo repository.CourseRepository
	notifier   notify.Notifier
}

func NewGradeService(
	gradeRepo repository.GradeRepository,
	regRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
	notifier notify.Notifier,
) GradeService {
	return &gradeService{
		gradeRepo:  gradeRepo,
		regRepo:    regRepo,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		notifier:   notifier,
	}
}

// AssignGrade upserts a grade for an approved registration tuple. Repeating
// the call updates the stored letter in place.
func (s *gradeService) AssignGrade(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error) {
	var gradeID uint
	var courseCode string

	err := s.gradeRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, code, err := s.assignGradeTx(ctx, tx, studentID, courseID, letter, semester, year)
		if err != nil {
			return err
		}
		gradeID, courseCode = id, code
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Enqueue(ctx, studentID, "grade_released", "Grade Released",
		fmt.Sprintf("Your grade for %s has been released: %s", courseCode, letter))

	metrics.GradesAssigned.Inc()
	return s.gradeRepo.FindByID(ctx, gradeID)
}

func (s *gradeService) assignGradeTx(ctx context.Context, tx *gorm.DB, studentID, courseID uint, letter string, semester, year int) (uint, string, error) {
	if _, err := s.userRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrStudentNotFound
		}
		return 0, "", err
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrCourseNotFound
		}
		return 0, "", err
	}

	_, err = s.regRepo.FindApprovedTuple(ctx, tx, studentID, courseID, semester, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", ErrNotEnrolled
		}
		return 0, "", err
	}

	existing, err := s.gradeRepo.FindByTuple(ctx, tx, studentID, courseID, semester, year)
	if err == nil {
		if err := s.gradeRepo.UpdateValue(ctx, tx, existing.ID, letter); err != nil {
			return 0, "", err
		}
		return existing.ID, course.Code, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", err
	}

	grade := &models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  semester,
		Year:      year,
		Grade:     letter,
	}
	if err := s.gradeRepo.Create(ctx, tx, grade); err != nil {
		// Lost a race with a concurrent first assignment for the same
		// tuple: treat it as the update-in-place case.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, ferr := s.gradeRepo.FindByTuple(ctx, tx, studentID, courseID, semester, year)
			if ferr != nil {
				return 0, "", ferr
			}
			if uerr := s.gradeRepo.UpdateValue(ctx, tx, winner.ID, letter); uerr != nil {
				return 0, "", uerr
			}
			return winner.ID, course.Code, nil
		}
		return 0, "", err
	}
	return grade.ID, course.Code, nil
}

func (s *gradeService) ListGrades(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
	return s.gradeRepo.FindFiltered(ctx, studentID, courseID)
}

func (s *gradeService) GetTranscript(ctx context.Context, studentID uint) (*Transcript, error) {
	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	grades, err := s.gradeRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	approved, err := s.regRepo.FindApprovedByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// Attempted credits: each approved course counted once, graded or not.
	seen := make(map[uint]bool, len(approved))
	totalCredits := 0
	for _, reg := range approved {
		if reg.Course == nil || seen[reg.CourseID] {
			continue
		}
		seen[reg.CourseID] = true
		totalCredits += reg.Course.Credits
	}

	earnedCredits := 0
	courseGrades := make([]grading.CourseGrade, 0, len(grades))
	for _, g := range grades {
		if g.Course == nil {
			continue
		}
		earnedCredits += g.Course.Credits
		courseGrades = append(courseGrades, grading.CourseGrade{
			Letter:  g.Grade,
			Credits: g.Course.Credits,
		})
	}

	return &Transcript{
		Student:       student,
		Grades:        grades,
		TotalCredits:  totalCredits,
		EarnedCredits: earnedCredits,
		GPA:           grading.GPA(courseGrades),
	}, nil
}
