package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/repository"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course code already exists")
)

// CourseStudent is one approved registrant of a course, with the grade for
// that semester when one has been assigned.
type CourseStudent struct {
	StudentNumber string
	StudentName   string
	Grade         *string
	Semester      int
	Year          int
}

type CourseService interface {
	CreateCourse(ctx context.Context, adminID uint, code, title string, credits int) (*models.Course, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id uint, code, title string, credits int) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uint) error
	ListCourseStudents(ctx context.Context, courseID uint) ([]CourseStudent, error)
}

type courseService struct {
	courseRepo   repository.CourseRepository
	regRepo      repository.RegistrationRepository
	gradeRepo    repository.GradeRepository
	chatroomRepo repository.ChatroomRepository
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	regRepo repository.RegistrationRepository,
	gradeRepo repository.GradeRepository,
	chatroomRepo repository.ChatroomRepository,
) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		regRepo:      regRepo,
		gradeRepo:    gradeRepo,
		chatroomRepo: chatroomRepo,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, adminID uint, code, title string, credits int) (*models.Course, error) {
	course := &models.Course{Code: code, Title: title, Credits: credits}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeExists
		}
		return nil, err
	}

	// Discussion-room setup is a side effect; its failure never fails the
	// course creation.
	room := &models.Chatroom{
		CourseID:  course.ID,
		RoomKey:   fmt.Sprintf("course_%d", course.ID),
		CreatedBy: adminID,
	}
	if err := s.chatroomRepo.Create(ctx, room); err != nil {
		log.Printf("[course] failed to create chatroom for course %d: %v", course.ID, err)
	} else if err := s.chatroomRepo.AddMember(ctx, room.ID, adminID, models.RoleAdmin); err != nil {
		log.Printf("[course] failed to add admin to chatroom %d: %v", room.ID, err)
	}

	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.FindAll(ctx)
}

func (s *courseService) UpdateCourse(ctx context.Context, id uint, code, title string, credits int) (*models.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Code = code
	course.Title = title
	course.Credits = credits
	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeExists
		}
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes the course row only. Registrations and grades that
// reference it are left in place as historical records.
func (s *courseService) DeleteCourse(ctx context.Context, id uint) error {
	if _, err := s.GetCourse(ctx, id); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

func (s *courseService) ListCourseStudents(ctx context.Context, courseID uint) ([]CourseStudent, error) {
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	regs, err := s.regRepo.FindApprovedByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	grades, err := s.gradeRepo.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	type tuple struct {
		studentID uint
		semester  int
		year      int
	}
	gradeByTuple := make(map[tuple]string, len(grades))
	for _, g := range grades {
		gradeByTuple[tuple{g.StudentID, g.Semester, g.Year}] = g.Grade
	}

	students := make([]CourseStudent, 0, len(regs))
	for _, reg := range regs {
		cs := CourseStudent{Semester: reg.Semester, Year: reg.Year}
		if reg.Student != nil {
			cs.StudentNumber = reg.Student.StudentID
			cs.StudentName = reg.Student.Name
		}
		if letter, ok := gradeByTuple[tuple{reg.StudentID, reg.Semester, reg.Year}]; ok {
			cs.Grade = &letter
		}
		students = append(students, cs)
	}
	return students, nil
}
