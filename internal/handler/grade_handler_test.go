package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/seportal/uniportal/internal/dto"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/service"
)

// --- Mock GradeService ---

type mockGradeService struct {
	assignFn     func(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error)
	listFn       func(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error)
	transcriptFn func(ctx context.Context, studentID uint) (*service.Transcript, error)
}

func (m *mockGradeService) AssignGrade(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error) {
	return m.assignFn(ctx, studentID, courseID, letter, semester, year)
}
func (m *mockGradeService) ListGrades(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
	return m.listFn(ctx, studentID, courseID)
}
func (m *mockGradeService) GetTranscript(ctx context.Context, studentID uint) (*service.Transcript, error) {
	return m.transcriptFn(ctx, studentID)
}

// --- Tests ---

func TestAssignGrade_Handler_Success(t *testing.T) {
	svc := &mockGradeService{
		assignFn: func(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error) {
			return &models.Grade{ID: 1, StudentID: studentID, CourseID: courseID, Grade: letter, Semester: semester, Year: year}, nil
		},
	}

	body := `{"student_id":7,"course_id":10,"grade":"A","semester":1,"year":2026}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/grades", body, adminPrincipal)

	err := NewGradeHandler(svc).AssignGrade(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.GradeResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Grade)
	assert.Equal(t, uint(7), resp.StudentID)
}

func TestAssignGrade_Handler_NotEnrolled(t *testing.T) {
	svc := &mockGradeService{
		assignFn: func(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error) {
			return nil, service.ErrNotEnrolled
		},
	}

	body := `{"student_id":7,"course_id":10,"grade":"B","semester":1,"year":2026}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/grades", body, adminPrincipal)

	err := NewGradeHandler(svc).AssignGrade(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAssignGrade_Handler_StudentNotFound(t *testing.T) {
	svc := &mockGradeService{
		assignFn: func(ctx context.Context, studentID, courseID uint, letter string, semester, year int) (*models.Grade, error) {
			return nil, service.ErrStudentNotFound
		},
	}

	body := `{"student_id":999,"course_id":10,"grade":"B","semester":1,"year":2026}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/grades", body, adminPrincipal)

	err := NewGradeHandler(svc).AssignGrade(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestAssignGrade_Handler_MissingGrade(t *testing.T) {
	body := `{"student_id":7,"course_id":10,"semester":1,"year":2026}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/grades", body, adminPrincipal)

	err := NewGradeHandler(nil).AssignGrade(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListGrades_Handler_StudentForcedToOwn(t *testing.T) {
	var gotStudentID *uint
	svc := &mockGradeService{
		listFn: func(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
			gotStudentID = studentID
			return nil, nil
		},
	}

	// A student asking for someone else's grades still gets their own.
	c, rec := newTestContext(http.MethodGet, "/api/v1/grades?student_id=42", "", studentPrincipal)

	err := NewGradeHandler(svc).ListGrades(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, gotStudentID) {
		assert.Equal(t, studentPrincipal.UserID, *gotStudentID)
	}
}

func TestListGrades_Handler_AdminFilters(t *testing.T) {
	var gotStudentID, gotCourseID *uint
	svc := &mockGradeService{
		listFn: func(ctx context.Context, studentID, courseID *uint) ([]models.Grade, error) {
			gotStudentID = studentID
			gotCourseID = courseID
			return []models.Grade{{ID: 1, StudentID: 42, CourseID: 10, Grade: "A"}}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/grades?student_id=42&course_id=10", "", adminPrincipal)

	err := NewGradeHandler(svc).ListGrades(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, gotStudentID) {
		assert.Equal(t, uint(42), *gotStudentID)
	}
	if assert.NotNil(t, gotCourseID) {
		assert.Equal(t, uint(10), *gotCourseID)
	}
}

func TestGetTranscript_Handler_Own(t *testing.T) {
	svc := &mockGradeService{
		transcriptFn: func(ctx context.Context, studentID uint) (*service.Transcript, error) {
			return &service.Transcript{
				Student: &models.User{ID: studentID, StudentID: "6401234", Name: "Ploy S."},
				Grades: []models.Grade{
					{Grade: "A", Semester: 1, Year: 2026, Course: &models.Course{Code: "CS101", Title: "Intro", Credits: 3}},
				},
				TotalCredits:  6,
				EarnedCredits: 3,
				GPA:           4.0,
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/transcript", "", studentPrincipal)

	err := NewGradeHandler(svc).GetMyTranscript(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TranscriptResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, studentPrincipal.UserID, resp.StudentID)
	assert.Equal(t, "6401234", resp.StudentNumber)
	assert.Equal(t, 6, resp.TotalCredits)
	assert.Equal(t, 3, resp.EarnedCredits)
	assert.Equal(t, 4.0, resp.GPA)
	assert.Len(t, resp.Courses, 1)
	assert.Equal(t, "CS101", resp.Courses[0].CourseCode)
}

func TestGetTranscript_Handler_OtherStudentForbidden(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/api/v1/transcript/42", "", studentPrincipal)
	c.SetParamNames("studentID")
	c.SetParamValues("42")

	err := NewGradeHandler(nil).GetTranscript(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestGetTranscript_Handler_AdminAnyStudent(t *testing.T) {
	var gotStudentID uint
	svc := &mockGradeService{
		transcriptFn: func(ctx context.Context, studentID uint) (*service.Transcript, error) {
			gotStudentID = studentID
			return &service.Transcript{GPA: 0}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/transcript/42", "", adminPrincipal)
	c.SetParamNames("studentID")
	c.SetParamValues("42")

	err := NewGradeHandler(svc).GetTranscript(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), gotStudentID)
}

func TestGetTranscript_Handler_StudentNotFound(t *testing.T) {
	svc := &mockGradeService{
		transcriptFn: func(ctx context.Context, studentID uint) (*service.Transcript, error) {
			return nil, service.ErrStudentNotFound
		},
	}

	c, _ := newTestContext(http.MethodGet, "/api/v1/transcript/99", "", adminPrincipal)
	c.SetParamNames("studentID")
	c.SetParamValues("99")

	err := NewGradeHandler(svc).GetTranscript(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
