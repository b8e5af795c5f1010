package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/seportal/uniportal/internal/auth"
	"github.com/seportal/uniportal/internal/dto"
	"github.com/seportal/uniportal/internal/service"
)

type GradeHandler struct {
	svc service.GradeService
}

func NewGradeHandler(svc service.GradeService) *GradeHandler {
	return &GradeHandler{svc: svc}
}

func (h *GradeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/grades", h.AssignGrade, auth.RequireAdmin)
	g.GET("/grades", h.ListGrades)
	g.GET("/transcript", h.GetMyTranscript)
	g.GET("/transcript/:studentID", h.GetTranscript)
}

func (h *GradeHandler) AssignGrade(c echo.Context) error {
	var req dto.AssignGradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	grade, err := h.svc.AssignGrade(c.Request().Context(), req.StudentID, req.CourseID, req.Grade, req.Semester, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCourseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotEnrolled):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToGradeResponse(grade))
}

func (h *GradeHandler) ListGrades(c echo.Context) error {
	p := auth.CurrentPrincipal(c)

	var studentID, courseID *uint
	if p.IsAdmin() {
		if s := c.QueryParam("student_id"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid student_id")
			}
			id := uint(v)
			studentID = &id
		}
		if s := c.QueryParam("course_id"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid course_id")
			}
			id := uint(v)
			courseID = &id
		}
	} else {
		// Students only ever see their own grades.
		id := p.UserID
		studentID = &id
	}

	grades, err := h.svc.ListGrades(c.Request().Context(), studentID, courseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GradeResponse, len(grades))
	for i, g := range grades {
		resp[i] = dto.ToGradeResponse(&g)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GradeHandler) GetMyTranscript(c echo.Context) error {
	p := auth.CurrentPrincipal(c)
	return h.renderTranscript(c, p.UserID)
}

func (h *GradeHandler) GetTranscript(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("studentID"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}

	p := auth.CurrentPrincipal(c)
	if !p.IsAdmin() && p.UserID != uint(id) {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return h.renderTranscript(c, uint(id))
}

func (h *GradeHandler) renderTranscript(c echo.Context, studentID uint) error {
	transcript, err := h.svc.GetTranscript(c.Request().Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	courses := make([]dto.TranscriptCourse, 0, len(transcript.Grades))
	for _, g := range transcript.Grades {
		tc := dto.TranscriptCourse{
			Grade:    g.Grade,
			Semester: g.Semester,
			Year:     g.Year,
		}
		if g.Course != nil {
			tc.CourseCode = g.Course.Code
			tc.CourseTitle = g.Course.Title
			tc.Credits = g.Course.Credits
		}
		courses = append(courses, tc)
	}

	resp := dto.TranscriptResponse{
		StudentID:     studentID,
		Courses:       courses,
		TotalCredits:  transcript.TotalCredits,
		EarnedCredits: transcript.EarnedCredits,
		GPA:           transcript.GPA,
	}
	if transcript.Student != nil {
		resp.StudentName = transcript.Student.Name
		resp.StudentNumber = transcript.Student.StudentID
	}
	return c.JSON(http.StatusOK, resp)
}
