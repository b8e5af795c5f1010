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

type CourseHandler struct {
	svc service.CourseService
}

func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/courses", h.CreateCourse, auth.RequireAdmin)
	g.GET("/courses", h.ListCourses)
	g.GET("/courses/:id", h.GetCourse)
	g.PUT("/courses/:id", h.UpdateCourse, auth.RequireAdmin)
	g.DELETE("/courses/:id", h.DeleteCourse, auth.RequireAdmin)
	g.GET("/courses/:id/students", h.ListCourseStudents, auth.RequireAdmin)
}

func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req dto.CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := auth.CurrentPrincipal(c)
	course, err := h.svc.CreateCourse(c.Request().Context(), p.UserID, req.Code, req.Title, req.Credits)
	if err != nil {
		if errors.Is(err, service.ErrCourseCodeExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.svc.ListCourses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CourseResponse, len(courses))
	for i, course := range courses {
		resp[i] = dto.ToCourseResponse(&course)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	course, err := h.svc.GetCourse(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	var req dto.CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	course, err := h.svc.UpdateCourse(c.Request().Context(), uint(id), req.Code, req.Title, req.Credits)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCourseCodeExists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	if err := h.svc.DeleteCourse(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "course deleted"})
}

func (h *CourseHandler) ListCourseStudents(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid course id")
	}

	students, err := h.svc.ListCourseStudents(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.CourseStudentResponse, len(students))
	for i, s := range students {
		resp[i] = dto.CourseStudentResponse{
			StudentNumber: s.StudentNumber,
			StudentName:   s.StudentName,
			Grade:         s.Grade,
			Semester:      s.Semester,
			Year:          s.Year,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
