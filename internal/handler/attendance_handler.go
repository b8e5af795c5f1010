package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/seportal/uniportal/internal/auth"
	"github.com/seportal/uniportal/internal/dto"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/service"
)

type AttendanceHandler struct {
	svc service.AttendanceService
}

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/attendance/sessions", h.CreateSession, auth.RequireAdmin)
	g.GET("/attendance/sessions", h.ListSessions)
	g.POST("/attendance/sessions/:id/check-in", h.CheckIn)
	g.GET("/attendance/sessions/:id/records", h.ListRecords, auth.RequireAdmin)
}

func (h *AttendanceHandler) CreateSession(c echo.Context) error {
	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := auth.CurrentPrincipal(c)
	session, err := h.svc.CreateSession(c.Request().Context(), p.UserID, req.CourseID, req.SessionDate, req.TimeSlot)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	p := auth.CurrentPrincipal(c)
	record, err := h.svc.CheckIn(c.Request().Context(), p, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNotRegistered):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToAttendanceRecordResponse(record))
}

func (h *AttendanceHandler) ListSessions(c echo.Context) error {
	p := auth.CurrentPrincipal(c)

	if p.IsAdmin() {
		var courseID *uint
		if s := c.QueryParam("course_id"); s != "" {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid course_id")
			}
			id := uint(v)
			courseID = &id
		}
		sessions, err := h.svc.ListSessions(c.Request().Context(), courseID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return h.renderSessions(c, sessions)
	}

	sessions, err := h.svc.ListSessionsForStudent(c.Request().Context(), p.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.renderSessions(c, sessions)
}

func (h *AttendanceHandler) renderSessions(c echo.Context, sessions []models.AttendanceSession) error {
	resp := make([]dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = dto.ToSessionResponse(&s)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AttendanceHandler) ListRecords(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}

	records, err := h.svc.ListRecords(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AttendanceRecordResponse, len(records))
	for i, r := range records {
		resp[i] = dto.ToAttendanceRecordResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}
