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

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/registrations", h.Register)
	g.GET("/registrations", h.ListRegistrations)
	g.PATCH("/registrations/:id/status", h.UpdateStatus, auth.RequireAdmin)
}

func (h *RegistrationHandler) Register(c echo.Context) error {
	p := auth.CurrentPrincipal(c)
	if p.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "students only")
	}

	var req dto.RegisterCoursesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	regs, err := h.svc.Register(c.Request().Context(), p.UserID, req.CourseIDs, req.Semester, req.Year)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RegistrationResponse, len(regs))
	for i, reg := range regs {
		resp[i] = dto.ToRegistrationResponse(&reg)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	var status *models.RegistrationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.RegistrationStatus(s)
		status = &rs
	}

	p := auth.CurrentPrincipal(c)
	var (
		regs []models.Registration
		err  error
	)
	if p.IsAdmin() {
		regs, err = h.svc.ListAll(c.Request().Context(), status)
	} else {
		regs, err = h.svc.ListByStudent(c.Request().Context(), p.UserID, status)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RegistrationResponse, len(regs))
	for i, reg := range regs {
		resp[i] = dto.ToRegistrationResponse(&reg)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration id")
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reg, err := h.svc.SetStatus(c.Request().Context(), uint(id), models.RegistrationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRegistrationDecided):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}
