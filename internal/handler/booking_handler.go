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

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/slots", h.ListBookedSlots)
	g.DELETE("/bookings/:id", h.CancelBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := auth.CurrentPrincipal(c)
	booking, err := h.svc.CreateBooking(c.Request().Context(), p.UserID, req.RoomKey, req.RoomName, req.BookingDate, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrBookingQuota):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	p := auth.CurrentPrincipal(c)
	bookings, err := h.svc.ListBookings(c.Request().Context(), p.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListBookedSlots(c echo.Context) error {
	roomKey := c.QueryParam("room_key")
	date := c.QueryParam("date")
	if roomKey == "" || date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "room_key and date are required")
	}

	slots, err := h.svc.ListBookedSlots(c.Request().Context(), roomKey, date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(http.StatusOK, dto.BookedSlotsResponse{BookedSlots: slots})
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	p := auth.CurrentPrincipal(c)
	if err := h.svc.CancelBooking(c.Request().Context(), p.UserID, uint(id)); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "booking cancelled"})
}
