package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/seportal/uniportal/internal/dto"
	"github.com/seportal/uniportal/internal/models"
	"github.com/seportal/uniportal/internal/service"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn func(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error)
	listFn   func(ctx context.Context, userID uint) ([]models.Booking, error)
	slotsFn  func(ctx context.Context, roomKey, date string) ([]string, error)
	cancelFn func(ctx context.Context, userID, bookingID uint) error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error) {
	return m.createFn(ctx, userID, roomKey, roomName, date, timeSlot)
}
func (m *mockBookingService) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	return m.listFn(ctx, userID)
}
func (m *mockBookingService) ListBookedSlots(ctx context.Context, roomKey, date string) ([]string, error) {
	return m.slotsFn(ctx, roomKey, date)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, userID, bookingID uint) error {
	return m.cancelFn(ctx, userID, bookingID)
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error) {
			return &models.Booking{
				ID:          1,
				UserID:      userID,
				RoomKey:     roomKey,
				RoomName:    roomName,
				BookingDate: date,
				TimeSlot:    timeSlot,
				CreatedAt:   time.Now(),
			}, nil
		},
	}

	body := `{"room_key":"library-a","room_name":"Library Room A","booking_date":"2026-09-15","time_slot":"10:00-12:00"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/bookings", body, studentPrincipal)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "library-a", resp.RoomKey)
	assert.Equal(t, "10:00-12:00", resp.TimeSlot)
}

func TestCreateBooking_Handler_SlotTaken(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error) {
			return nil, service.ErrSlotTaken
		},
	}

	body := `{"room_key":"library-a","room_name":"Library Room A","booking_date":"2026-09-15","time_slot":"10:00-12:00"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/bookings", body, studentPrincipal)

	err := NewBookingHandler(svc).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_QuotaReached(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, userID uint, roomKey, roomName, date, timeSlot string) (*models.Booking, error) {
			return nil, service.ErrBookingQuota
		},
	}

	body := `{"room_key":"library-a","room_name":"Library Room A","booking_date":"2026-09-15","time_slot":"13:00-15:00"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/bookings", body, studentPrincipal)

	err := NewBookingHandler(svc).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_MissingFields(t *testing.T) {
	body := `{"room_key":"library-a"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/bookings", body, studentPrincipal)

	err := NewBookingHandler(nil).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_BadDateFormat(t *testing.T) {
	body := `{"room_key":"library-a","room_name":"Library Room A","booking_date":"15/09/2026","time_slot":"10:00-12:00"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/bookings", body, studentPrincipal)

	err := NewBookingHandler(nil).CreateBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListBookings_Handler_ScopedToCaller(t *testing.T) {
	var gotUserID uint
	svc := &mockBookingService{
		listFn: func(ctx context.Context, userID uint) ([]models.Booking, error) {
			gotUserID = userID
			return []models.Booking{{ID: 3, UserID: userID, RoomKey: "gym"}}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/bookings", "", studentPrincipal)

	err := NewBookingHandler(svc).ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, studentPrincipal.UserID, gotUserID)

	var resp []dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "gym", resp[0].RoomKey)
}

func TestListBookedSlots_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		slotsFn: func(ctx context.Context, roomKey, date string) ([]string, error) {
			return []string{"10:00-12:00", "13:00-15:00"}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/bookings/slots?room_key=library-a&date=2026-09-15", "", studentPrincipal)

	err := NewBookingHandler(svc).ListBookedSlots(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookedSlotsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"10:00-12:00", "13:00-15:00"}, resp.BookedSlots)
}

func TestListBookedSlots_Handler_MissingParams(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/api/v1/bookings/slots?room_key=library-a", "", studentPrincipal)

	err := NewBookingHandler(nil).ListBookedSlots(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCancelBooking_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, userID, bookingID uint) error {
			return service.ErrBookingNotFound
		},
	}

	c, _ := newTestContext(http.MethodDelete, "/api/v1/bookings/99", "", studentPrincipal)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := NewBookingHandler(svc).CancelBooking(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCancelBooking_Handler_Success(t *testing.T) {
	var gotUserID, gotBookingID uint
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, userID, bookingID uint) error {
			gotUserID = userID
			gotBookingID = bookingID
			return nil
		},
	}

	c, rec := newTestContext(http.MethodDelete, "/api/v1/bookings/5", "", studentPrincipal)
	c.SetParamNames("id")
	c.SetParamValues("5")

	err := NewBookingHandler(svc).CancelBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, studentPrincipal.UserID, gotUserID)
	assert.Equal(t, uint(5), gotBookingID)
}
