package dto

import (
	"time"

	"github.com/seportal/uniportal/internal/models"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BookingResponse struct {
	ID          uint      `json:"id"`
	RoomKey     string    `json:"room_key"`
	RoomName    string    `json:"room_name"`
	BookingDate string    `json:"booking_date"`
	TimeSlot    string    `json:"time_slot"`
	StudentName string    `json:"student_name"`
	StudentID   string    `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		RoomKey:     b.RoomKey,
		RoomName:    b.RoomName,
		BookingDate: b.BookingDate,
		TimeSlot:    b.TimeSlot,
		CreatedAt:   b.CreatedAt,
	}
	if b.User != nil {
		resp.StudentName = b.User.Name
		resp.StudentID = b.User.StudentID
	}
	return resp
}

type BookedSlotsResponse struct {
	BookedSlots []string `json:"booked_slots"`
}

type CourseResponse struct {
	ID      uint   `json:"id"`
	Code    string `json:"code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}

func ToCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:      c.ID,
		Code:    c.Code,
		Title:   c.Title,
		Credits: c.Credits,
	}
}

type RegistrationResponse struct {
	ID            uint                      `json:"id"`
	StudentID     uint                      `json:"student_id"`
	StudentName   string                    `json:"student_name"`
	StudentNumber string                    `json:"student_number"`
	CourseID      uint                      `json:"course_id"`
	CourseCode    string                    `json:"course_code"`
	CourseTitle   string                    `json:"course_title"`
	CourseCredits int                       `json:"course_credits"`
	Semester      int                       `json:"semester"`
	Year          int                       `json:"year"`
	Status        models.RegistrationStatus `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func ToRegistrationResponse(r *models.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:        r.ID,
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
		Semester:  r.Semester,
		Year:      r.Year,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.Student != nil {
		resp.StudentName = r.Student.Name
		resp.StudentNumber = r.Student.StudentID
	}
	if r.Course != nil {
		resp.CourseCode = r.Course.Code
		resp.CourseTitle = r.Course.Title
		resp.CourseCredits = r.Course.Credits
	}
	return resp
}

type GradeResponse struct {
	ID            uint   `json:"id"`
	StudentID     uint   `json:"student_id"`
	StudentName   string `json:"student_name"`
	StudentNumber string `json:"student_number"`
	CourseID      uint   `json:"course_id"`
	CourseCode    string `json:"course_code"`
	CourseTitle   string `json:"course_title"`
	CourseCredits int    `json:"course_credits"`
	Grade         string `json:"grade"`
	Semester      int    `json:"semester"`
	Year          int    `json:"year"`
}

func ToGradeResponse(g *models.Grade) GradeResponse {
	resp := GradeResponse{
		ID:        g.ID,
		StudentID: g.StudentID,
		CourseID:  g.CourseID,
		Grade:     g.Grade,
		Semester:  g.Semester,
		Year:      g.Year,
	}
	if g.Student != nil {
		resp.StudentName = g.Student.Name
		resp.StudentNumber = g.Student.StudentID
	}
	if g.Course != nil {
		resp.CourseCode = g.Course.Code
		resp.CourseTitle = g.Course.Title
		resp.CourseCredits = g.Course.Credits
	}
	return resp
}

type TranscriptCourse struct {
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Credits     int    `json:"credits"`
	Grade       string `json:"grade"`
	Semester    int    `json:"semester"`
	Year        int    `json:"year"`
}

type TranscriptResponse struct {
	StudentID     uint               `json:"student_id"`
	StudentName   string             `json:"student_name"`
	StudentNumber string             `json:"student_number"`
	Courses       []TranscriptCourse `json:"courses"`
	TotalCredits  int                `json:"total_credits"`
	EarnedCredits int                `json:"earned_credits"`
	GPA           float64            `json:"gpa"`
}

type SessionResponse struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	CourseCode  string    `json:"course_code"`
	CourseTitle string    `json:"course_title"`
	SessionDate string    `json:"session_date"`
	TimeSlot    string    `json:"time_slot"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToSessionResponse(s *models.AttendanceSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		CourseID:    s.CourseID,
		CourseCode:  s.CourseCode,
		CourseTitle: s.CourseTitle,
		SessionDate: s.SessionDate,
		TimeSlot:    s.TimeSlot,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
	}
}

type AttendanceRecordResponse struct {
	ID            uint      `json:"id"`
	SessionID     uint      `json:"session_id"`
	StudentID     uint      `json:"student_id"`
	StudentNumber string    `json:"student_number"`
	StudentName   string    `json:"student_name"`
	CheckedInAt   time.Time `json:"checked_in_at"`
}

func ToAttendanceRecordResponse(r *models.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:            r.ID,
		SessionID:     r.SessionID,
		StudentID:     r.StudentID,
		StudentNumber: r.StudentNumber,
		StudentName:   r.StudentName,
		CheckedInAt:   r.CheckedInAt,
	}
}

type EventResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	EventDate string    `json:"event_date"`
	TimeSlot  string    `json:"time_slot"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		EventDate: e.EventDate,
		TimeSlot:  e.TimeSlot,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

type EventAttendanceResponse struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"event_id"`
	StudentID     uint      `json:"student_id"`
	StudentNumber string    `json:"student_number"`
	StudentName   string    `json:"student_name"`
	AttendedAt    time.Time `json:"attended_at"`
}

func ToEventAttendanceResponse(r *models.EventAttendance) EventAttendanceResponse {
	return EventAttendanceResponse{
		ID:            r.ID,
		EventID:       r.EventID,
		StudentID:     r.StudentID,
		StudentNumber: r.StudentNumber,
		StudentName:   r.StudentName,
		AttendedAt:    r.AttendedAt,
	}
}

type CourseStudentResponse struct {
	StudentNumber string  `json:"student_id"`
	StudentName   string  `json:"student_name"`
	Grade         *string `json:"grade"`
	Semester      int     `json:"semester"`
	Year          int     `json:"year"`
}
