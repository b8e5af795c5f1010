package dto

type CreateBookingRequest struct {
	RoomKey     string `json:"room_key" validate:"required"`
	RoomName    string `json:"room_name" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"time_slot" validate:"required"`
}

type CreateCourseRequest struct {
	Code    string `json:"code" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Credits int    `json:"credits" validate:"required,gt=0"`
}

type RegisterCoursesRequest struct {
	CourseIDs []uint `json:"course_ids" validate:"required,min=1,dive,gt=0"`
	Semester  int    `json:"semester" validate:"required,min=1,max=3"`
	Year      int    `json:"year" validate:"required,gte=2000"`
}

type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignGradeRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	CourseID  uint   `json:"course_id" validate:"required"`
	Grade     string `json:"grade" validate:"required"`
	Semester  int    `json:"semester" validate:"required,min=1,max=3"`
	Year      int    `json:"year" validate:"required,gte=2000"`
}

type CreateSessionRequest struct {
	CourseID    uint   `json:"course_id" validate:"required"`
	SessionDate string `json:"session_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"time_slot" validate:"required"`
}

type CreateEventRequest struct {
	Name      string `json:"name" validate:"required"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot" validate:"required"`
}
