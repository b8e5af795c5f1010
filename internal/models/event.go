package models

import "time"

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	EventDate string    `gorm:"not null" json:"event_date"`
	TimeSlot  string    `gorm:"not null" json:"time_slot"`
	CreatedBy uint      `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// EventAttendance is write-once per (event, student). Unlike course
// attendance there is no enrollment precondition.
type EventAttendance struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EventID       uint      `gorm:"not null;uniqueIndex:idx_event_attended,priority:1" json:"event_id"`
	StudentID     uint      `gorm:"not null;uniqueIndex:idx_event_attended,priority:2" json:"student_id"`
	StudentNumber string    `gorm:"not null" json:"student_number"`
	StudentName   string    `gorm:"not null" json:"student_name"`
	AttendedAt    time.Time `gorm:"not null" json:"attended_at"`
}
