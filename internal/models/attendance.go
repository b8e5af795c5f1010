package models

import "time"

// AttendanceSession is an admin-created check-in window for one course
// meeting.
type AttendanceSession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"not null;index" json:"course_id"`
	CourseCode  string    `gorm:"not null" json:"course_code"`
	CourseTitle string    `gorm:"not null" json:"course_title"`
	SessionDate string    `gorm:"not null" json:"session_date"`
	TimeSlot    string    `gorm:"not null" json:"time_slot"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// AttendanceRecord is write-once per (session, student).
type AttendanceRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SessionID     uint      `gorm:"not null;uniqueIndex:idx_attendance_once,priority:1" json:"session_id"`
	StudentID     uint      `gorm:"not null;uniqueIndex:idx_attendance_once,priority:2" json:"student_id"`
	StudentNumber string    `gorm:"not null" json:"student_number"`
	StudentName   string    `gorm:"not null" json:"student_name"`
	CheckedInAt   time.Time `gorm:"not null" json:"checked_in_at"`
}
