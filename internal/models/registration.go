package models

import "time"

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

// Registration is a student's enrollment request for one course in one
// semester. pending transitions once to approved or rejected; both are
// terminal.
type Registration struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	StudentID uint               `gorm:"not null;uniqueIndex:idx_registration_tuple,priority:1" json:"student_id"`
	CourseID  uint               `gorm:"not null;uniqueIndex:idx_registration_tuple,priority:2" json:"course_id"`
	Semester  int                `gorm:"not null;uniqueIndex:idx_registration_tuple,priority:3" json:"semester"`
	Year      int                `gorm:"not null;uniqueIndex:idx_registration_tuple,priority:4" json:"year"`
	Status    RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Student *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
