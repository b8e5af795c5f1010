package models

import "time"

// Grade holds one letter grade per (student, course, semester, year) tuple.
// Re-submitting for the same tuple updates in place.
type Grade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_grade_tuple,priority:1" json:"student_id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_grade_tuple,priority:2" json:"course_id"`
	Semester  int       `gorm:"not null;uniqueIndex:idx_grade_tuple,priority:3" json:"semester"`
	Year      int       `gorm:"not null;uniqueIndex:idx_grade_tuple,priority:4" json:"year"`
	Grade     string    `gorm:"type:varchar(2);not null" json:"grade"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
