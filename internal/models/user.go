package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID string    `gorm:"uniqueIndex;not null" json:"student_id"`
	Name      string    `gorm:"not null" json:"name"`
	Year      int       `json:"year"`
	Role      string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize resolves optional fields once at the data-access boundary.
func (u *User) Normalize() {
	if u.Role == "" {
		u.Role = RoleStudent
	}
}
