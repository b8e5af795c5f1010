package models

import "time"

type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	Title     string    `gorm:"not null" json:"title"`
	Credits   int       `gorm:"not null" json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}
