package models

import "time"

// Booking is a room reservation for one time slot on one date.
// The composite unique index is the authoritative guard against
// double-booking; the in-transaction check only gives an earlier error.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	RoomKey     string    `gorm:"not null;uniqueIndex:idx_booking_slot,priority:1" json:"room_key"`
	RoomName    string    `gorm:"not null" json:"room_name"`
	BookingDate string    `gorm:"not null;uniqueIndex:idx_booking_slot,priority:2" json:"booking_date"`
	TimeSlot    string    `gorm:"not null;uniqueIndex:idx_booking_slot,priority:3" json:"time_slot"`
	CreatedAt   time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
