package models

import "time"

// Chatroom is the discussion room attached to a course. Messaging itself
// lives outside this service; only membership is managed here.
type Chatroom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;uniqueIndex" json:"course_id"`
	RoomKey   string    `gorm:"not null;uniqueIndex" json:"room_key"`
	CreatedBy uint      `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatroomMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"not null;uniqueIndex:idx_room_member,priority:1" json:"room_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_room_member,priority:2" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
