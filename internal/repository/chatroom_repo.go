package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seportal/uniportal/internal/models"
)

type ChatroomRepository interface {
	Create(ctx context.Context, room *models.Chatroom) error
	FindByCourse(ctx context.Context, courseID uint) (*models.Chatroom, error)
	AddMember(ctx context.Context, roomID, userID uint, role string) error
	GetDB() *gorm.DB
}

type chatroomRepository struct {
	db *gorm.DB
}

func NewChatroomRepository(db *gorm.DB) ChatroomRepository {
	return &chatroomRepository{db: db}
}

func (r *chatroomRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *chatroomRepository) Create(ctx context.Context, room *models.Chatroom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *chatroomRepository) FindByCourse(ctx context.Context, courseID uint) (*models.Chatroom, error) {
	var room models.Chatroom
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// AddMember is idempotent: re-adding an existing member is a no-op.
func (r *chatroomRepository) AddMember(ctx context.Context, roomID, userID uint, role string) error {
	member := &models.ChatroomMember{RoomID: roomID, UserID: userID, Role: role}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member).Error
}
