package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seportal/uniportal/internal/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	FindStudents(ctx context.Context) ([]models.User, error)
	GetDB() *gorm.DB
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	user.Normalize()
	return &user, nil
}

// FindByIDForUpdate acquires a row-level lock on the user within the given
// transaction, serializing per-user admission checks.
func (r *userRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := forUpdate(tx.WithContext(ctx)).
		First(&user, id).Error; err != nil {
		return nil, err
	}
	user.Normalize()
	return &user, nil
}

func (r *userRepository) FindStudents(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role <> ?", models.RoleAdmin).
		Order("student_id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Normalize()
	}
	return users, nil
}
