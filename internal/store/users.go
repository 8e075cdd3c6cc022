package store

import (
	"context"

	"github.com/localnerve/flashdeck/internal/models"
	"gorm.io/gorm"
)

type gormUserStore struct {
	db *gorm.DB
}

// Create inserts a new user. ErrDuplicate signals a taken username.
func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// FindByID looks up a user by primary key.
func (s *gormUserStore) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByUsername looks up a user by exact username match.
func (s *gormUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListExcept returns every user except the given one.
func (s *gormUserStore) ListExcept(ctx context.Context, excludeID uint64) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("id <> ?", excludeID).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}
