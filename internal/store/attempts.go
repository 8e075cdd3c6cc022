package store

import (
	"context"

	"github.com/localnerve/flashdeck/internal/models"
	"gorm.io/gorm"
)

type gormAttemptStore struct {
	db *gorm.DB
}

// Create records a started quiz attempt.
func (s *gormAttemptStore) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	return translate(s.db.WithContext(ctx).Create(attempt).Error)
}

// FindByToken looks up a quiz attempt by its client token.
func (s *gormAttemptStore) FindByToken(ctx context.Context, token string) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&attempt).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}
