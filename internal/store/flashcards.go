package store

import (
	"context"

	"github.com/localnerve/flashdeck/internal/models"
	"gorm.io/gorm"
)

type gormFlashcardStore struct {
	db *gorm.DB
}

// Create inserts a new flashcard.
func (s *gormFlashcardStore) Create(ctx context.Context, card *models.Flashcard) error {
	return translate(s.db.WithContext(ctx).Create(card).Error)
}

// FindByID looks up a flashcard by primary key.
func (s *gormFlashcardStore) FindByID(ctx context.Context, id uint64) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := s.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

// ListByUser returns the user's flashcards in insertion order.
func (s *gormFlashcardStore) ListByUser(ctx context.Context, userID uint64) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&cards).Error; err != nil {
		return nil, translate(err)
	}
	return cards, nil
}

// Delete removes a flashcard by primary key. ErrNotFound when no row matched.
func (s *gormFlashcardStore) Delete(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Delete(&models.Flashcard{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
