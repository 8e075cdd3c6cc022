package services

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
)

const maxCardFieldLen = 255

// FlashcardService owns flashcard creation, listing and removal.
type FlashcardService struct {
	cards store.FlashcardStore
}

// NewFlashcardService creates a FlashcardService on the given store.
func NewFlashcardService(cards store.FlashcardStore) *FlashcardService {
	return &FlashcardService{cards: cards}
}

// List returns the user's flashcards in insertion order.
func (s *FlashcardService) List(ctx context.Context, userID uint64) ([]models.Flashcard, error) {
	return s.cards.ListByUser(ctx, userID)
}

// Create inserts a new flashcard for the user. Question and answer
// must be non-empty after trimming; duplicates are allowed.
func (s *FlashcardService) Create(ctx context.Context, userID uint64, question, answer string) (*models.Flashcard, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return nil, types.NewValidationError(types.ErrTypeCardValidation, "Question and answer cannot be blank")
	}
	if len(question) > maxCardFieldLen || len(answer) > maxCardFieldLen {
		return nil, types.NewValidationError(types.ErrTypeCardValidation, "Question and answer are limited to 255 characters")
	}

	card := &models.Flashcard{
		Question: question,
		Answer:   answer,
		UserID:   userID,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// Remove deletes the flashcard after verifying the requester owns it.
func (s *FlashcardService) Remove(ctx context.Context, cardID, requesterID uint64) error {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.NewNotFoundError(types.ErrTypeCardNotFound, "Flashcard not found")
		}
		return err
	}

	if card.UserID != requesterID {
		return types.NewForbiddenError(types.ErrTypeCardAuthorization, "Flashcard belongs to another user")
	}

	return s.cards.Delete(ctx, cardID)
}
