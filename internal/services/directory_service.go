package services

import (
	"context"
	"errors"

	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
)

// UserProfile is the read-only view of another user's deck and the
// scores recorded against it.
type UserProfile struct {
	User       models.User        `json:"user"`
	Flashcards []models.Flashcard `json:"flashcards"`
	Scores     []models.Score     `json:"scores"`
}

// DirectoryService exposes the browse surface: other users and their
// public profiles.
type DirectoryService struct {
	users  store.UserStore
	cards  store.FlashcardStore
	scores store.ScoreStore
}

// NewDirectoryService creates a DirectoryService on the given stores.
func NewDirectoryService(users store.UserStore, cards store.FlashcardStore, scores store.ScoreStore) *DirectoryService {
	return &DirectoryService{users: users, cards: cards, scores: scores}
}

// ListOtherUsers returns every user except the requester.
func (s *DirectoryService) ListOtherUsers(ctx context.Context, requesterID uint64) ([]models.User, error) {
	return s.users.ListExcept(ctx, requesterID)
}

// ViewUserProfile returns the target's flashcards and the scores
// people have recorded quizzing on the target's deck.
func (s *DirectoryService) ViewUserProfile(ctx context.Context, targetID uint64) (*UserProfile, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewNotFoundError(types.ErrTypeUserNotFound, "User not found")
		}
		return nil, err
	}

	cards, err := s.cards.ListByUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	scores, err := s.scores.ListByOwner(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return &UserProfile{User: *user, Flashcards: cards, Scores: scores}, nil
}
