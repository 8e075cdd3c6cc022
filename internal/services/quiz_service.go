// quiz_service.go
//
// A multi-user flashcard and quiz service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of flashdeck.
// flashdeck is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// flashdeck is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with flashdeck.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/localnerve/flashdeck/internal/models"
	"github.com/localnerve/flashdeck/internal/store"
	"github.com/localnerve/flashdeck/internal/types"
)

// QuizQuestion is one sampled card as handed to the quiz surface.
// The answer travels with the question so the existing client can
// grade locally. That exposure is inherited from the legacy grading
// surface; the recorded attempt carries the sample so grading can move
// server-side without changing this type.
type QuizQuestion struct {
	CardID   uint64 `json:"card_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Quiz is a started quiz: the sampled questions plus the attempt token.
type Quiz struct {
	Token     string         `json:"token"`
	OwnerID   uint64         `json:"owner_id"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizService samples quizzes and maintains best scores.
type QuizService struct {
	users    store.UserStore
	cards    store.FlashcardStore
	scores   store.ScoreStore
	attempts store.AttemptStore
	size     int
}

// NewQuizService creates a QuizService. size is the number of cards
// sampled per quiz.
func NewQuizService(users store.UserStore, cards store.FlashcardStore, scores store.ScoreStore, attempts store.AttemptStore, size int) *QuizService {
	return &QuizService{
		users:    users,
		cards:    cards,
		scores:   scores,
		attempts: attempts,
		size:     size,
	}
}

// Start samples a uniform-random subset of the owner's cards without
// replacement and records the attempt.
func (s *QuizService) Start(ctx context.Context, ownerID uint64, grader string) (*Quiz, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewNotFoundError(types.ErrTypeUserNotFound, "User not found")
		}
		return nil, err
	}

	cards, err := s.cards.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(cards) < s.size {
		return nil, types.NewInsufficientDataError(
			fmt.Sprintf("Quiz needs at least %d flashcards, user has %d", s.size, len(cards)))
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	sample := cards[:s.size]

	questions := make([]QuizQuestion, 0, s.size)
	cardIDs := make([]uint64, 0, s.size)
	for _, card := range sample {
		questions = append(questions, QuizQuestion{
			CardID:   card.ID,
			Question: card.Question,
			Answer:   card.Answer,
		})
		cardIDs = append(cardIDs, card.ID)
	}

	idsJSON, err := json.Marshal(cardIDs)
	if err != nil {
		return nil, err
	}

	attempt := &models.QuizAttempt{
		Token:   uuid.New().String(),
		UserID:  ownerID,
		Grader:  grader,
		CardIDs: idsJSON,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	return &Quiz{
		Token:     attempt.Token,
		OwnerID:   ownerID,
		Questions: questions,
	}, nil
}

// ScoresFor returns every best score the grader has recorded across
// other users' decks, most recent first.
func (s *QuizService) ScoresFor(ctx context.Context, grader string) ([]models.Score, error) {
	return s.scores.ListByGrader(ctx, grader)
}

// SubmitScore records the grader's score against the owner's deck,
// keeping the best. Returns one of store.ScoreCreated, ScoreImproved
// or ScoreUnchanged and the score row now in effect.
func (s *QuizService) SubmitScore(ctx context.Context, ownerID uint64, grader string, submitted int) (string, *models.Score, error) {
	if submitted < 0 || submitted > s.size {
		return "", nil, types.NewValidationError(types.ErrTypeScoreValidation,
			fmt.Sprintf("Score must be between 0 and %d", s.size))
	}

	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, types.NewNotFoundError(types.ErrTypeUserNotFound, "User not found")
		}
		return "", nil, err
	}

	return s.scores.UpsertBest(ctx, ownerID, grader, submitted)
}
