// store.go
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

package store

import (
	"context"
	"errors"

	"github.com/localnerve/flashdeck/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// Upsert outcomes for ScoreStore.UpsertBest.
const (
	ScoreCreated   = "created"
	ScoreImproved  = "improved"
	ScoreUnchanged = "unchanged"
)

// UserStore defines operations on User entities.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListExcept(ctx context.Context, excludeID uint64) ([]models.User, error)
}

// FlashcardStore defines operations on Flashcard entities.
type FlashcardStore interface {
	Create(ctx context.Context, card *models.Flashcard) error
	FindByID(ctx context.Context, id uint64) (*models.Flashcard, error)
	ListByUser(ctx context.Context, userID uint64) ([]models.Flashcard, error)
	Delete(ctx context.Context, id uint64) error
}

// ScoreStore defines operations on Score entities.
type ScoreStore interface {
	// UpsertBest records submitted for the (ownerID, grader) pair and
	// keeps the maximum. It returns one of ScoreCreated, ScoreImproved
	// or ScoreUnchanged together with the row now in effect.
	UpsertBest(ctx context.Context, ownerID uint64, grader string, submitted int) (string, *models.Score, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Score, error)
	ListByGrader(ctx context.Context, grader string) ([]models.Score, error)
}

// AttemptStore defines operations on QuizAttempt entities.
type AttemptStore interface {
	Create(ctx context.Context, attempt *models.QuizAttempt) error
	FindByToken(ctx context.Context, token string) (*models.QuizAttempt, error)
}

// Stores bundles the entity stores behind one constructor.
type Stores struct {
	Users      UserStore
	Flashcards FlashcardStore
	Scores     ScoreStore
	Attempts   AttemptStore
}

// New builds GORM-backed stores on the given connection.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:      &gormUserStore{db: db},
		Flashcards: &gormFlashcardStore{db: db},
		Scores:     &gormScoreStore{db: db},
		Attempts:   &gormAttemptStore{db: db},
	}
}

// translate maps GORM errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
