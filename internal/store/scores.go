// scores.go
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
	"time"

	"github.com/localnerve/flashdeck/internal/models"
	"gorm.io/gorm"
)

type gormScoreStore struct {
	db *gorm.DB
}

// UpsertBest keeps the maximum score per (owner, grader) pair. The
// unique index on (user_id, belongs) decides insert races, and the
// keep-max update compares inside a single UPDATE statement, so two
// concurrent submissions cannot produce a second row or lose the
// higher value. FOR UPDATE row locks are deliberately not used here:
// sqlite has no syntax for them and the constraint makes them
// unnecessary.
func (s *gormScoreStore) UpsertBest(ctx context.Context, ownerID uint64, grader string, submitted int) (string, *models.Score, error) {
	db := s.db.WithContext(ctx)

	var existing models.Score
	err := db.Where("user_id = ? AND belongs = ?", ownerID, grader).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := models.Score{
			Score:    submitted,
			ScoredAt: time.Now().UTC(),
			Belongs:  grader,
			UserID:   ownerID,
		}
		createErr := db.Create(&row).Error
		if createErr == nil {
			return ScoreCreated, &row, nil
		}
		if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return "", nil, translate(createErr)
		}
		// A concurrent submission won the insert; fall through to the
		// conditional update against the row it created.
		if err := db.Where("user_id = ? AND belongs = ?", ownerID, grader).First(&existing).Error; err != nil {
			return "", nil, translate(err)
		}
	} else if err != nil {
		return "", nil, translate(err)
	}

	if existing.Score >= submitted {
		return ScoreUnchanged, &existing, nil
	}

	// The WHERE clause re-checks the comparison so a concurrent higher
	// submission is never overwritten.
	now := time.Now().UTC()
	result := db.Model(&models.Score{}).
		Where("user_id = ? AND belongs = ? AND score < ?", ownerID, grader, submitted).
		Updates(map[string]interface{}{"score": submitted, "scored_at": now})
	if result.Error != nil {
		return "", nil, translate(result.Error)
	}

	var current models.Score
	if err := db.Where("user_id = ? AND belongs = ?", ownerID, grader).First(&current).Error; err != nil {
		return "", nil, translate(err)
	}
	if result.RowsAffected == 0 {
		return ScoreUnchanged, &current, nil
	}
	return ScoreImproved, &current, nil
}

// ListByOwner returns all scores recorded against the owner's deck.
func (s *gormScoreStore) ListByOwner(ctx context.Context, ownerID uint64) ([]models.Score, error) {
	var scores []models.Score
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("score desc").Find(&scores).Error; err != nil {
		return nil, translate(err)
	}
	return scores, nil
}

// ListByGrader returns all scores the grader has recorded across decks.
func (s *gormScoreStore) ListByGrader(ctx context.Context, grader string) ([]models.Score, error) {
	var scores []models.Score
	if err := s.db.WithContext(ctx).Where("belongs = ?", grader).Order("scored_at desc").Find(&scores).Error; err != nil {
		return nil, translate(err)
	}
	return scores, nil
}
