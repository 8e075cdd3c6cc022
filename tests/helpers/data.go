// data.go
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

package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/localnerve/flashdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user with a real bcrypt digest so login
// paths can be exercised against it.
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// CreateTestDeck inserts n sequentially numbered flashcards for the user.
func CreateTestDeck(t *testing.T, db *gorm.DB, userID uint64, n int) []models.Flashcard {
	t.Helper()
	cards := make([]models.Flashcard, 0, n)
	for i := 1; i <= n; i++ {
		card := models.Flashcard{
			Question: fmt.Sprintf("Q%d", i),
			Answer:   fmt.Sprintf("A%d", i),
			UserID:   userID,
		}
		if err := db.Create(&card).Error; err != nil {
			t.Fatalf("Failed to create flashcard %d: %v", i, err)
		}
		cards = append(cards, card)
	}
	return cards
}

// CreateTestScore inserts a score row directly.
func CreateTestScore(t *testing.T, db *gorm.DB, ownerID uint64, grader string, score int) *models.Score {
	t.Helper()
	row := &models.Score{
		Score:    score,
		ScoredAt: time.Now().UTC(),
		Belongs:  grader,
		UserID:   ownerID,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to create score: %v", err)
	}
	return row
}
